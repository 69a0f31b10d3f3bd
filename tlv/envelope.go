package tlv

import "fmt"

// headerLen is the size of the type/length envelope preceding every payload.
const headerLen = 2

// header validates the envelope of b against the expected type and returns
// the declared payload length. It does not check that the payload is present
// so fixed-length kinds can report a wrong length first.
func header(b []byte, want Type) (int, error) {
	if len(b) < headerLen {
		return 0, fmt.Errorf("decode %s: %w: %d header bytes", want, ErrTruncated, len(b))
	}
	if got := Type(b[0] >> 1); got != want {
		return 0, fmt.Errorf("decode %s: %w: buffer carries %s", want, ErrTypeMismatch, got)
	}
	n := int(DecodeLength(b[0], b[1]))
	if n >= lengthExtension {
		return 0, fmt.Errorf("decode %s: %w: %d", want, ErrLengthOverflow, n)
	}
	return n, nil
}

// payload slices the n payload octets following the envelope.
func payload(b []byte, t Type, n int) ([]byte, error) {
	if len(b)-headerLen < n {
		return nil, fmt.Errorf("decode %s: %w: length %d, %d bytes available", t, ErrTruncated, n, len(b)-headerLen)
	}
	return b[headerLen : headerLen+n], nil
}

// fixed validates a TLV whose payload length is mandated by its type.
func fixed(b []byte, t Type, want int) ([]byte, error) {
	n, err := header(b, t)
	if err != nil {
		return nil, err
	}
	if n != want {
		return nil, fmt.Errorf("decode %s: %w: length %d, want %d", t, ErrFixedLength, n, want)
	}
	return payload(b, t, n)
}

// appendHeader appends the envelope for a payload of n octets.
func appendHeader(dst []byte, t Type, n int) []byte {
	ext, lo, err := EncodeLength(n)
	if err != nil {
		// constructors keep every payload encodable
		panic(fmt.Sprintf("encode %s: %v", t, err))
	}
	return append(dst, byte(t)<<1|ext, lo)
}

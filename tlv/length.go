package tlv

import "fmt"

const (
	// lengthExtension is the weight of the length bit stored in the type octet.
	lengthExtension = 512

	// maxLength is the largest representable length field.
	maxLength = lengthExtension + 0xff
)

// DecodeLength returns the payload length spread across the low bit of the
// type octet b0 and the length octet b1.
func DecodeLength(b0, b1 byte) uint16 {
	n := uint16(b1)
	if b0&1 == 1 {
		n += lengthExtension
	}
	return n
}

// EncodeLength is the inverse of DecodeLength. ext is the bit to OR into the
// type octet and lo the length octet. Lengths in [256, 511] and above 767
// cannot be expressed and fail with ErrLengthOverflow.
func EncodeLength(n int) (ext, lo byte, err error) {
	switch {
	case n >= 0 && n <= 0xff:
		return 0, byte(n), nil
	case n >= lengthExtension && n <= maxLength:
		return 1, byte(n & 0xff), nil
	}
	return 0, 0, fmt.Errorf("%w: %d", ErrLengthOverflow, n)
}

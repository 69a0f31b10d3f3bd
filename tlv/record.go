package tlv

import "fmt"

// Record is one decoded TLV. The set of implementations is closed: every
// type in this package that satisfies Record corresponds to one Type.
//
// Records are immutable values and safe to share between goroutines.
type Record interface {
	// Type returns the TLV tag of the record.
	Type() Type

	// Len returns the payload length, excluding the 2-byte envelope. It is
	// the value written to the wire length field.
	Len() int

	// Bytes returns the full wire encoding including the envelope.
	Bytes() []byte

	// String renders the record as TypeName(arg, ...) for logs.
	String() string

	record()
}

var (
	_ Record = EndOfLLDPDU{}
	_ Record = ChassisID{}
	_ Record = PortID{}
	_ Record = TTL{}
	_ Record = PortDescription{}
	_ Record = SystemName{}
	_ Record = SystemDescription{}
	_ Record = SystemCapabilities{}
	_ Record = ManagementAddress{}
	_ Record = OrganizationallySpecific{}
)

// Decode reads the TLV at the start of b. Bytes after the TLV are ignored so
// b may be the remainder of an LLDPDU; use Size to advance past the record.
func Decode(b []byte) (Record, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("decode: %w: empty buffer", ErrTruncated)
	}
	t, err := Classify(b[0])
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	switch t {
	case TypeEndOfLLDPDU:
		return wrap(DecodeEndOfLLDPDU(b))
	case TypeChassisID:
		return wrap(DecodeChassisID(b))
	case TypePortID:
		return wrap(DecodePortID(b))
	case TypeTTL:
		return wrap(DecodeTTL(b))
	case TypePortDescription:
		return wrap(DecodePortDescription(b))
	case TypeSystemName:
		return wrap(DecodeSystemName(b))
	case TypeSystemDescription:
		return wrap(DecodeSystemDescription(b))
	case TypeSystemCapabilities:
		return wrap(DecodeSystemCapabilities(b))
	case TypeManagementAddress:
		return wrap(DecodeManagementAddress(b))
	case TypeOrganizationallySpecific:
		return wrap(DecodeOrganizationallySpecific(b))
	}
	// Classify only returns the types handled above.
	panic(fmt.Sprintf("tlv: unhandled type %s", t))
}

// wrap converts a typed decoder result into a Record, keeping a nil
// interface on failure.
func wrap[R Record](r R, err error) (Record, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Encode returns the wire encoding of r.
func Encode(r Record) []byte {
	return r.Bytes()
}

// Size returns the number of octets r occupies on the wire.
func Size(r Record) int {
	return headerLen + r.Len()
}

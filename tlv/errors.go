package tlv

import "errors"

// Decode and construction failures. Callers match them with errors.Is; the
// returned errors wrap these with the offending values.
var (
	// ErrUnknownType is returned when the 7-bit tag matches no known TLV.
	ErrUnknownType = errors.New("tlv: unknown type")

	// ErrTypeMismatch is returned when a type-specific decoder is handed a
	// buffer carrying another TLV's tag.
	ErrTypeMismatch = errors.New("tlv: type mismatch")

	// ErrLengthOverflow is returned when a length does not fit the 9-bit
	// length field or exceeds what the TLV kind accepts.
	ErrLengthOverflow = errors.New("tlv: length overflow")

	// ErrFixedLength is returned when a fixed-size TLV (End of LLDPDU, TTL,
	// System Capabilities) declares a different length.
	ErrFixedLength = errors.New("tlv: fixed length violation")

	// ErrMalformedText is returned for text TLVs that are not valid UTF-8 or
	// whose payload is shorter than the declared length.
	ErrMalformedText = errors.New("tlv: malformed text")

	// ErrCapabilityViolation is returned when an enabled capability is not
	// also supported.
	ErrCapabilityViolation = errors.New("tlv: enabled capability not supported")

	// ErrOIDOverflow is returned when an object identifier is longer than
	// 128 octets or longer than the bytes left in the payload.
	ErrOIDOverflow = errors.New("tlv: object identifier overflow")

	// ErrAddressFamily is returned for management address subtypes other
	// than IPv4 (1) and IPv6 (2).
	ErrAddressFamily = errors.New("tlv: unrecognized address family")

	// ErrTruncated is returned when the buffer ends before the TLV header or
	// the declared payload does.
	ErrTruncated = errors.New("tlv: truncated")

	// ErrAddressLength is returned when a management address string length
	// does not match the size of its address family.
	ErrAddressLength = errors.New("tlv: management address string length mismatch")

	// ErrInterfaceSubtype is returned for interface numbering subtypes other
	// than unknown (1), ifIndex (2) and system port (3).
	ErrInterfaceSubtype = errors.New("tlv: invalid interface numbering subtype")

	// ErrLengthMismatch is returned when the declared length leaves octets
	// the TLV layout does not account for.
	ErrLengthMismatch = errors.New("tlv: length field disagrees with payload")

	// ErrIDSubtype is returned for chassis or port ID subtypes outside 1..7.
	ErrIDSubtype = errors.New("tlv: invalid id subtype")

	// ErrEmptyID is returned when a chassis or port ID carries no octets.
	ErrEmptyID = errors.New("tlv: empty id")

	// ErrInvalidAddress is returned for the zero netip.Addr.
	ErrInvalidAddress = errors.New("tlv: invalid address")
)

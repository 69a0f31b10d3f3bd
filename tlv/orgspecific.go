package tlv

import (
	"fmt"
	"strings"
)

const (
	ouiLen = 3

	// maxOrgValueLen keeps oui, subtype and value within one length octet.
	maxOrgValueLen = 0xff - ouiLen - 1
)

// Well-known organizationally unique identifiers.
var (
	OUIIEEE8021 = [3]byte{0x00, 0x80, 0xc2}
	OUIIEEE8023 = [3]byte{0x00, 0x12, 0x0f}
	OUIMedia    = [3]byte{0x00, 0x12, 0xbb}
)

// OrganizationallySpecific carries data defined by the organization owning
// the OUI. The value is opaque to this package.
type OrganizationallySpecific struct {
	oui     [3]byte
	subtype uint8
	value   []byte
}

func NewOrganizationallySpecific(oui [3]byte, subtype uint8, value []byte) (OrganizationallySpecific, error) {
	if len(value) > maxOrgValueLen {
		return OrganizationallySpecific{}, fmt.Errorf("new %s: %w: value %d bytes, max %d",
			TypeOrganizationallySpecific, ErrLengthOverflow, len(value), maxOrgValueLen)
	}
	return OrganizationallySpecific{oui: oui, subtype: subtype, value: cloneBytes(value)}, nil
}

// DecodeOrganizationallySpecific decodes an Organizationally Specific TLV:
// oui(3), subtype(1) and the remaining payload as value.
func DecodeOrganizationallySpecific(b []byte) (OrganizationallySpecific, error) {
	t := TypeOrganizationallySpecific
	n, err := header(b, t)
	if err != nil {
		return OrganizationallySpecific{}, err
	}
	p, err := payload(b, t, n)
	if err != nil {
		return OrganizationallySpecific{}, err
	}
	if len(p) < ouiLen+1 {
		return OrganizationallySpecific{}, fmt.Errorf("decode %s: %w: payload %d bytes, need %d",
			t, ErrTruncated, len(p), ouiLen+1)
	}
	o := OrganizationallySpecific{subtype: p[ouiLen], value: cloneBytes(p[ouiLen+1:])}
	copy(o.oui[:], p[:ouiLen])
	return o, nil
}

func (o OrganizationallySpecific) OUI() [3]byte { return o.oui }

func (o OrganizationallySpecific) Subtype() uint8 { return o.subtype }

// Value returns a copy of the information string, nil when empty.
func (o OrganizationallySpecific) Value() []byte { return cloneBytes(o.value) }

func (OrganizationallySpecific) Type() Type { return TypeOrganizationallySpecific }

func (o OrganizationallySpecific) Len() int { return ouiLen + 1 + len(o.value) }

func (o OrganizationallySpecific) Bytes() []byte {
	n := o.Len()
	b := appendHeader(make([]byte, 0, headerLen+n), TypeOrganizationallySpecific, n)
	b = append(b, o.oui[:]...)
	b = append(b, o.subtype)
	return append(b, o.value...)
}

// String renders oui and value as unpadded uppercase hex per octet, so
// 0x00 0x80 0xc2 renders as "080C2".
func (o OrganizationallySpecific) String() string {
	return fmt.Sprintf("OrganizationallySpecificTLV(\"%s\", %d, \"%s\")",
		unpaddedHex(o.oui[:]), o.subtype, unpaddedHex(o.value))
}

func (OrganizationallySpecific) record() {}

func unpaddedHex(b []byte) string {
	var sb strings.Builder
	for _, v := range b {
		fmt.Fprintf(&sb, "%X", v)
	}
	return sb.String()
}

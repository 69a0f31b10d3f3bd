package tlv

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/google/gopacket/layers"
)

// AddressFamily is an IANA address family number as used in the management
// address subtype and in network-address chassis and port IDs. Only IPv4 and
// IPv6 are encoded or decoded.
type AddressFamily = layers.IANAAddressFamily

const (
	AddressFamilyIPv4 = layers.IANAAddressFamilyIPV4
	AddressFamilyIPv6 = layers.IANAAddressFamilyIPV6
)

// IfNumberingSubtype tells how the interface number of a management address
// was assigned.
type IfNumberingSubtype = layers.LLDPInterfaceSubtype

const (
	IfNumberingUnknown    = layers.LLDPInterfaceSubtypeUnknown
	IfNumberingIfIndex    = layers.LLDPInterfaceSubtypeifIndex
	IfNumberingSystemPort = layers.LLDPInterfaceSubtypeSysPort
)

func validIfNumbering(s IfNumberingSubtype) bool {
	return s >= IfNumberingUnknown && s <= IfNumberingSystemPort
}

// maxOIDLen is the longest object identifier a management address may carry.
const maxOIDLen = 128

// ManagementAddress identifies an address that network management can use to
// reach the sending system, the interface it belongs to and an optional
// object identifier for the hardware or software behind it. The zero value
// is not a valid TLV; use NewManagementAddress.
//
//	+------+------+---------+--------+---------+-----------+--------+---------+
//	| 0x10 | len  | addrLen | family | address | ifSubtype | ifNum  | oidLen  | oid
//	|      |      |  (1+m)  |  1/2   | m=4/16  |    1..3   | 4 (BE) | 0..128  |
//	+------+------+---------+--------+---------+-----------+--------+---------+
type ManagementAddress struct {
	addr      netip.Addr
	ifSubtype IfNumberingSubtype
	ifNumber  uint32
	oid       []byte
}

// NewManagementAddress returns a Management Address TLV for an IPv4 or IPv6
// address. IPv4-mapped IPv6 addresses are kept as IPv6. Zones are dropped.
func NewManagementAddress(addr netip.Addr, ifNumber uint32, subtype IfNumberingSubtype, oid []byte) (ManagementAddress, error) {
	t := TypeManagementAddress
	if !addr.IsValid() {
		return ManagementAddress{}, fmt.Errorf("new %s: %w", t, ErrInvalidAddress)
	}
	if !validIfNumbering(subtype) {
		return ManagementAddress{}, fmt.Errorf("new %s: %w: %d", t, ErrInterfaceSubtype, uint8(subtype))
	}
	if len(oid) > maxOIDLen {
		return ManagementAddress{}, fmt.Errorf("new %s: %w: %d octets", t, ErrOIDOverflow, len(oid))
	}
	return ManagementAddress{
		addr:      addr.WithZone(""),
		ifSubtype: subtype,
		ifNumber:  ifNumber,
		oid:       cloneBytes(oid),
	}, nil
}

// DecodeManagementAddress decodes a Management Address TLV. Only IPv4 and
// IPv6 addresses are understood.
func DecodeManagementAddress(b []byte) (ManagementAddress, error) {
	t := TypeManagementAddress
	n, err := header(b, t)
	if err != nil {
		return ManagementAddress{}, err
	}
	p, err := payload(b, t, n)
	if err != nil {
		return ManagementAddress{}, err
	}
	if len(p) < 2 {
		return ManagementAddress{}, fmt.Errorf("decode %s: %w: payload %d bytes", t, ErrTruncated, len(p))
	}

	strLen := int(p[0])
	family := AddressFamily(p[1])
	size, err := addressSize(family)
	if err != nil {
		return ManagementAddress{}, fmt.Errorf("decode %s: %w", t, err)
	}
	if strLen != 1+size {
		return ManagementAddress{}, fmt.Errorf("decode %s: %w: %d for family %d",
			t, ErrAddressLength, strLen, family)
	}

	// fields after the address: ifSubtype(1) ifNumber(4) oidLen(1)
	off := 2 + size
	if len(p) < off+6 {
		return ManagementAddress{}, fmt.Errorf("decode %s: %w: payload %d bytes", t, ErrTruncated, len(p))
	}
	addr, _ := netip.AddrFromSlice(p[2:off])

	subtype := IfNumberingSubtype(p[off])
	if !validIfNumbering(subtype) {
		return ManagementAddress{}, fmt.Errorf("decode %s: %w: %d", t, ErrInterfaceSubtype, p[off])
	}
	ifNumber := binary.BigEndian.Uint32(p[off+1 : off+5])

	oidLen := int(p[off+5])
	if oidLen > maxOIDLen {
		return ManagementAddress{}, fmt.Errorf("decode %s: %w: length %d", t, ErrOIDOverflow, oidLen)
	}
	rest := p[off+6:]
	if len(rest) < oidLen {
		return ManagementAddress{}, fmt.Errorf("decode %s: %w: length %d, %d bytes left",
			t, ErrOIDOverflow, oidLen, len(rest))
	}
	if len(rest) > oidLen {
		return ManagementAddress{}, fmt.Errorf("decode %s: %w: %d trailing bytes",
			t, ErrLengthMismatch, len(rest)-oidLen)
	}

	return ManagementAddress{
		addr:      addr,
		ifSubtype: subtype,
		ifNumber:  ifNumber,
		oid:       cloneBytes(rest),
	}, nil
}

func addressSize(f AddressFamily) (int, error) {
	switch f {
	case AddressFamilyIPv4:
		return 4, nil
	case AddressFamilyIPv6:
		return 16, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrAddressFamily, uint8(f))
}

func familyOf(addr netip.Addr) AddressFamily {
	if addr.Is4() {
		return AddressFamilyIPv4
	}
	return AddressFamilyIPv6
}

func (m ManagementAddress) Addr() netip.Addr { return m.addr }

func (m ManagementAddress) Family() AddressFamily { return familyOf(m.addr) }

func (m ManagementAddress) InterfaceSubtype() IfNumberingSubtype { return m.ifSubtype }

func (m ManagementAddress) InterfaceNumber() uint32 { return m.ifNumber }

// OID returns a copy of the object identifier, nil when absent.
func (m ManagementAddress) OID() []byte { return cloneBytes(m.oid) }

func (ManagementAddress) Type() Type { return TypeManagementAddress }

func (m ManagementAddress) Len() int {
	return 8 + m.addr.BitLen()/8 + len(m.oid)
}

func (m ManagementAddress) Bytes() []byte {
	n := m.Len()
	b := appendHeader(make([]byte, 0, headerLen+n), TypeManagementAddress, n)
	octets := m.addr.AsSlice()
	b = append(b, byte(1+len(octets)), byte(familyOf(m.addr)))
	b = append(b, octets...)
	b = append(b, byte(m.ifSubtype))
	b = binary.BigEndian.AppendUint32(b, m.ifNumber)
	b = append(b, byte(len(m.oid)))
	return append(b, m.oid...)
}

func (m ManagementAddress) String() string {
	return fmt.Sprintf("ManagementAddressTLV(%q, %d, \"%X\")", m.addr.String(), m.ifNumber, m.oid)
}

func (ManagementAddress) record() {}

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return append([]byte(nil), b...)
}

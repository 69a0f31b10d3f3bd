package tlv

import (
	"fmt"
	"net"
	"net/netip"
	"unicode"
	"unicode/utf8"

	"github.com/google/gopacket/layers"
)

// maxIDLen is the longest chassis or port ID accepted, leaving room for the
// subtype octet within a single length octet.
const maxIDLen = 0xff - 1

// ChassisIDSubtype says how a chassis ID is to be interpreted. Subtypes
// 1 through 7 are valid on the wire.
type ChassisIDSubtype = layers.LLDPChassisIDSubType

const (
	ChassisIDChassisComponent = layers.LLDPChassisIDSubTypeChassisComp
	ChassisIDInterfaceAlias   = layers.LLDPChassisIDSubtypeIfaceAlias
	ChassisIDPortComponent    = layers.LLDPChassisIDSubTypePortComp
	ChassisIDMACAddress       = layers.LLDPChassisIDSubTypeMACAddr
	ChassisIDNetworkAddress   = layers.LLDPChassisIDSubTypeNetworkAddr
	ChassisIDInterfaceName    = layers.LLDPChassisIDSubtypeIfaceName
	ChassisIDLocal            = layers.LLDPChassisIDSubTypeLocal
)

// PortIDSubtype says how a port ID is to be interpreted. Subtypes 1 through 7
// are valid on the wire.
type PortIDSubtype = layers.LLDPPortIDSubType

const (
	PortIDInterfaceAlias = layers.LLDPPortIDSubtypeIfaceAlias
	PortIDPortComponent  = layers.LLDPPortIDSubtypePortComp
	PortIDMACAddress     = layers.LLDPPortIDSubtypeMACAddr
	PortIDNetworkAddress = layers.LLDPPortIDSubtypeNetworkAddr
	PortIDInterfaceName  = layers.LLDPPortIDSubtypeIfaceName
	PortIDAgentCircuitID = layers.LLDPPortIDSubtypeAgentCircuitID
	PortIDLocal          = layers.LLDPPortIDSubtypeLocal
)

// ChassisID identifies the chassis of the sending LLDP agent. The zero value
// is not a valid TLV; use NewChassisID or DecodeChassisID.
//
//	+--------+--------+---------+-------------------+
//	| 0x02   | len    | subtype | id (1-254 octets) |
//	+--------+--------+---------+-------------------+
type ChassisID struct {
	subtype ChassisIDSubtype
	id      []byte
}

// PortID identifies the port that sent the LLDPDU. It has the same layout as
// ChassisID with its own subtype numbering. The zero value is not a valid TLV.
type PortID struct {
	subtype PortIDSubtype
	id      []byte
}

func NewChassisID(subtype ChassisIDSubtype, id []byte) (ChassisID, error) {
	if err := checkID(TypeChassisID, uint8(subtype), id); err != nil {
		return ChassisID{}, err
	}
	return ChassisID{subtype: subtype, id: cloneBytes(id)}, nil
}

// NewChassisIDMAC returns a chassis ID of subtype MAC address.
func NewChassisIDMAC(mac net.HardwareAddr) (ChassisID, error) {
	return NewChassisID(ChassisIDMACAddress, mac)
}

// NewChassisIDNetworkAddress returns a chassis ID of subtype network address:
// an address family octet followed by the address.
func NewChassisIDNetworkAddress(addr netip.Addr) (ChassisID, error) {
	id, err := networkAddressID(TypeChassisID, addr)
	if err != nil {
		return ChassisID{}, err
	}
	return NewChassisID(ChassisIDNetworkAddress, id)
}

func DecodeChassisID(b []byte) (ChassisID, error) {
	subtype, id, err := decodeID(b, TypeChassisID)
	if err != nil {
		return ChassisID{}, err
	}
	return ChassisID{subtype: ChassisIDSubtype(subtype), id: id}, nil
}

func (c ChassisID) Subtype() ChassisIDSubtype { return c.subtype }

// ID returns a copy of the raw identifier.
func (c ChassisID) ID() []byte { return cloneBytes(c.id) }

func (ChassisID) Type() Type { return TypeChassisID }

func (c ChassisID) Len() int { return 1 + len(c.id) }

func (c ChassisID) Bytes() []byte { return appendID(TypeChassisID, uint8(c.subtype), c.id) }

// String renders the id according to its subtype, see FormatID.
func (c ChassisID) String() string {
	return fmt.Sprintf("ChassisIdTLV(%d, \"%s\")", uint8(c.subtype),
		FormatID(c.id, c.subtype == ChassisIDMACAddress, c.subtype == ChassisIDNetworkAddress))
}

func (ChassisID) record() {}

func NewPortID(subtype PortIDSubtype, id []byte) (PortID, error) {
	if err := checkID(TypePortID, uint8(subtype), id); err != nil {
		return PortID{}, err
	}
	return PortID{subtype: subtype, id: cloneBytes(id)}, nil
}

func NewPortIDMAC(mac net.HardwareAddr) (PortID, error) {
	return NewPortID(PortIDMACAddress, mac)
}

func NewPortIDNetworkAddress(addr netip.Addr) (PortID, error) {
	id, err := networkAddressID(TypePortID, addr)
	if err != nil {
		return PortID{}, err
	}
	return NewPortID(PortIDNetworkAddress, id)
}

func DecodePortID(b []byte) (PortID, error) {
	subtype, id, err := decodeID(b, TypePortID)
	if err != nil {
		return PortID{}, err
	}
	return PortID{subtype: PortIDSubtype(subtype), id: id}, nil
}

func (p PortID) Subtype() PortIDSubtype { return p.subtype }

func (p PortID) ID() []byte { return cloneBytes(p.id) }

func (PortID) Type() Type { return TypePortID }

func (p PortID) Len() int { return 1 + len(p.id) }

func (p PortID) Bytes() []byte { return appendID(TypePortID, uint8(p.subtype), p.id) }

func (p PortID) String() string {
	return fmt.Sprintf("PortIdTLV(%d, \"%s\")", uint8(p.subtype),
		FormatID(p.id, p.subtype == PortIDMACAddress, p.subtype == PortIDNetworkAddress))
}

func (PortID) record() {}

func checkID(t Type, subtype uint8, id []byte) error {
	if subtype < 1 || subtype > 7 {
		return fmt.Errorf("new %s: %w: %d", t, ErrIDSubtype, subtype)
	}
	if len(id) == 0 {
		return fmt.Errorf("new %s: %w", t, ErrEmptyID)
	}
	if len(id) > maxIDLen {
		return fmt.Errorf("new %s: %w: id %d bytes, max %d", t, ErrLengthOverflow, len(id), maxIDLen)
	}
	return nil
}

func decodeID(b []byte, t Type) (uint8, []byte, error) {
	n, err := header(b, t)
	if err != nil {
		return 0, nil, err
	}
	p, err := payload(b, t, n)
	if err != nil {
		return 0, nil, err
	}
	if len(p) < 2 {
		return 0, nil, fmt.Errorf("decode %s: %w: payload %d bytes, need subtype and id", t, ErrTruncated, len(p))
	}
	if p[0] < 1 || p[0] > 7 {
		return 0, nil, fmt.Errorf("decode %s: %w: %d", t, ErrIDSubtype, p[0])
	}
	return p[0], cloneBytes(p[1:]), nil
}

func appendID(t Type, subtype uint8, id []byte) []byte {
	n := 1 + len(id)
	b := appendHeader(make([]byte, 0, headerLen+n), t, n)
	b = append(b, subtype)
	return append(b, id...)
}

func networkAddressID(t Type, addr netip.Addr) ([]byte, error) {
	if !addr.IsValid() {
		return nil, fmt.Errorf("new %s: %w", t, ErrInvalidAddress)
	}
	return append([]byte{byte(familyOf(addr))}, addr.AsSlice()...), nil
}

// FormatID renders a chassis or port ID for display. MAC addresses become
// colon-separated lowercase hex and network addresses the textual IP when the
// family is IPv4 or IPv6. Anything else is shown as text when printable and
// as uppercase hex otherwise.
func FormatID(id []byte, mac, network bool) string {
	if mac {
		return net.HardwareAddr(id).String()
	}
	if network && len(id) > 1 {
		if size, err := addressSize(AddressFamily(id[0])); err == nil && len(id) == 1+size {
			addr, _ := netip.AddrFromSlice(id[1:])
			return addr.String()
		}
	}
	if printable(id) {
		return string(id)
	}
	return fmt.Sprintf("%X", id)
}

func printable(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, r := range string(b) {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

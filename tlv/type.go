package tlv

import "fmt"

// Type is the 7-bit tag carried in the high bits of a TLV's first octet.
type Type uint8

const (
	// Mandatory TLVs. TypeEndOfLLDPDU terminates every LLDPDU.
	TypeEndOfLLDPDU Type = 0
	TypeChassisID   Type = 1
	TypePortID      Type = 2
	TypeTTL         Type = 3

	// Optional TLVs.
	TypePortDescription    Type = 4
	TypeSystemName         Type = 5
	TypeSystemDescription  Type = 6
	TypeSystemCapabilities Type = 7
	TypeManagementAddress  Type = 8

	// TypeOrganizationallySpecific carries vendor data identified by an OUI.
	TypeOrganizationallySpecific Type = 127
)

var typeNames = map[Type]string{
	TypeEndOfLLDPDU:              "EndOfLLDPDU",
	TypeChassisID:                "ChassisID",
	TypePortID:                   "PortID",
	TypeTTL:                      "TTL",
	TypePortDescription:          "PortDescription",
	TypeSystemName:               "SystemName",
	TypeSystemDescription:        "SystemDescription",
	TypeSystemCapabilities:       "SystemCapabilities",
	TypeManagementAddress:        "ManagementAddress",
	TypeOrganizationallySpecific: "OrganizationallySpecific",
}

// Valid reports whether t is one of the ten defined TLV types.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Classify extracts the type tag from the first octet of a TLV. The low bit
// belongs to the length field and is ignored.
func Classify(b0 byte) (Type, error) {
	t := Type((b0 &^ 1) >> 1)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: tag %d", ErrUnknownType, uint8(t))
	}
	return t, nil
}

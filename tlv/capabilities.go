package tlv

import (
	"encoding/binary"
	"fmt"

	"github.com/google/gopacket/layers"
)

const capabilitiesLen = 4

// Capability is a bit in the System Capabilities bitmaps. Values can be ORed
// together, e.g. CapabilityBridge | CapabilityRouter.
type Capability uint16

const (
	CapabilityOther           = Capability(layers.LLDPCapsOther)
	CapabilityRepeater        = Capability(layers.LLDPCapsRepeater)
	CapabilityBridge          = Capability(layers.LLDPCapsBridge)
	CapabilityWLANAccessPoint = Capability(layers.LLDPCapsWLANAP)
	CapabilityRouter          = Capability(layers.LLDPCapsRouter)
	CapabilityTelephone       = Capability(layers.LLDPCapsPhone)
	CapabilityDOCSIS          = Capability(layers.LLDPCapsDocSis)
	CapabilityStationOnly     = Capability(layers.LLDPCapsStationOnly)
	CapabilityCVLAN           = Capability(layers.LLDPCapsCVLAN)
	CapabilitySVLAN           = Capability(layers.LLDPCapsSVLAN)
	CapabilityTwoPortMACRelay = Capability(layers.LLDPCapsTmpr)
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{CapabilityOther, "other"},
	{CapabilityRepeater, "repeater"},
	{CapabilityBridge, "bridge"},
	{CapabilityWLANAccessPoint, "wlan-ap"},
	{CapabilityRouter, "router"},
	{CapabilityTelephone, "telephone"},
	{CapabilityDOCSIS, "docsis"},
	{CapabilityStationOnly, "station-only"},
	{CapabilityCVLAN, "c-vlan"},
	{CapabilitySVLAN, "s-vlan"},
	{CapabilityTwoPortMACRelay, "two-port-mac-relay"},
}

// Names lists the names of the capabilities set in c, lowest bit first.
// Reserved bits are reported as "bit<N>".
func (c Capability) Names() []string {
	var names []string
	for bit := 0; bit < 16; bit++ {
		m := Capability(1) << bit
		if c&m == 0 {
			continue
		}
		if bit < len(capabilityNames) {
			names = append(names, capabilityNames[bit].name)
		} else {
			names = append(names, fmt.Sprintf("bit%d", bit))
		}
	}
	return names
}

// SystemCapabilities advertises the primary functions of the system and
// which of them are enabled. Every enabled capability must be supported.
//
//	+--------+--------+--------+--------+--------+--------+
//	| 0x0e   | 0x04   |  supported (BE) |  enabled (BE)   |
//	+--------+--------+--------+--------+--------+--------+
type SystemCapabilities struct {
	supported uint16
	enabled   uint16
}

// NewSystemCapabilities fails with ErrCapabilityViolation when enabled has
// a bit that supported lacks.
func NewSystemCapabilities(supported, enabled uint16) (SystemCapabilities, error) {
	if err := checkCapabilities(supported, enabled); err != nil {
		return SystemCapabilities{}, fmt.Errorf("new %s: %w", TypeSystemCapabilities, err)
	}
	return SystemCapabilities{supported: supported, enabled: enabled}, nil
}

// DecodeSystemCapabilities decodes a System Capabilities TLV. The payload
// must be exactly four octets and satisfy the containment rule.
func DecodeSystemCapabilities(b []byte) (SystemCapabilities, error) {
	p, err := fixed(b, TypeSystemCapabilities, capabilitiesLen)
	if err != nil {
		return SystemCapabilities{}, err
	}
	supported := binary.BigEndian.Uint16(p[0:2])
	enabled := binary.BigEndian.Uint16(p[2:4])
	if err := checkCapabilities(supported, enabled); err != nil {
		return SystemCapabilities{}, fmt.Errorf("decode %s: %w", TypeSystemCapabilities, err)
	}
	return SystemCapabilities{supported: supported, enabled: enabled}, nil
}

func checkCapabilities(supported, enabled uint16) error {
	for bit := 0; bit < 16; bit++ {
		m := uint16(1) << bit
		if enabled&m != 0 && supported&m == 0 {
			return fmt.Errorf("%w: bit %d (supported 0x%04x, enabled 0x%04x)",
				ErrCapabilityViolation, bit, supported, enabled)
		}
	}
	return nil
}

func (s SystemCapabilities) SupportedBits() uint16 { return s.supported }

func (s SystemCapabilities) EnabledBits() uint16 { return s.enabled }

// Value returns both bitmaps packed as supported<<16 | enabled.
func (s SystemCapabilities) Value() uint32 {
	return uint32(s.supported)<<16 | uint32(s.enabled)
}

// Supports reports whether every capability in caps is supported.
func (s SystemCapabilities) Supports(caps Capability) bool {
	return uint16(caps)&^s.supported == 0
}

// Enabled reports whether every capability in caps is enabled.
func (s SystemCapabilities) Enabled(caps Capability) bool {
	return uint16(caps)&^s.enabled == 0
}

func (SystemCapabilities) Type() Type { return TypeSystemCapabilities }

func (SystemCapabilities) Len() int { return capabilitiesLen }

func (s SystemCapabilities) Bytes() []byte {
	b := appendHeader(make([]byte, 0, headerLen+capabilitiesLen), TypeSystemCapabilities, capabilitiesLen)
	b = binary.BigEndian.AppendUint16(b, s.supported)
	return binary.BigEndian.AppendUint16(b, s.enabled)
}

func (s SystemCapabilities) String() string {
	return fmt.Sprintf("SystemCapabilitiesTLV(%d, %d)", s.supported, s.enabled)
}

func (SystemCapabilities) record() {}

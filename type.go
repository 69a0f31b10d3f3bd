// type.go defines core data structures used by the lldptlv discovery engine.
//
// DiscoveryInfo is the central model representing information extracted from
// an LLDP (IEEE 802.1AB) frame: system identity, port identifiers, VLAN
// assignments, management addresses and the decoded TLV records themselves.
package lldptlv

import (
	"time"

	"github.com/javadmohebbi/lldptlv/tlv"
)

const (
	lldpEthertype = 0x88cc
	lldpMulticast = "01:80:c2:00:00:0e"
)

// DiscoveryInfo holds all parsed neighbor-discovery details extracted from an
// LLDPDU. Each field corresponds to a specific TLV or metadata element.
type DiscoveryInfo struct {
	// Proto identifies the discovery protocol used by the neighbor. It is
	// always "LLDP".
	Proto string

	// ChassisID is the unique device identifier advertised via TLV type 1,
	// rendered according to its subtype (MAC, network address, text).
	ChassisID string

	// PortID identifies the port on the neighbor device that transmitted the
	// frame (e.g., "Gi1/0/24").
	PortID string

	// PortDesc is the Port Description TLV (type 4).
	PortDesc string

	// SystemName is the hostname of the advertising device (TLV type 5).
	SystemName string

	// SystemDesc carries software, hardware, or platform information about
	// the neighbor (TLV type 6).
	SystemDesc string

	// TTL is the number of seconds the neighbor information stays valid.
	TTL uint16

	// Capabilities lists the enabled system capabilities (TLV type 7), e.g.
	// "bridge" or "router".
	Capabilities []string

	// ManagementAddresses lists the addresses from Management Address TLVs
	// (type 8), one entry per TLV.
	ManagementAddresses []string

	// VLAN is the port VLAN ID from the IEEE 802.1 organizational TLV.
	VLAN string

	// VoiceVLAN indicates the voice or media VLAN when provided by LLDP-MED
	// (OUI 00:12:bb, subtype 2).
	VoiceVLAN string

	// TaggedVLANs lists additional 802.1Q VLAN IDs that are permitted/tagged
	// on the port, extracted from IEEE 802.1 organizational TLVs.
	TaggedVLANs []string

	// VLANNames contains optional mappings of VLAN IDs to descriptive names,
	// when advertised by the switch (subtype 3 under OUI 00:80:c2).
	VLANNames []string

	// Records are the decoded TLVs in wire order, up to and including the
	// End of LLDPDU TLV. Malformed TLVs are skipped.
	Records []tlv.Record

	// RawDetails includes textual representations of TLVs that were not fully
	// interpreted, useful for debugging and extending protocol support.
	RawDetails []string

	// SourceMAC is the MAC address of the neighbor that sent the frame, taken
	// from the Ethernet header.
	SourceMAC string

	// Interface is the local interface on which the frame was received.
	Interface string

	// DiscoveredAt is a timestamp marking when this discovery information was
	// observed.
	DiscoveredAt time.Time
}

// decode.go provides the top-level packet classification logic for lldptlv.
//
// It receives raw Ethernet frames from gopacket, determines whether they carry
// LLDP (IEEE 802.1AB) data, and then hands the LLDPDU to the tlv codec.
// https://standards.ieee.org/ieee/802.1AB/6812/
package lldptlv

import (
	"net"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/javadmohebbi/lldptlv/tlv"
)

// DecodeDiscovery inspects a captured gopacket.Packet and attempts to interpret
// it as an LLDP frame (EtherType 0x88cc). It extracts the Ethernet header,
// populates a DiscoveryInfo skeleton with metadata such as the source MAC
// address, interface name, and discovery timestamp, and then decodes the TLVs.
//
// When gopacket already decoded a complete LLDP layer its TLV split is reused;
// otherwise the raw Ethernet payload is walked TLV by TLV, which still yields
// the well-formed TLVs of a frame gopacket rejected.
//
// On success, it returns a populated DiscoveryInfo and true. If the packet is
// not LLDP or carries no identifying TLV, it returns a zero-valued
// DiscoveryInfo and false.
func DecodeDiscovery(pkt gopacket.Packet, iface string) (DiscoveryInfo, bool) {
	// Discovery protocols run directly on top of Ethernet, so packets without
	// an Ethernet header are ignored.
	ethLayer := pkt.Layer(layers.LayerTypeEthernet)
	if ethLayer == nil {
		return DiscoveryInfo{}, false
	}

	// gopacket guarantees LayerTypeEthernet yields *layers.Ethernet.
	eth := ethLayer.(*layers.Ethernet)
	if eth.EthernetType != lldpEthertype {
		return DiscoveryInfo{}, false
	}

	info := DiscoveryInfo{
		SourceMAC:    eth.SrcMAC.String(),
		Interface:    iface,
		DiscoveredAt: time.Now(),
	}

	var ok bool
	if l, isLLDP := pkt.Layer(layers.LayerTypeLinkLayerDiscovery).(*layers.LinkLayerDiscovery); isLLDP {
		records, err := RecordsFromLayer(l)
		if err != nil {
			DebugLogMsg("LLDP layer from %s on %s: %v", info.SourceMAC, iface, err)
		}
		ok = applyRecords(records, &info)
	} else {
		ok = parseLLDP(eth.Payload, &info)
	}
	if !ok {
		return DiscoveryInfo{}, false
	}
	framesDecoded.Inc()
	UsefulLogMsg("LLDP neighbor %s port %s via %s", info.SystemName, info.PortID, iface)
	ExtendedLogMsg("LLDPDU from %s carried %d TLVs", info.SourceMAC, len(info.Records))
	return info, true
}

// FrameFromRecords wraps an LLDPDU built from records in an Ethernet frame
// addressed to the nearest-bridge LLDP multicast group.
func FrameFromRecords(src net.HardwareAddr, records ...tlv.Record) ([]byte, error) {
	dst, err := net.ParseMAC(lldpMulticast)
	if err != nil {
		return nil, err
	}
	eth := &layers.Ethernet{
		SrcMAC:       src,
		DstMAC:       dst,
		EthernetType: lldpEthertype,
	}
	buf := gopacket.NewSerializeBuffer()
	err = gopacket.SerializeLayers(buf, gopacket.SerializeOptions{},
		eth, gopacket.Payload(BuildLLDPDU(records...)))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

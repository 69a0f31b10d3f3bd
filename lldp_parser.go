package lldptlv

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/javadmohebbi/lldptlv/tlv"
)

// ParseLLDPDU splits an LLDPDU into its TLV records, stopping after the End
// of LLDPDU TLV, malformed or not. A TLV that fails to decode is logged, counted and skipped
// when its header still tells how far to skip; otherwise parsing stops there.
// The returned error joins every decode failure; the records decoded so far
// are returned either way.
//
// TLV order and the presence of mandatory TLVs are not checked.
func ParseLLDPDU(b []byte) ([]tlv.Record, error) {
	var (
		records []tlv.Record
		errs    []error
	)
	for len(b) >= 2 {
		r, err := tlv.Decode(b)
		if err != nil {
			countError(err)
			errs = append(errs, err)
			if tlv.Type(b[0]>>1) == tlv.TypeEndOfLLDPDU {
				DebugLogMsg("stopping at malformed End of LLDPDU: %v", err)
				break
			}
			n := 2 + int(tlv.DecodeLength(b[0], b[1]))
			if n > len(b) {
				DebugLogMsg("stopping at malformed TLV: %v", err)
				break
			}
			WarningLogMsg("skipping malformed TLV: %v", err)
			b = b[n:]
			continue
		}
		countRecord(r)
		records = append(records, r)
		if r.Type() == tlv.TypeEndOfLLDPDU {
			break
		}
		b = b[tlv.Size(r):]
	}
	return records, errors.Join(errs...)
}

// BuildLLDPDU concatenates the wire encodings of records. It does not add an
// End of LLDPDU TLV or check TLV order.
func BuildLLDPDU(records ...tlv.Record) []byte {
	n := 0
	for _, r := range records {
		n += tlv.Size(r)
	}
	b := make([]byte, 0, n)
	for _, r := range records {
		b = append(b, r.Bytes()...)
	}
	return b
}

// parseLLDP decodes an LLDPDU payload into info and reports whether any
// identifying field was found.
func parseLLDP(b []byte, info *DiscoveryInfo) bool {
	if len(b) < 4 {
		return false
	}
	records, err := ParseLLDPDU(b)
	if err != nil {
		DebugLogMsg("LLDPDU from %s on %s: %v", info.SourceMAC, info.Interface, err)
	}
	return applyRecords(records, info)
}

// applyRecords fills info from decoded records.
func applyRecords(records []tlv.Record, info *DiscoveryInfo) bool {
	info.Proto = "LLDP"
	info.Records = records

	for _, rec := range records {
		switch r := rec.(type) {
		case tlv.ChassisID:
			info.ChassisID = tlv.FormatID(r.ID(),
				r.Subtype() == tlv.ChassisIDMACAddress, r.Subtype() == tlv.ChassisIDNetworkAddress)
		case tlv.PortID:
			info.PortID = tlv.FormatID(r.ID(),
				r.Subtype() == tlv.PortIDMACAddress, r.Subtype() == tlv.PortIDNetworkAddress)
		case tlv.TTL:
			info.TTL = r.Seconds()
		case tlv.PortDescription:
			info.PortDesc = r.Text()
		case tlv.SystemName:
			info.SystemName = r.Text()
		case tlv.SystemDescription:
			info.SystemDesc = r.Text()
		case tlv.SystemCapabilities:
			info.Capabilities = tlv.Capability(r.EnabledBits()).Names()
			info.RawDetails = append(info.RawDetails,
				fmt.Sprintf("SysCaps supported=0x%04x enabled=0x%04x", r.SupportedBits(), r.EnabledBits()))
		case tlv.ManagementAddress:
			info.ManagementAddresses = append(info.ManagementAddresses, r.Addr().String())
		case tlv.OrganizationallySpecific:
			parseLLDPOrgTLV(r, info)
		case tlv.EndOfLLDPDU:
		}
	}
	return info.PortID != "" || info.SystemName != "" || info.ChassisID != ""
}

// Handle LLDP organizational TLVs (type 127)
func parseLLDPOrgTLV(org tlv.OrganizationallySpecific, info *DiscoveryInfo) {
	oui := org.OUI()
	ouiText := fmt.Sprintf("%02x:%02x:%02x", oui[0], oui[1], oui[2])
	subtype := org.Subtype()
	data := org.Value()

	switch oui {

	// IEEE 802.1 (VLAN-related TLVs)
	case tlv.OUIIEEE8021:
		switch subtype {
		case 1: // Port VLAN ID (PVID)
			if len(data) >= 2 {
				vlan := binary.BigEndian.Uint16(data[:2])
				info.VLAN = fmt.Sprintf("%d", vlan)
				info.RawDetails = append(info.RawDetails,
					fmt.Sprintf("PVID VLAN=%d", vlan))
			}
		case 2: // Port and Protocol VLAN ID: flags(1) + PPVID(2)
			if len(data) >= 3 {
				if vlan := binary.BigEndian.Uint16(data[1:3]); vlan != 0 {
					tagged := fmt.Sprintf("%d", vlan)
					info.TaggedVLANs = appendUnique(info.TaggedVLANs, tagged)
					info.RawDetails = append(info.RawDetails,
						fmt.Sprintf("Tagged VLANs=%s", strings.Join(info.TaggedVLANs, ",")))
				}
			}
		case 3: // VLAN Name: [2 bytes VLAN ID][1 byte name length][N bytes name]
			tmp := data
			for len(tmp) >= 3 {
				vlanID := binary.BigEndian.Uint16(tmp[0:2])
				nameLen := int(tmp[2])
				if len(tmp) < 3+nameLen {
					break
				}
				name := string(tmp[3 : 3+nameLen])
				info.VLANNames = append(info.VLANNames, fmt.Sprintf("VLAN %d = %s", vlanID, name))
				info.RawDetails = append(info.RawDetails,
					fmt.Sprintf("VLANName %d=%q", vlanID, name))
				tmp = tmp[3+nameLen:]
			}
		default:
			info.RawDetails = append(info.RawDetails,
				fmt.Sprintf("OrgTLV IEEE802.1 OUI=%s subtype=%d len=%d", ouiText, subtype, len(data)))
		}

	// LLDP-MED (Voice VLAN and network policies)
	case tlv.OUIMedia:
		// Network Policy is subtype 2: application type(1), then a 24-bit
		// field holding U/T/X flags and the 12-bit VLAN ID, priority and DSCP.
		if subtype == 2 && len(data) >= 4 {
			policy := uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])
			vlan := (policy >> 9) & 0x0fff
			if vlan != 0 {
				info.VoiceVLAN = fmt.Sprintf("%d", vlan)
				info.RawDetails = append(info.RawDetails,
					fmt.Sprintf("LLDP-MED VoiceVLAN=%d", vlan))
			} else {
				info.RawDetails = append(info.RawDetails,
					fmt.Sprintf("LLDP-MED NetworkPolicy raw=%X", data))
			}
		} else {
			info.RawDetails = append(info.RawDetails,
				fmt.Sprintf("LLDP-MED OUI=%s subtype=%d len=%d", ouiText, subtype, len(data)))
		}

	default:
		// Unknown org TLV, but we log it for debugging
		info.RawDetails = append(info.RawDetails, org.String())
	}
}

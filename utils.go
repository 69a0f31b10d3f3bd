package lldptlv

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/gopacket/pcap"
)

// ListInterfaces writes the capture devices pcap can open to w.
func ListInterfaces(w io.Writer) error {
	devs, err := pcap.FindAllDevs()
	if err != nil {
		return fmt.Errorf("FindAllDevs failed: %w", err)
	}
	fmt.Fprintln(w, "Available interfaces:")
	for _, d := range devs {
		addrs := []string{}
		for _, a := range d.Addresses {
			addrs = append(addrs, a.IP.String())
		}
		fmt.Fprintf(w, "- %s  (%s)\n", d.Name, strings.Join(addrs, ", "))
	}
	return nil
}

func PrintDiscovery(w io.Writer, i DiscoveryInfo) {
	fmt.Fprintln(w, "======================================")
	fmt.Fprintf(w, "Protocol     : %s\n", i.Proto)
	fmt.Fprintf(w, "Interface    : %s\n", i.Interface)
	fmt.Fprintf(w, "Discovered   : %s\n", i.DiscoveredAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Source MAC   : %s\n", i.SourceMAC)
	if i.SystemName != "" {
		fmt.Fprintf(w, "System Name  : %s\n", i.SystemName)
	}
	if i.SystemDesc != "" {
		fmt.Fprintf(w, "System Desc  : %s\n", i.SystemDesc)
	}
	if i.ChassisID != "" {
		fmt.Fprintf(w, "Chassis ID   : %s\n", i.ChassisID)
	}
	if i.PortID != "" {
		fmt.Fprintf(w, "Port ID      : %s\n", i.PortID)
	}
	if i.PortDesc != "" {
		fmt.Fprintf(w, "Port Desc    : %s\n", i.PortDesc)
	}
	if i.TTL != 0 {
		fmt.Fprintf(w, "TTL          : %ds\n", i.TTL)
	}
	if len(i.Capabilities) > 0 {
		fmt.Fprintf(w, "Capabilities : %s\n", strings.Join(i.Capabilities, ", "))
	}
	if len(i.ManagementAddresses) > 0 {
		fmt.Fprintf(w, "Mgmt Address : %s\n", strings.Join(i.ManagementAddresses, ", "))
	}
	if i.VLAN != "" {
		fmt.Fprintf(w, "VLAN         : %s\n", i.VLAN)
	}
	if i.VoiceVLAN != "" {
		fmt.Fprintf(w, "Voice VLAN   : %s\n", i.VoiceVLAN)
	}
	if len(i.TaggedVLANs) > 0 {
		fmt.Fprintf(w, "Tagged VLANs : %s\n", strings.Join(i.TaggedVLANs, ", "))
	}
	if len(i.VLANNames) > 0 {
		fmt.Fprintln(w, "VLAN Names   :")
		for _, n := range i.VLANNames {
			fmt.Fprintf(w, "  - %s\n", n)
		}
	}
	if len(i.RawDetails) > 0 {
		fmt.Fprintln(w, "Extra TLVs   :")
		for _, line := range i.RawDetails {
			fmt.Fprintf(w, "  - %s\n", line)
		}
	}
	if len(i.Records) > 0 {
		fmt.Fprintln(w, "Records      :")
		for _, r := range i.Records {
			fmt.Fprintf(w, "  - %s\n", r)
		}
	}
	fmt.Fprintln(w, "======================================")
}

func appendUnique(dst []string, vals ...string) []string {
	for _, v := range vals {
		found := false
		for _, existing := range dst {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}

// Package main provides the CLI entry point for the lldptlv tool.
//
// It parses command-line flags, then either captures LLDP frames on the
// selected network interface, decodes an LLDPDU given in hex, or prints an
// example LLDPDU encoding. Decoding and output formatting are delegated to
// the lldptlv and tlv packages.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"net"
	"net/netip"
	"os"
	"strings"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/pcap"
	"github.com/javadmohebbi/lldptlv"
	"github.com/javadmohebbi/lldptlv/tlv"
	"k8s.io/klog/v2"
)

// main parses command-line flags and runs the selected mode. In capture mode
// a BPF filter for LLDP traffic is installed and packets are handed to the
// lldptlv package for decoding and display. It can either exit after the
// first discovery or run continuously based on flags.
func main() {
	// Command-line flags:
	//   -i <interface>   : Select the network interface to capture on.
	//   -list            : List all available interfaces and exit.
	//   -continuous      : Keep listening and print all LLDP frames.
	//   -timeout <dur>   : Stop after the specified duration if not in continuous mode.
	//   -hex <bytes>     : Decode an LLDPDU (or a single TLV) given in hex and exit.
	//   -encode-demo     : Print the encoding of an example LLDPDU and exit.
	//   -metrics <addr>  : Serve Prometheus metrics on addr.
	iface := flag.String("i", "", "Interface name to capture on (required unless -list, -hex or -encode-demo)")
	list := flag.Bool("list", false, "List available interfaces and exit")
	continuous := flag.Bool("continuous", false, "Keep listening and print every LLDP frame")
	timeout := flag.Duration("timeout", 30*time.Second, "Stop after this duration if no frame received (ignored with -continuous)")
	hexInput := flag.String("hex", "", "Decode the LLDPDU given as hex (spaces and colons allowed) and exit")
	encodeDemo := flag.Bool("encode-demo", false, "Print the encoding of an example LLDPDU and exit")
	metricsAddr := flag.String("metrics", "", "Serve Prometheus metrics on this address, e.g. :9100")

	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if *metricsAddr != "" {
		go func() {
			if err := lldptlv.StartMetricsServer(*metricsAddr, "/metrics"); err != nil {
				lldptlv.ErrorLogMsg("metrics server stopped: %v", err)
			}
		}()
	}

	switch {
	case *list:
		if err := lldptlv.ListInterfaces(os.Stdout); err != nil {
			klog.Fatalf("%v", err)
		}
		return
	case *hexInput != "":
		if err := decodeHex(*hexInput); err != nil {
			klog.Fatalf("%v", err)
		}
		return
	case *encodeDemo:
		if err := printDemo(); err != nil {
			klog.Fatalf("%v", err)
		}
		return
	}

	// Require an interface unless running an offline mode.
	if *iface == "" {
		fmt.Println("You must specify -i <interface>, -list, -hex or -encode-demo")
		os.Exit(1)
	}

	handle, err := pcap.OpenLive(*iface, 1600, true, pcap.BlockForever)
	if err != nil {
		klog.Fatalf("pcap OpenLive failed on %s: %v", *iface, err)
	}
	defer handle.Close()

	bpf := "ether proto 0x88cc"
	if err := handle.SetBPFFilter(bpf); err != nil {
		klog.Fatalf("Failed to set BPF filter: %v", err)
	}
	lldptlv.DefaultLog("Listening on %s with filter: %q", *iface, bpf)

	packetSrc := gopacket.NewPacketSource(handle, handle.LinkType())
	// packets is a channel that yields packets as they arrive from the NIC.
	packets := packetSrc.Packets()

	var deadline time.Time
	if !*continuous {
		deadline = time.Now().Add(*timeout)
	}

	for {
		if !*continuous && !deadline.IsZero() && time.Now().After(deadline) {
			fmt.Println("Timeout reached, no LLDP frames seen.")
			return
		}

		select {
		case pkt, ok := <-packets:
			// If the packets channel closes, the capture handle was terminated.
			if !ok {
				fmt.Println("Packet source closed.")
				return
			}
			info, ok := lldptlv.DecodeDiscovery(pkt, *iface)
			if !ok {
				continue
			}
			lldptlv.PrintDiscovery(os.Stdout, info)
			// Exit immediately after first successful discovery when not in continuous mode.
			if !*continuous {
				return
			}
		// Periodic wake-up to allow timeout checks without blocking.
		case <-time.After(500 * time.Millisecond):
		}
	}
}

// decodeHex prints the rendering of every TLV in s. Malformed TLVs are
// reported after the ones that decoded.
func decodeHex(s string) error {
	s = strings.NewReplacer(" ", "", ":", "", "\n", "", "\t", "").Replace(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid hex input: %w", err)
	}
	records, err := lldptlv.ParseLLDPDU(b)
	for _, r := range records {
		fmt.Println(r)
	}
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	return nil
}

func printDemo() error {
	records, err := demoRecords()
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Printf("%-60s %X\n", r, tlv.Encode(r))
	}
	fmt.Printf("LLDPDU: %X\n", lldptlv.BuildLLDPDU(records...))
	return nil
}

func demoRecords() ([]tlv.Record, error) {
	mac, err := net.ParseMAC("00:11:22:33:44:55")
	if err != nil {
		return nil, err
	}
	chassis, err := tlv.NewChassisIDMAC(mac)
	if err != nil {
		return nil, err
	}
	port, err := tlv.NewPortID(tlv.PortIDInterfaceName, []byte("Gi1/0/24"))
	if err != nil {
		return nil, err
	}
	portDesc, err := tlv.NewPortDescription("uplink to core")
	if err != nil {
		return nil, err
	}
	name, err := tlv.NewSystemName("access-sw-01")
	if err != nil {
		return nil, err
	}
	caps, err := tlv.NewSystemCapabilities(
		uint16(tlv.CapabilityBridge|tlv.CapabilityRouter),
		uint16(tlv.CapabilityBridge))
	if err != nil {
		return nil, err
	}
	mgmt, err := tlv.NewManagementAddress(netip.MustParseAddr("192.0.2.100"), 5, tlv.IfNumberingIfIndex, nil)
	if err != nil {
		return nil, err
	}
	pvid, err := tlv.NewOrganizationallySpecific(tlv.OUIIEEE8021, 1, []byte{0x00, 0x64})
	if err != nil {
		return nil, err
	}
	return []tlv.Record{
		chassis, port, tlv.NewTTL(120), portDesc, name, caps, mgmt, pvid,
		tlv.NewEndOfLLDPDU(),
	}, nil
}

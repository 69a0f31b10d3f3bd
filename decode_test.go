package lldptlv

import (
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/javadmohebbi/lldptlv/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var neighborMAC = net.HardwareAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}

func neighborRecords(t *testing.T) []tlv.Record {
	t.Helper()
	records, err := ParseLLDPDU(join(chassisMAC, portName, ttl120, sysNameSW, endTLV))
	require.NoError(t, err)
	return records
}

func TestFrameFromRecords(t *testing.T) {
	t.Parallel()
	frame, err := FrameFromRecords(neighborMAC, neighborRecords(t)...)
	require.NoError(t, err)

	pkt := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)
	eth, ok := pkt.Layer(layers.LayerTypeEthernet).(*layers.Ethernet)
	require.True(t, ok)
	assert.Equal(t, "01:80:c2:00:00:0e", eth.DstMAC.String())
	assert.Equal(t, neighborMAC, eth.SrcMAC)
	assert.Equal(t, layers.EthernetTypeLinkLayerDiscovery, eth.EthernetType)
}

func TestDecodeDiscovery(t *testing.T) {
	t.Parallel()
	frame, err := FrameFromRecords(neighborMAC, neighborRecords(t)...)
	require.NoError(t, err)
	pkt := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)
	require.NotNil(t, pkt.Layer(layers.LayerTypeLinkLayerDiscovery))

	info, ok := DecodeDiscovery(pkt, "eth0")
	require.True(t, ok)
	assert.Equal(t, "LLDP", info.Proto)
	assert.Equal(t, "eth0", info.Interface)
	assert.Equal(t, "00:11:22:33:44:55", info.SourceMAC)
	assert.Equal(t, "00:11:22:33:44:55", info.ChassisID)
	assert.Equal(t, "Gi1/0/24", info.PortID)
	assert.Equal(t, "sw", info.SystemName)
	assert.EqualValues(t, 120, info.TTL)
	assert.False(t, info.DiscoveredAt.IsZero())
	assert.Equal(t, neighborRecords(t), info.Records)
}

func TestDecodeDiscoveryRawPayload(t *testing.T) {
	t.Parallel()
	// Without a Port ID TLV gopacket rejects the LLDP layer, so the Ethernet
	// payload is walked directly.
	records, err := ParseLLDPDU(join(chassisMAC, ttl120, sysNameSW, endTLV))
	require.NoError(t, err)
	frame, err := FrameFromRecords(neighborMAC, records...)
	require.NoError(t, err)
	pkt := gopacket.NewPacket(frame, layers.LayerTypeEthernet, gopacket.Default)
	require.Nil(t, pkt.Layer(layers.LayerTypeLinkLayerDiscovery))

	info, ok := DecodeDiscovery(pkt, "eth1")
	require.True(t, ok)
	assert.Equal(t, "sw", info.SystemName)
	assert.Empty(t, info.PortID)
	assert.Equal(t, records, info.Records)
}

func TestDecodeDiscoveryIgnoresOtherFrames(t *testing.T) {
	t.Parallel()
	eth := &layers.Ethernet{
		SrcMAC:       neighborMAC,
		DstMAC:       net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
		EthernetType: layers.EthernetTypeARP,
	}
	buf := gopacket.NewSerializeBuffer()
	require.NoError(t, gopacket.SerializeLayers(buf, gopacket.SerializeOptions{},
		eth, gopacket.Payload(join(chassisMAC, endTLV))))

	tests := []struct {
		name string
		data []byte
	}{
		{name: "ARP frame", data: buf.Bytes()},
		{name: "short frame", data: []byte{0x01, 0x02, 0x03}},
	}
	for _, tt := range tests {
		ts := tt
		t.Run(ts.name, func(t *testing.T) {
			t.Parallel()
			pkt := gopacket.NewPacket(ts.data, layers.LayerTypeEthernet, gopacket.Default)
			info, ok := DecodeDiscovery(pkt, "eth0")
			assert.False(t, ok)
			assert.Equal(t, DiscoveryInfo{}, info)
		})
	}
}

func TestRecordsFromLayer(t *testing.T) {
	t.Parallel()
	l := &layers.LinkLayerDiscovery{
		ChassisID: layers.LLDPChassisID{
			Subtype: layers.LLDPChassisIDSubTypeMACAddr,
			ID:      neighborMAC,
		},
		PortID: layers.LLDPPortID{
			Subtype: layers.LLDPPortIDSubtypeIfaceName,
			ID:      []byte("Gi1/0/24"),
		},
		TTL: 120,
		Values: []layers.LinkLayerDiscoveryValue{
			{Type: layers.LLDPTLVSysName, Length: 2, Value: []byte("sw")},
			{Type: layers.LLDPTLVType(9), Length: 1, Value: []byte{0x01}},
			{Type: layers.LLDPTLVSysCapabilities, Length: 2, Value: []byte{0x00, 0x04}},
		},
	}

	records, err := RecordsFromLayer(l)
	require.ErrorIs(t, err, tlv.ErrUnknownType)
	require.ErrorIs(t, err, tlv.ErrFixedLength)
	assert.Equal(t, neighborRecords(t), records)
}

func TestRawTLV(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []byte{0x0a, 0x02, 's', 'w'}, rawTLV(layers.LLDPTLVSysName, []byte("sw")))

	long := rawTLV(layers.LLDPTLVSysDescription, make([]byte, 300))
	_, err := tlv.Decode(long)
	assert.ErrorIs(t, err, tlv.ErrLengthOverflow)
}

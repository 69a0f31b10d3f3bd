package lldptlv

import (
	"testing"

	"github.com/javadmohebbi/lldptlv/tlv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	chassisMAC = []byte{0x02, 0x07, 0x04, 0x00, 0x11, 0x22, 0x33, 0x44, 0x55}
	portName   = []byte{0x04, 0x09, 0x05, 'G', 'i', '1', '/', '0', '/', '2', '4'}
	ttl120     = []byte{0x06, 0x02, 0x00, 0x78}
	sysNameSW  = []byte{0x0a, 0x02, 's', 'w'}
	endTLV     = []byte{0x00, 0x00}
)

func join(parts ...[]byte) []byte {
	var b []byte
	for _, p := range parts {
		b = append(b, p...)
	}
	return b
}

func TestParseLLDPDU(t *testing.T) {
	t.Parallel()
	b := join(chassisMAC, portName, ttl120, sysNameSW, endTLV)

	records, err := ParseLLDPDU(b)
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, `ChassisIdTLV(4, "00:11:22:33:44:55")`, records[0].String())
	assert.Equal(t, `PortIdTLV(5, "Gi1/0/24")`, records[1].String())
	assert.Equal(t, tlv.NewTTL(120), records[2])
	assert.Equal(t, `SystemNameTLV("sw")`, records[3].String())
	assert.Equal(t, tlv.NewEndOfLLDPDU(), records[4])
}

func TestParseLLDPDUStopsAtEnd(t *testing.T) {
	t.Parallel()
	b := join(chassisMAC, endTLV, sysNameSW, []byte{0xff})

	records, err := ParseLLDPDU(b)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, tlv.TypeEndOfLLDPDU, records[1].Type())
}

func TestParseLLDPDUSkipsMalformed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		bad  []byte
		want error
	}{
		{
			name: "TTL with three bytes",
			bad:  []byte{0x06, 0x03, 0x00, 0x78, 0x00},
			want: tlv.ErrFixedLength,
		},
		{
			name: "reserved type",
			bad:  []byte{0x12, 0x01, 0xaa},
			want: tlv.ErrUnknownType,
		},
		{
			name: "capabilities enabled but not supported",
			bad:  []byte{0x0e, 0x04, 0x00, 0x04, 0x00, 0x10},
			want: tlv.ErrCapabilityViolation,
		},
		{
			name: "invalid UTF-8 system name",
			bad:  []byte{0x0a, 0x02, 0xff, 0xfe},
			want: tlv.ErrMalformedText,
		},
	}
	for _, tt := range tests {
		ts := tt
		t.Run(ts.name, func(t *testing.T) {
			t.Parallel()
			b := join(chassisMAC, ts.bad, sysNameSW, endTLV)

			records, err := ParseLLDPDU(b)
			require.ErrorIs(t, err, ts.want)
			require.Len(t, records, 3)
			assert.Equal(t, tlv.TypeChassisID, records[0].Type())
			assert.Equal(t, tlv.TypeSystemName, records[1].Type())
			assert.Equal(t, tlv.TypeEndOfLLDPDU, records[2].Type())
		})
	}
}

func TestParseLLDPDUStopsAtMalformedEnd(t *testing.T) {
	t.Parallel()
	b := join(chassisMAC, []byte{0x00, 0x01, 0x00}, sysNameSW, endTLV)

	records, err := ParseLLDPDU(b)
	require.ErrorIs(t, err, tlv.ErrFixedLength)
	require.Len(t, records, 1)
	assert.Equal(t, tlv.TypeChassisID, records[0].Type())
}

func TestParseLLDPDUTruncated(t *testing.T) {
	t.Parallel()
	b := join(chassisMAC, []byte{0x0a, 0x10, 'A'})

	records, err := ParseLLDPDU(b)
	require.ErrorIs(t, err, tlv.ErrTruncated)
	require.ErrorIs(t, err, tlv.ErrMalformedText)
	require.Len(t, records, 1)
	assert.Equal(t, tlv.TypeChassisID, records[0].Type())
}

func TestBuildLLDPDU(t *testing.T) {
	t.Parallel()
	records, err := ParseLLDPDU(join(chassisMAC, portName, ttl120, sysNameSW, endTLV))
	require.NoError(t, err)

	b := BuildLLDPDU(records...)
	assert.Equal(t, join(chassisMAC, portName, ttl120, sysNameSW, endTLV), b)
	assert.Empty(t, BuildLLDPDU())

	again, err := ParseLLDPDU(b)
	require.NoError(t, err)
	assert.Equal(t, records, again)
}

func orgRecord(t *testing.T, oui [3]byte, subtype uint8, value []byte) tlv.OrganizationallySpecific {
	t.Helper()
	r, err := tlv.NewOrganizationallySpecific(oui, subtype, value)
	require.NoError(t, err)
	return r
}

func TestParseLLDPOrgTLV(t *testing.T) {
	t.Parallel()
	var info DiscoveryInfo

	parseLLDPOrgTLV(orgRecord(t, tlv.OUIIEEE8021, 1, []byte{0x00, 0x64}), &info)
	assert.Equal(t, "100", info.VLAN)

	parseLLDPOrgTLV(orgRecord(t, tlv.OUIIEEE8021, 2, []byte{0x06, 0x00, 0xc8}), &info)
	parseLLDPOrgTLV(orgRecord(t, tlv.OUIIEEE8021, 2, []byte{0x06, 0x00, 0xc8}), &info)
	assert.Equal(t, []string{"200"}, info.TaggedVLANs)

	parseLLDPOrgTLV(orgRecord(t, tlv.OUIIEEE8021, 3,
		[]byte{0x00, 0x64, 0x04, 'd', 'a', 't', 'a'}), &info)
	assert.Equal(t, []string{"VLAN 100 = data"}, info.VLANNames)

	// Voice application, VLAN 100, no flags or priority.
	parseLLDPOrgTLV(orgRecord(t, tlv.OUIMedia, 2, []byte{0x01, 0x00, 0xc8, 0x00}), &info)
	assert.Equal(t, "100", info.VoiceVLAN)

	unknown := orgRecord(t, [3]byte{0xaa, 0xbb, 0xcc}, 5, []byte("HURZ!"))
	parseLLDPOrgTLV(unknown, &info)
	assert.Contains(t, info.RawDetails, `OrganizationallySpecificTLV("AABBCC", 5, "4855525A21")`)
}

func TestApplyRecords(t *testing.T) {
	t.Parallel()
	records, err := ParseLLDPDU(join(
		chassisMAC, portName, ttl120, sysNameSW,
		[]byte{0x0e, 0x04, 0x00, 0x14, 0x00, 0x04},
		[]byte{0x10, 0x0c, 0x05, 0x01, 192, 0, 2, 100, 0x02, 0x00, 0x00, 0x00, 0x05, 0x00},
		endTLV))
	require.NoError(t, err)

	var info DiscoveryInfo
	require.True(t, applyRecords(records, &info))
	assert.Equal(t, "LLDP", info.Proto)
	assert.Equal(t, "00:11:22:33:44:55", info.ChassisID)
	assert.Equal(t, "Gi1/0/24", info.PortID)
	assert.EqualValues(t, 120, info.TTL)
	assert.Equal(t, "sw", info.SystemName)
	assert.Equal(t, []string{"bridge"}, info.Capabilities)
	assert.Equal(t, []string{"192.0.2.100"}, info.ManagementAddresses)
	assert.Equal(t, records, info.Records)
}

func TestApplyRecordsWithoutIdentity(t *testing.T) {
	t.Parallel()
	var info DiscoveryInfo
	assert.False(t, applyRecords([]tlv.Record{tlv.NewTTL(120), tlv.NewEndOfLLDPDU()}, &info))
	assert.False(t, parseLLDP([]byte{0x00, 0x00}, &info))
}

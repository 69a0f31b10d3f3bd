package lldptlv

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintDiscovery(t *testing.T) {
	t.Parallel()
	var info DiscoveryInfo
	require.True(t, applyRecords(neighborRecords(t), &info))
	info.Interface = "eth0"
	info.DiscoveredAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	PrintDiscovery(&buf, info)
	out := buf.String()
	assert.Contains(t, out, "Protocol     : LLDP\n")
	assert.Contains(t, out, "Discovered   : 2024-05-01T12:00:00Z\n")
	assert.Contains(t, out, "System Name  : sw\n")
	assert.Contains(t, out, "Port ID      : Gi1/0/24\n")
	assert.Contains(t, out, "TTL          : 120s\n")
	assert.Contains(t, out, "  - TtlTLV(120)\n")
	assert.NotContains(t, out, "VLAN")
}

func TestAppendUnique(t *testing.T) {
	t.Parallel()
	got := appendUnique([]string{"10"}, "20", "10", "30", "20")
	assert.Equal(t, []string{"10", "20", "30"}, got)
}

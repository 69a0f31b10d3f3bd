package tlv

import (
	"testing"

	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCapabilities(t *testing.T) SystemCapabilities {
	t.Helper()
	supported := CapabilityWLANAccessPoint | CapabilityBridge | CapabilityRouter | CapabilityDOCSIS
	enabled := CapabilityBridge | CapabilityRouter | CapabilityDOCSIS
	caps, err := NewSystemCapabilities(uint16(supported), uint16(enabled))
	require.NoError(t, err)
	return caps
}

func TestSystemCapabilities(t *testing.T) {
	t.Parallel()
	caps := testCapabilities(t)

	assert.Equal(t, TypeSystemCapabilities, caps.Type())
	assert.Equal(t, 4, caps.Len())
	assert.Equal(t, uint32(0x005c0054), caps.Value())
	assert.Equal(t, []byte{0x0e, 0x04, 0x00, 0x5c, 0x00, 0x54}, caps.Bytes())
	assert.Equal(t, "SystemCapabilitiesTLV(92, 84)", caps.String())
}

func TestDecodeSystemCapabilities(t *testing.T) {
	t.Parallel()
	caps, err := DecodeSystemCapabilities([]byte{0x0e, 0x04, 0x00, 0x14, 0x00, 0x04})
	require.NoError(t, err)
	assert.Equal(t, uint16(20), caps.SupportedBits(), "expected bridge and router supported")
	assert.Equal(t, uint16(4), caps.EnabledBits(), "expected only bridge enabled")
}

func TestSystemCapabilitiesSupportsEnabled(t *testing.T) {
	t.Parallel()
	caps := testCapabilities(t)

	assert.True(t, caps.Supports(CapabilityWLANAccessPoint|CapabilityBridge|CapabilityRouter|CapabilityDOCSIS))
	assert.True(t, caps.Supports(CapabilityRouter))
	for _, c := range []Capability{
		CapabilityOther, CapabilityRepeater, CapabilityTelephone, CapabilityStationOnly,
		CapabilityCVLAN, CapabilitySVLAN, CapabilityTwoPortMACRelay,
	} {
		assert.False(t, caps.Supports(c), c.Names())
		assert.False(t, caps.Enabled(c), c.Names())
	}
	// reserved bits
	assert.False(t, caps.Supports(0xf800))

	assert.True(t, caps.Enabled(CapabilityBridge|CapabilityRouter|CapabilityDOCSIS))
	assert.False(t, caps.Enabled(CapabilityWLANAccessPoint))
	assert.False(t, caps.Enabled(CapabilityBridge|CapabilityWLANAccessPoint))
}

func TestCapabilityContainment(t *testing.T) {
	t.Parallel()
	for _, supported := range []uint16{0x0000, 0x005c, 0x8001, 0xffff} {
		for e := 0; e <= 0xffff; e++ {
			enabled := uint16(e)
			want := enabled&^supported == 0

			_, err := NewSystemCapabilities(supported, enabled)
			if want != (err == nil) {
				t.Fatalf("NewSystemCapabilities(0x%04x, 0x%04x): err = %v, want ok = %v", supported, enabled, err, want)
			}

			b := []byte{0x0e, 0x04, byte(supported >> 8), byte(supported), byte(enabled >> 8), byte(enabled)}
			_, err = DecodeSystemCapabilities(b)
			if want != (err == nil) {
				t.Fatalf("DecodeSystemCapabilities(%x): err = %v, want ok = %v", b, err, want)
			}
		}
	}

	_, err := NewSystemCapabilities(0x0000, 0x0014)
	assert.ErrorIs(t, err, ErrCapabilityViolation)
}

func TestCapabilityNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"bridge", "router"}, (CapabilityBridge | CapabilityRouter).Names())
	assert.Equal(t, []string{"other", "bit15"}, Capability(0x8001).Names())
	assert.Nil(t, Capability(0).Names())
}

func TestCapabilityBitsInterop(t *testing.T) {
	t.Parallel()
	caps, err := NewSystemCapabilities(layers.LLDPCapsBridge|layers.LLDPCapsRouter, layers.LLDPCapsBridge)
	require.NoError(t, err)
	assert.True(t, caps.Supports(CapabilityBridge|CapabilityRouter))
	assert.True(t, caps.Enabled(CapabilityBridge))
	assert.False(t, caps.Enabled(CapabilityRouter))
	assert.Equal(t, []string{"two-port-mac-relay"}, Capability(layers.LLDPCapsTmpr).Names())
}

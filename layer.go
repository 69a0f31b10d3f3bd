package lldptlv

import (
	"encoding/binary"
	"errors"

	"github.com/google/gopacket/layers"
	"github.com/javadmohebbi/lldptlv/tlv"
)

// RecordsFromLayer converts an LLDP layer decoded by gopacket into typed
// records. gopacket keeps the mandatory TLVs in dedicated fields and drops
// the End of LLDPDU TLV, so the result is rebuilt in wire order: chassis ID,
// port ID, TTL, the remaining values, End of LLDPDU. Values that fail to
// decode are skipped and reported in the joined error.
func RecordsFromLayer(l *layers.LinkLayerDiscovery) ([]tlv.Record, error) {
	raws := make([][]byte, 0, len(l.Values)+3)
	raws = append(raws,
		rawTLV(layers.LLDPTLVChassisID, append([]byte{byte(l.ChassisID.Subtype)}, l.ChassisID.ID...)),
		rawTLV(layers.LLDPTLVPortID, append([]byte{byte(l.PortID.Subtype)}, l.PortID.ID...)),
		rawTLV(layers.LLDPTLVTTL, binary.BigEndian.AppendUint16(nil, l.TTL)),
	)
	for _, v := range l.Values {
		raws = append(raws, rawTLV(v.Type, v.Value))
	}

	records := make([]tlv.Record, 0, len(raws)+1)
	var errs []error
	for _, raw := range raws {
		r, err := tlv.Decode(raw)
		if err != nil {
			countError(err)
			errs = append(errs, err)
			continue
		}
		countRecord(r)
		records = append(records, r)
	}
	records = append(records, tlv.NewEndOfLLDPDU())
	return records, errors.Join(errs...)
}

// rawTLV re-frames a value gopacket already split out. Values longer than the
// length field can express keep their low length bits and fail to decode.
func rawTLV(t layers.LLDPTLVType, value []byte) []byte {
	b := make([]byte, 0, 2+len(value))
	ext, lo, err := tlv.EncodeLength(len(value))
	if err != nil {
		ext, lo = 1, byte(len(value))
	}
	b = append(b, byte(t)<<1|ext, lo)
	return append(b, value...)
}

package tlv

import (
	"encoding/binary"
	"strconv"
)

const ttlLen = 2

// TTL carries the number of seconds the receiver should consider the
// advertised information valid. Zero tells the receiver to drop it at once.
//
//	+--------+--------+--------+--------+
//	| 0x06   | 0x02   |  seconds (BE)   |
//	+--------+--------+--------+--------+
type TTL struct {
	seconds uint16
}

func NewTTL(seconds uint16) TTL {
	return TTL{seconds: seconds}
}

// DecodeTTL decodes a Time To Live TLV. The payload must be exactly two
// octets.
func DecodeTTL(b []byte) (TTL, error) {
	p, err := fixed(b, TypeTTL, ttlLen)
	if err != nil {
		return TTL{}, err
	}
	return TTL{seconds: binary.BigEndian.Uint16(p)}, nil
}

// Seconds returns the time to live in seconds.
func (t TTL) Seconds() uint16 { return t.seconds }

func (TTL) Type() Type { return TypeTTL }

func (TTL) Len() int { return ttlLen }

func (t TTL) Bytes() []byte {
	b := appendHeader(make([]byte, 0, headerLen+ttlLen), TypeTTL, ttlLen)
	return binary.BigEndian.AppendUint16(b, t.seconds)
}

func (t TTL) String() string {
	return "TtlTLV(" + strconv.Itoa(int(t.seconds)) + ")"
}

func (TTL) record() {}

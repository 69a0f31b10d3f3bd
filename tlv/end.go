package tlv

// EndOfLLDPDU marks the end of the TLV sequence in an LLDPDU. Its payload is
// always empty, so it encodes as 0x00 0x00.
type EndOfLLDPDU struct{}

func NewEndOfLLDPDU() EndOfLLDPDU { return EndOfLLDPDU{} }

// DecodeEndOfLLDPDU decodes an End of LLDPDU TLV. Any nonzero length fails
// with ErrFixedLength.
func DecodeEndOfLLDPDU(b []byte) (EndOfLLDPDU, error) {
	if _, err := fixed(b, TypeEndOfLLDPDU, 0); err != nil {
		return EndOfLLDPDU{}, err
	}
	return EndOfLLDPDU{}, nil
}

func (EndOfLLDPDU) Type() Type { return TypeEndOfLLDPDU }

func (EndOfLLDPDU) Len() int { return 0 }

func (e EndOfLLDPDU) Bytes() []byte {
	return appendHeader(make([]byte, 0, headerLen), TypeEndOfLLDPDU, 0)
}

func (EndOfLLDPDU) String() string { return "EndOfLLDPDUTLV" }

func (EndOfLLDPDU) record() {}

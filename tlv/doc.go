// Package tlv encodes and decodes the Type-Length-Value records that make up
// an LLDPDU as defined by IEEE 802.1AB.
//
// Every TLV starts with a two octet envelope:
//
//	 0                   1
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|    type     |      length     |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// The 7-bit type selects one of the record kinds in this package, the length
// counts the payload octets that follow. Decode reads any known TLV into a
// Record, the per-type DecodeX functions read one kind, and Record.Bytes
// produces the exact wire form again. Constructors validate the same
// invariants the decoders enforce, so every Record returned by a constructor
// or decoder encodes to bytes the decoders accept. Zero values of the record
// structs are not guaranteed to be valid TLVs.
//
// The package does no I/O and keeps no state. It does not check the order of
// TLVs in an LLDPDU or whether mandatory TLVs are present.
package tlv

package tlv

import (
	"fmt"
	"unicode/utf8"
)

// maxTextLen bounds text payloads to what the length octet alone can carry.
const maxTextLen = 0xff

// PortDescription is an alphanumeric description of the sending port,
// typically ifDescr.
type PortDescription struct {
	text string
}

// SystemName is the administratively assigned name of the system, typically
// its fully qualified domain name.
type SystemName struct {
	text string
}

// SystemDescription describes the system: hardware type, operating system
// and networking software.
type SystemDescription struct {
	text string
}

// NewPortDescription returns a Port Description TLV. The text must be valid
// UTF-8 of at most 255 bytes.
func NewPortDescription(text string) (PortDescription, error) {
	if err := checkText(TypePortDescription, text); err != nil {
		return PortDescription{}, err
	}
	return PortDescription{text: text}, nil
}

// NewSystemName returns a System Name TLV. The text must be valid UTF-8 of
// at most 255 bytes.
func NewSystemName(text string) (SystemName, error) {
	if err := checkText(TypeSystemName, text); err != nil {
		return SystemName{}, err
	}
	return SystemName{text: text}, nil
}

// NewSystemDescription returns a System Description TLV. The text must be
// valid UTF-8 of at most 255 bytes.
func NewSystemDescription(text string) (SystemDescription, error) {
	if err := checkText(TypeSystemDescription, text); err != nil {
		return SystemDescription{}, err
	}
	return SystemDescription{text: text}, nil
}

func DecodePortDescription(b []byte) (PortDescription, error) {
	s, err := decodeText(b, TypePortDescription)
	if err != nil {
		return PortDescription{}, err
	}
	return PortDescription{text: s}, nil
}

func DecodeSystemName(b []byte) (SystemName, error) {
	s, err := decodeText(b, TypeSystemName)
	if err != nil {
		return SystemName{}, err
	}
	return SystemName{text: s}, nil
}

func DecodeSystemDescription(b []byte) (SystemDescription, error) {
	s, err := decodeText(b, TypeSystemDescription)
	if err != nil {
		return SystemDescription{}, err
	}
	return SystemDescription{text: s}, nil
}

func (p PortDescription) Text() string { return p.text }
func (PortDescription) Type() Type { return TypePortDescription }
func (p PortDescription) Len() int { return len(p.text) }
func (p PortDescription) Bytes() []byte { return appendText(TypePortDescription, p.text) }
func (p PortDescription) String() string { return renderText("PortDescriptionTLV", p.text) }
func (PortDescription) record() {}

func (s SystemName) Text() string { return s.text }
func (SystemName) Type() Type { return TypeSystemName }
func (s SystemName) Len() int { return len(s.text) }
func (s SystemName) Bytes() []byte { return appendText(TypeSystemName, s.text) }
func (s SystemName) String() string { return renderText("SystemNameTLV", s.text) }
func (SystemName) record() {}

func (s SystemDescription) Text() string { return s.text }
func (SystemDescription) Type() Type { return TypeSystemDescription }
func (s SystemDescription) Len() int { return len(s.text) }
func (s SystemDescription) Bytes() []byte { return appendText(TypeSystemDescription, s.text) }
func (s SystemDescription) String() string { return renderText("SystemDescriptionTLV", s.text) }
func (SystemDescription) record() {}

func checkText(t Type, s string) error {
	if len(s) > maxTextLen {
		return fmt.Errorf("new %s: %w: %d bytes, max %d", t, ErrLengthOverflow, len(s), maxTextLen)
	}
	if !utf8.ValidString(s) {
		return fmt.Errorf("new %s: %w: invalid UTF-8", t, ErrMalformedText)
	}
	return nil
}

// decodeText returns the UTF-8 payload of a text TLV. A payload shorter than
// the length field is reported as malformed text as well as truncation.
func decodeText(b []byte, t Type) (string, error) {
	n, err := header(b, t)
	if err != nil {
		return "", err
	}
	if len(b)-headerLen < n {
		return "", fmt.Errorf("decode %s: %w: %w: length %d, %d bytes available",
			t, ErrMalformedText, ErrTruncated, n, len(b)-headerLen)
	}
	p := b[headerLen : headerLen+n]
	if !utf8.Valid(p) {
		return "", fmt.Errorf("decode %s: %w: invalid UTF-8", t, ErrMalformedText)
	}
	return string(p), nil
}

func appendText(t Type, s string) []byte {
	b := appendHeader(make([]byte, 0, headerLen+len(s)), t, len(s))
	return append(b, s...)
}

func renderText(name, s string) string {
	return name + `("` + s + `")`
}

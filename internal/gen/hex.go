package gen

import (
	"encoding/hex"
	"strings"
	"unicode"
)

// DecodeHex decodes hex text into bytes, most significant nibble first.
// Whitespace anywhere in text is ignored.
func DecodeHex(text string) ([]byte, error) {
	cleaned := []rune(stripSpace(text))
	if len(cleaned)%2 != 0 {
		return nil, &DecodeError{Reason: ErrOddLength, Offset: len(cleaned)}
	}
	for i, r := range cleaned {
		if !isHexDigit(r) {
			return nil, &DecodeError{Reason: ErrInvalidDigit, Offset: i, Char: r}
		}
	}
	out := make([]byte, len(cleaned)/2)
	if _, err := hex.Decode(out, []byte(string(cleaned))); err != nil {
		return nil, &DecodeError{Reason: ErrInvalidDigit}
	}
	return out, nil
}

// EncodeHex renders data as upper-case hex. A positive group inserts a
// space after every group bytes.
func EncodeHex(data []byte, group int) string {
	encoded := strings.ToUpper(hex.EncodeToString(data))
	if group <= 0 || len(data) <= group {
		return encoded
	}
	var buf strings.Builder
	buf.Grow(len(encoded) + len(data)/group)
	for i := 0; i < len(encoded); i += 2 * group {
		if i > 0 {
			buf.WriteByte(' ')
		}
		end := i + 2*group
		if end > len(encoded) {
			end = len(encoded)
		}
		buf.WriteString(encoded[i:end])
	}
	return buf.String()
}

func stripSpace(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

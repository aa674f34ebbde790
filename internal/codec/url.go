package codec

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var ErrInvalidURLEncoding = errors.New("invalid percent-encoded input")

const upperHex = "0123456789ABCDEF"

// unreserved reports whether b passes through EncodeURIComponent as is.
func unreserved(b byte) bool {
	switch {
	case 'a' <= b && b <= 'z', 'A' <= b && b <= 'Z', '0' <= b && b <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", b) >= 0
}

// EncodeURIComponent percent-encodes every UTF-8 byte of text outside
// A-Z a-z 0-9 and -_.!~*'(). Spaces become %20.
func EncodeURIComponent(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for i := 0; i < len(text); i++ {
		b := text[i]
		if unreserved(b) {
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperHex[b>>4])
		sb.WriteByte(upperHex[b&0x0f])
	}
	return sb.String()
}

// DecodeURIComponent reverses EncodeURIComponent. A '+' is kept literally.
// Malformed escapes and byte sequences that are not valid UTF-8 fail with
// ErrInvalidURLEncoding.
func DecodeURIComponent(text string) (string, error) {
	buf := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		if text[i] != '%' {
			buf = append(buf, text[i])
			continue
		}
		if i+2 >= len(text) {
			return "", ErrInvalidURLEncoding
		}
		hi, ok1 := unhex(text[i+1])
		lo, ok2 := unhex(text[i+2])
		if !ok1 || !ok2 {
			return "", ErrInvalidURLEncoding
		}
		buf = append(buf, hi<<4|lo)
		i += 2
	}
	if !utf8.Valid(buf) {
		return "", ErrInvalidURLEncoding
	}
	return string(buf), nil
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

package codec

import (
	"encoding/base64"
	"errors"
	"strings"
	"unicode"
)

var ErrInvalidBase64 = errors.New("invalid base64 input")

// EncodeBase64 encodes the UTF-8 bytes of text. With urlSafe the URL
// alphabet is used and padding is dropped.
func EncodeBase64(text string, urlSafe bool) string {
	if urlSafe {
		return base64.RawURLEncoding.EncodeToString([]byte(text))
	}
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// DecodeBase64 reverses EncodeBase64. Whitespace anywhere in the input is
// ignored and padding is optional in both alphabets.
func DecodeBase64(text string, urlSafe bool) (string, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	clean = strings.TrimRight(clean, "=")

	enc := base64.RawStdEncoding
	if urlSafe {
		enc = base64.RawURLEncoding
	}

	out, err := enc.DecodeString(clean)
	if err != nil {
		return "", errors.Join(ErrInvalidBase64, err)
	}
	return string(out), nil
}

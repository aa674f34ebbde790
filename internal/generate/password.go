package generate

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
)

const (
	MinPasswordLength     = 4
	MaxPasswordLength     = 64
	DefaultPasswordLength = 16

	upperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars  = "abcdefghijklmnopqrstuvwxyz"
	digitChars  = "0123456789"
	symbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// PasswordOptions selects the length and character classes of a password.
type PasswordOptions struct {
	Length    int  `json:"length"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Numbers   bool `json:"numbers"`
	Symbols   bool `json:"symbols"`
}

// DefaultPasswordOptions enables every character class.
func DefaultPasswordOptions() PasswordOptions {
	return PasswordOptions{
		Length:    DefaultPasswordLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

func (o PasswordOptions) charset() string {
	var cs string
	if o.Uppercase {
		cs += upperChars
	}
	if o.Lowercase {
		cs += lowerChars
	}
	if o.Numbers {
		cs += digitChars
	}
	if o.Symbols {
		cs += symbolChars
	}
	return cs
}

// Password draws each character uniformly from the enabled classes using
// crypto/rand. Length is clamped to [MinPasswordLength, MaxPasswordLength].
// With no class enabled the password is empty.
func Password(opts PasswordOptions) (string, error) {
	cs := opts.charset()
	if cs == "" {
		return "", nil
	}
	n := max(MinPasswordLength, min(MaxPasswordLength, opts.Length))

	limit := big.NewInt(int64(len(cs)))
	out := make([]byte, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		out[i] = cs[idx.Int64()]
	}
	return string(out), nil
}

// Strength is a password score with its label.
type Strength struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

var (
	hasLower  = regexp.MustCompile(`[a-z]`)
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasDigit  = regexp.MustCompile(`[0-9]`)
	hasSymbol = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// PasswordStrength scores pwd from 0 to 7: one point each for reaching 8,
// 12 and 16 characters, and one for each of lowercase, uppercase, digits
// and other characters.
func PasswordStrength(pwd string) Strength {
	if pwd == "" {
		return Strength{Score: 0, Label: "Very Weak"}
	}

	score := 0
	for _, ok := range []bool{
		len(pwd) >= 8,
		len(pwd) >= 12,
		len(pwd) >= 16,
		hasLower.MatchString(pwd),
		hasUpper.MatchString(pwd),
		hasDigit.MatchString(pwd),
		hasSymbol.MatchString(pwd),
	} {
		if ok {
			score++
		}
	}

	switch {
	case score <= 2:
		return Strength{score, "Weak"}
	case score <= 4:
		return Strength{score, "Fair"}
	case score <= 6:
		return Strength{score, "Good"}
	}
	return Strength{score, "Strong"}
}

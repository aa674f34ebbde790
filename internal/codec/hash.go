package codec

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Algorithms lists the supported digests in display order.
var Algorithms = []string{"md5", "sha1", "sha256", "sha512", "sha3-256"}

var hashers = map[string]func() hash.Hash{
	"md5":      md5.New,
	"sha1":     sha1.New,
	"sha256":   sha256.New,
	"sha512":   sha512.New,
	"sha3-256": sha3.New256,
}

// HashSet maps algorithm name to lowercase hex digest.
type HashSet map[string]string

// Hash returns the hex digest of text under algorithm (case-insensitive).
func Hash(algorithm, text string) (string, error) {
	newHash, ok := hashers[strings.ToLower(algorithm)]
	if !ok {
		return "", fmt.Errorf("unknown hash algorithm %q", algorithm)
	}
	h := newHash()
	h.Write([]byte(text))
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Hashes digests text with every algorithm. Whitespace-only input gives an
// empty set.
func Hashes(text string) HashSet {
	set := HashSet{}
	if strings.TrimSpace(text) == "" {
		return set
	}
	for _, alg := range Algorithms {
		set[alg], _ = Hash(alg, text)
	}
	return set
}

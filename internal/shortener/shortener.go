// Package shortener simulates a URL shortener. Codes are derived from a
// hash of the URL and kept in a bounded in-memory history; nothing is
// persisted and no redirect is served.
package shortener

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf16"

	"github.com/samber/lo"
)

const (
	DefaultBaseURL      = "http://localhost:8080"
	DefaultHistoryLimit = 10
	codeLength          = 6
)

var ErrInvalidURL = errors.New("invalid URL: an absolute URL with scheme and host is required")

// ShortURL is one shortened link.
type ShortURL struct {
	Original  string    `json:"original"`
	Short     string    `json:"short"`
	Code      string    `json:"code"`
	Clicks    int       `json:"clicks"`
	CreatedAt time.Time `json:"created_at"`
}

// Shortener holds the recent history. The zero value is not usable; call New.
type Shortener struct {
	baseURL string
	limit   int
	now     func() time.Time

	mu      sync.Mutex
	history []ShortURL
}

// New returns a Shortener that builds links under baseURL and remembers the
// limit most recent entries. Empty or non-positive arguments fall back to
// the defaults.
func New(baseURL string, limit int) *Shortener {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &Shortener{
		baseURL: strings.TrimRight(baseURL, "/"),
		limit:   limit,
		now:     time.Now,
	}
}

// Code hashes s with the 32-bit rolling hash h = h*31 + c over its UTF-16
// code units and returns the first six base-36 digits of |h|.
func Code(s string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	code := strconv.FormatInt(v, 36)
	if len(code) > codeLength {
		code = code[:codeLength]
	}
	return code
}

// Shorten validates raw, derives its code and records it as the newest
// history entry.
func (s *Shortener) Shorten(raw string) (ShortURL, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ShortURL{}, ErrInvalidURL
	}

	code := Code(raw)
	entry := ShortURL{
		Original:  raw,
		Short:     s.baseURL + "/s/" + code,
		Code:      code,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append([]ShortURL{entry}, s.history...)
	if len(s.history) > s.limit {
		s.history = s.history[:s.limit]
	}
	return entry, nil
}

// History returns a copy of the entries, newest first.
func (s *Shortener) History() []ShortURL {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ShortURL(nil), s.history...)
}

// Lookup finds the newest entry with the given code.
func (s *Shortener) Lookup(code string) (ShortURL, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo.Find(s.history, func(e ShortURL) bool { return e.Code == code })
}

// Clear forgets every entry.
func (s *Shortener) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

package textfmt

import (
	"math"
	"regexp"
	"strings"
)

// cssRules run in order. Each later rule assumes the earlier ones already
// collapsed whitespace.
var cssRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`/\*[\s\S]*?\*/`), ""}, // comments
	{regexp.MustCompile(`\s+`), " "},
	{regexp.MustCompile(`;\s+`), ";"},
	{regexp.MustCompile(`:\s+`), ":"},
	{regexp.MustCompile(`\{\s+`), "{"},
	{regexp.MustCompile(`;\s*\}`), "}"},
	{regexp.MustCompile(`;\}`), "}"},
}

// MinifyCSS strips comments and redundant whitespace from css.
//
// This is a textual minifier: it does not parse CSS, so it never rewrites
// values, and whitespace inside strings is collapsed like any other.
func MinifyCSS(css string) string {
	out := css
	for _, r := range cssRules {
		out = r.re.ReplaceAllString(out, r.repl)
	}
	return strings.TrimSpace(out)
}

// CSSStats summarizes a minification.
type CSSStats struct {
	Minified       string  `json:"minified"`
	OriginalSize   int     `json:"original_size"`
	MinifiedSize   int     `json:"minified_size"`
	SavingsPercent float64 `json:"savings_percent"`
}

// MinifyCSSStats minifies css and reports byte sizes and the percentage
// saved, rounded to one decimal.
func MinifyCSSStats(css string) (*CSSStats, error) {
	if strings.TrimSpace(css) == "" {
		return nil, ErrEmptyInput
	}

	minified := MinifyCSS(css)
	stats := &CSSStats{
		Minified:     minified,
		OriginalSize: len(css),
		MinifiedSize: len(minified),
	}
	saved := float64(stats.OriginalSize-stats.MinifiedSize) / float64(stats.OriginalSize) * 100
	stats.SavingsPercent = math.Round(saved*10) / 10
	return stats, nil
}

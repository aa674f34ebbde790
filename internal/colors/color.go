package colors

import (
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"strconv"
)

// RGB represents a color as 8-bit red, green and blue channels.
type RGB struct {
	R int `json:"r"` // Red component (0-255)
	G int `json:"g"` // Green component (0-255)
	B int `json:"b"` // Blue component (0-255)
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSL struct {
	H int `json:"h"` // Hue: 0-359 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// Color contains a color value in its hex, RGB and HSL representations.
//
// A Color is a value: deriving a new color (a different hue, a lighter
// variant) always produces a new Color.
type Color struct {
	Hex string `json:"hex"` // "#rrggbb", lowercase
	RGB RGB    `json:"rgb"`
	HSL HSL    `json:"hsl"`
}

var hexPattern = regexp.MustCompile(`(?i)^#?([a-f\d]{2})([a-f\d]{2})([a-f\d]{2})$`)

// ValidHex reports whether s is six hex digits with an optional leading '#'.
func ValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// HexToRGB parses a hex color such as "#3B82F6" or "3b82f6".
//
// Malformed input (wrong length, invalid characters) yields black. This is a
// compatibility fallback, not an error: existing callers pass unvalidated text
// straight from an input field.
func HexToRGB(hex string) RGB {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}
	}

	channel := func(s string) int {
		v, _ := strconv.ParseUint(s, 16, 8)
		return int(v)
	}

	return RGB{R: channel(m[1]), G: channel(m[2]), B: channel(m[3])}
}

// RGBToHex formats 8-bit channels as "#rrggbb".
//
// Channels are expected in 0-255; callers clamp out-of-range values.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// RGBToHSL converts 8-bit RGB values to HSL color space.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Calculate Lightness as (max + min) / 2
//  4. Calculate Saturation based on lightness
//  5. Calculate Hue based on which component is max
//
// All three results are rounded to the nearest integer. A hue that rounds up
// to 360 wraps to 0.
func RGBToHSL(r, g, b int) HSL {
	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))

	l := (maxC + minC) / 2.0

	// Achromatic: hue is undefined and reported as 0.
	if maxC == minC {
		return HSL{H: 0, S: 0, L: round(l * 100)}
	}

	d := maxC - minC

	var s float64
	if l > 0.5 {
		s = d / (2.0 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h /= 6

	return HSL{
		H: round(h*360) % 360,
		S: round(s * 100),
		L: round(l * 100),
	}
}

// HSLToRGB converts HSL (degrees, percent, percent) to 8-bit RGB.
func HSLToRGB(h, s, l int) RGB {
	hf := float64(h) / 360.0
	sf := float64(s) / 100.0
	lf := float64(l) / 100.0

	if sf == 0 {
		v := round(lf * 255)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if lf < 0.5 {
		q = lf * (1 + sf)
	} else {
		q = lf + sf - lf*sf
	}
	p := 2*lf - q

	return RGB{
		R: round(hueToRGB(p, q, hf+1.0/3.0) * 255),
		G: round(hueToRGB(p, q, hf) * 255),
		B: round(hueToRGB(p, q, hf-1.0/3.0) * 255),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// round rounds half up, matching how the displayed values were always
// computed. Inputs here are never negative.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// NewColor builds a Color from a hex string. Malformed input yields black,
// see HexToRGB.
func NewColor(hex string) Color {
	rgb := HexToRGB(hex)
	return Color{
		Hex: RGBToHex(rgb.R, rgb.G, rgb.B),
		RGB: rgb,
		HSL: RGBToHSL(rgb.R, rgb.G, rgb.B),
	}
}

// FromHSL builds a Color from an HSL triple. The triple is kept as given
// rather than recomputed from the rounded RGB channels.
func FromHSL(h, s, l int) Color {
	rgb := HSLToRGB(h, s, l)
	return Color{
		Hex: RGBToHex(rgb.R, rgb.G, rgb.B),
		RGB: rgb,
		HSL: HSL{H: h, S: s, L: l},
	}
}

// RandomHex returns a random "#rrggbb" color drawn from rng.
func RandomHex(rng *rand.Rand) string {
	return fmt.Sprintf("#%06x", rng.IntN(0xffffff))
}

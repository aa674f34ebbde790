package colors

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
)

// GradientType selects between CSS linear and radial gradients.
type GradientType string

const (
	GradientLinear GradientType = "linear"
	GradientRadial GradientType = "radial"
)

const (
	MinStops = 2
	MaxStops = 5

	// NewStopColor is the color given to stops added with AddStop.
	NewStopColor = "#FF6B6B"
)

var (
	ErrTooFewStops         = errors.New("gradient needs at least 2 color stops")
	ErrTooManyStops        = errors.New("gradient supports at most 5 color stops")
	ErrUnknownGradientType = errors.New("unknown gradient type")
	ErrStopIndex           = errors.New("stop index out of range")
)

// GradientStop is one color stop. Position is a percentage along the
// gradient line.
type GradientStop struct {
	Color    string `json:"color"`
	Position int    `json:"position"`
}

// Gradient describes a CSS gradient.
//
// Angle only applies to linear gradients; radial gradients are always
// rendered as "circle".
type Gradient struct {
	Type  GradientType   `json:"type"`
	Angle int            `json:"angle"`
	Stops []GradientStop `json:"stops"`
}

// DefaultGradient is the starting point of the gradient tool.
func DefaultGradient() Gradient {
	return Gradient{
		Type:  GradientLinear,
		Angle: 90,
		Stops: []GradientStop{
			{Color: "#3B82F6", Position: 0},
			{Color: "#8B5CF6", Position: 100},
		},
	}
}

// Preset is a named two-stop gradient.
type Preset struct {
	Name  string         `json:"name"`
	Stops []GradientStop `json:"stops"`
}

// Presets returns the built-in gradient presets.
func Presets() []Preset {
	two := func(from, to string) []GradientStop {
		return []GradientStop{{Color: from, Position: 0}, {Color: to, Position: 100}}
	}
	return []Preset{
		{Name: "Sunset", Stops: two("#FF6B6B", "#4ECDC4")},
		{Name: "Ocean", Stops: two("#667eea", "#764ba2")},
		{Name: "Forest", Stops: two("#134E5E", "#71B280")},
		{Name: "Fire", Stops: two("#F12711", "#F5AF19")},
		{Name: "Purple Dream", Stops: two("#667eea", "#764ba2")},
	}
}

// PresetByName finds a preset, ignoring case.
func PresetByName(name string) (Preset, bool) {
	return lo.Find(Presets(), func(p Preset) bool {
		return strings.EqualFold(p.Name, name)
	})
}

// Normalize returns a copy with the type defaulted to linear, the angle
// clamped to [0, 360] and every stop position clamped to [0, 100].
func (g Gradient) Normalize() Gradient {
	out := Gradient{
		Type:  g.Type,
		Angle: clamp(g.Angle, 0, 360),
		Stops: make([]GradientStop, len(g.Stops)),
	}
	if out.Type == "" {
		out.Type = GradientLinear
	}
	for i, s := range g.Stops {
		out.Stops[i] = GradientStop{Color: s.Color, Position: clamp(s.Position, 0, 100)}
	}
	return out
}

// Validate checks the stop count and gradient type.
func (g Gradient) Validate() error {
	switch g.Type {
	case GradientLinear, GradientRadial:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGradientType, g.Type)
	}
	if len(g.Stops) < MinStops {
		return ErrTooFewStops
	}
	if len(g.Stops) > MaxStops {
		return ErrTooManyStops
	}
	return nil
}

// sortedStops returns the stops ordered by position without touching g.
func (g Gradient) sortedStops() []GradientStop {
	stops := append([]GradientStop(nil), g.Stops...)
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Position < stops[j].Position
	})
	return stops
}

// CSS renders the gradient function, e.g.
//
//	linear-gradient(90deg, #3B82F6 0%, #8B5CF6 100%)
//	radial-gradient(circle, #3B82F6 0%, #8B5CF6 100%)
func (g Gradient) CSS() string {
	parts := lo.Map(g.sortedStops(), func(s GradientStop, _ int) string {
		return fmt.Sprintf("%s %d%%", s.Color, s.Position)
	})
	colorStops := strings.Join(parts, ", ")

	if g.Type == GradientRadial {
		return fmt.Sprintf("radial-gradient(circle, %s)", colorStops)
	}
	return fmt.Sprintf("linear-gradient(%ddeg, %s)", g.Angle, colorStops)
}

// Declaration renders the CSS declaration copied to the clipboard.
func (g Gradient) Declaration() string {
	return fmt.Sprintf("background: %s;", g.CSS())
}

// Stylesheet renders the downloadable gradient.css, including vendor
// prefixed fallbacks.
func (g Gradient) Stylesheet() string {
	css := g.CSS()
	var b strings.Builder
	b.WriteString("/* CSS Gradient */\n")
	b.WriteString(".gradient {\n")
	fmt.Fprintf(&b, "  background: %s;\n", css)
	b.WriteString("  /* Fallback for old browsers */\n")
	fmt.Fprintf(&b, "  background: -webkit-%s;\n", css)
	fmt.Fprintf(&b, "  background: -moz-%s;\n", css)
	b.WriteString("}\n\n")
	b.WriteString("/* Additional properties */\n")
	b.WriteString(".gradient {\n")
	b.WriteString("  width: 100%;\n")
	b.WriteString("  height: 400px;\n")
	b.WriteString("  border-radius: 8px;\n")
	b.WriteString("}")
	return b.String()
}

// AddStop returns a copy with one more stop placed halfway between the
// first and last stop positions.
func (g Gradient) AddStop() (Gradient, error) {
	if len(g.Stops) >= MaxStops {
		return g, ErrTooManyStops
	}

	pos := 50
	if n := len(g.Stops); n > 0 {
		pos = min(100, (g.Stops[n-1].Position+g.Stops[0].Position)/2)
	}

	out := g
	out.Stops = append(append([]GradientStop(nil), g.Stops...), GradientStop{Color: NewStopColor, Position: pos})
	return out, nil
}

// RemoveStop returns a copy without the stop at index i.
func (g Gradient) RemoveStop(i int) (Gradient, error) {
	if len(g.Stops) <= MinStops {
		return g, ErrTooFewStops
	}
	if i < 0 || i >= len(g.Stops) {
		return g, fmt.Errorf("%w: %d", ErrStopIndex, i)
	}

	out := g
	out.Stops = lo.Filter(g.Stops, func(_ GradientStop, j int) bool { return j != i })
	return out, nil
}

// Randomize returns a copy where every stop has a random color.
func (g Gradient) Randomize(rng *rand.Rand) Gradient {
	out := g
	out.Stops = lo.Map(g.Stops, func(s GradientStop, _ int) GradientStop {
		return GradientStop{Color: RandomHex(rng), Position: s.Position}
	})
	return out
}

// Render rasterizes the gradient into a width x height image.
//
// Linear gradients follow the CSS angle convention (0deg points up, 90deg
// points right) with a gradient line long enough to reach the corners.
// Radial gradients are circles reaching the farthest corner. Colors are
// interpolated in sRGB as browsers do.
func (g Gradient) Render(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	stops := g.sortedStops()
	if len(stops) == 0 || width <= 0 || height <= 0 {
		return img
	}

	cs := lo.Map(stops, func(s GradientStop, _ int) colorful.Color {
		rgb := HexToRGB(s.Color)
		return colorful.Color{R: float64(rgb.R) / 255, G: float64(rgb.G) / 255, B: float64(rgb.B) / 255}
	})

	cx, cy := float64(width)/2, float64(height)/2
	rad := float64(g.Angle) * math.Pi / 180
	dx, dy := math.Sin(rad), -math.Cos(rad)
	lineLen := math.Abs(float64(width)*dx) + math.Abs(float64(height)*dy)
	radius := math.Hypot(cx, cy)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px, py := float64(x)+0.5-cx, float64(y)+0.5-cy

			var t float64
			if g.Type == GradientRadial {
				t = math.Hypot(px, py) / radius
			} else {
				t = (px*dx+py*dy)/lineLen + 0.5
			}

			img.Set(x, y, colorAt(stops, cs, t*100))
		}
	}

	return img
}

// colorAt interpolates the stop colors at pos (0-100).
func colorAt(stops []GradientStop, cs []colorful.Color, pos float64) color.Color {
	last := len(stops) - 1
	if pos <= float64(stops[0].Position) {
		return opaque(cs[0])
	}
	if pos >= float64(stops[last].Position) {
		return opaque(cs[last])
	}

	for i := 1; i <= last; i++ {
		from, to := float64(stops[i-1].Position), float64(stops[i].Position)
		if pos > to {
			continue
		}
		if to == from {
			return opaque(cs[i])
		}
		return opaque(cs[i-1].BlendRgb(cs[i], (pos-from)/(to-from)))
	}
	return opaque(cs[last])
}

func opaque(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

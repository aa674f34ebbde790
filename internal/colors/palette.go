package colors

// Palette is an ordered sequence of derived colors.
type Palette []Color

const (
	// PaletteSize is the number of colors GeneratePalette returns.
	PaletteSize = hueSteps + lightnessSteps

	hueSteps       = 5
	hueStep        = 360 / hueSteps // 72 degrees
	lightnessSteps = 3
	lightnessStep  = 20
	minLightness   = 10
	maxLightness   = 90
)

// GeneratePalette derives an eight color palette from baseHex.
//
// The first five entries rotate the hue in 72 degree steps with saturation and
// lightness unchanged. The last three keep hue and saturation and vary the
// lightness by -20, 0 and +20, clamped to [10, 90]:
//
//	[h, h+72, h+144, h+216, h+288, l-20, l, l+20]
//
// A malformed baseHex is treated as black, see HexToRGB.
func GeneratePalette(baseHex string) Palette {
	base := NewColor(baseHex).HSL

	p := make(Palette, 0, PaletteSize)

	for i := 0; i < hueSteps; i++ {
		h := (base.H + i*hueStep) % 360
		p = append(p, FromHSL(h, base.S, base.L))
	}

	for i := 0; i < lightnessSteps; i++ {
		l := clamp(base.L+(i-1)*lightnessStep, minLightness, maxLightness)
		p = append(p, FromHSL(base.H, base.S, l))
	}

	return p
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

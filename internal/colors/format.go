package colors

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// FormatRGB renders "R, G, B".
func FormatRGB(c Color) string {
	return fmt.Sprintf("%d, %d, %d", c.RGB.R, c.RGB.G, c.RGB.B)
}

// FormatRGBCSS renders "rgb(R, G, B)".
func FormatRGBCSS(c Color) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.RGB.R, c.RGB.G, c.RGB.B)
}

// FormatHSL renders "H°, S%, L%".
func FormatHSL(c Color) string {
	return fmt.Sprintf("%d°, %d%%, %d%%", c.HSL.H, c.HSL.S, c.HSL.L)
}

// FormatHSLCSS renders "hsl(H, S%, L%)".
func FormatHSLCSS(c Color) string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.HSL.H, c.HSL.S, c.HSL.L)
}

// FormatHex renders "#rrggbb".
func FormatHex(c Color) string {
	return c.Hex
}

// ExportPaletteText renders one line per color:
//
//	#3b82f6 - RGB(59, 130, 246) - HSL(217°, 91%, 60%)
//
// Lines are joined with "\n" without a trailing newline.
func ExportPaletteText(p Palette) string {
	lines := lo.Map(p, func(c Color, _ int) string {
		return fmt.Sprintf("%s - RGB(%d, %d, %d) - HSL(%d°, %d%%, %d%%)",
			c.Hex, c.RGB.R, c.RGB.G, c.RGB.B, c.HSL.H, c.HSL.S, c.HSL.L)
	})
	return strings.Join(lines, "\n")
}

// Formats bundles every display form of a color. It is what the palette
// and convert tools return per entry.
type Formats struct {
	Hex    string `json:"hex"`
	RGB    string `json:"rgb"`
	RGBCSS string `json:"rgb_css"`
	HSL    string `json:"hsl"`
	HSLCSS string `json:"hsl_css"`
}

// AllFormats renders c in every supported form.
func AllFormats(c Color) Formats {
	return Formats{
		Hex:    FormatHex(c),
		RGB:    FormatRGB(c),
		RGBCSS: FormatRGBCSS(c),
		HSL:    FormatHSL(c),
		HSLCSS: FormatHSLCSS(c),
	}
}

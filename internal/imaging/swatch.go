package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Swatch is one labeled cell of a swatch strip.
type Swatch struct {
	Color color.NRGBA
	Label string
}

const (
	glyphWidth   = 3
	glyphHeight  = 5
	glyphAdvance = glyphWidth + 1
)

// Simple 3x5 pixel font covering hex color codes.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	'a': {"111", "101", "111", "101", "101"},
	'b': {"110", "101", "110", "101", "110"},
	'c': {"111", "100", "100", "100", "111"},
	'd': {"110", "101", "101", "101", "110"},
	'e': {"111", "100", "111", "100", "111"},
	'f': {"111", "100", "111", "100", "100"},
	'#': {"101", "111", "101", "111", "101"},
}

// SwatchStrip lays the swatches out left to right as square cells of
// cellSize pixels. Each label is drawn near the bottom of its cell in black
// or white, whichever reads better, and is skipped if it does not fit.
func SwatchStrip(swatches []Swatch, cellSize int) *image.NRGBA {
	if len(swatches) == 0 || cellSize <= 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	out := imaging.New(len(swatches)*cellSize, cellSize, color.Transparent)
	scale := max(1, cellSize/40)

	for i, s := range swatches {
		cell := imaging.New(cellSize, cellSize, s.Color)

		labelW := len(s.Label)*glyphAdvance*scale - scale
		labelH := glyphHeight * scale
		if s.Label != "" && labelW <= cellSize-2*scale && labelH <= cellSize-2*scale {
			x := (cellSize - labelW) / 2
			y := cellSize - labelH - max(scale, cellSize/10)
			drawLabel(cell, x, y, scale, s.Label, labelColor(s.Color))
		}

		out = imaging.Paste(out, cell, image.Pt(i*cellSize, 0))
	}
	return out
}

// labelColor picks black on light colors and white on dark ones.
func labelColor(c color.NRGBA) color.NRGBA {
	// ITU-R BT.601 luma
	luma := (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
	if luma > 140 {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}

// drawLabel draws text at (x, y) with each glyph pixel scaled to a
// scale x scale block. Unknown characters leave a gap.
func drawLabel(img *image.NRGBA, x, y, scale int, text string, fg color.NRGBA) {
	bounds := img.Bounds()

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += glyphAdvance * scale
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				for dy := 0; dy < scale; dy++ {
					for dx := 0; dx < scale; dx++ {
						px, py := cx+col*scale+dx, y+row*scale+dy
						if image.Pt(px, py).In(bounds) {
							img.SetNRGBA(px, py, fg)
						}
					}
				}
			}
		}
		cx += glyphAdvance * scale
	}
}

package imaging

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwatchStrip(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	navy := color.NRGBA{B: 128, A: 255}

	img := SwatchStrip([]Swatch{
		{Color: red, Label: "#ff0000"},
		{Color: navy, Label: "#000080"},
	}, 80)

	require.Equal(t, 160, img.Bounds().Dx())
	require.Equal(t, 80, img.Bounds().Dy())

	// Top of each cell is the plain swatch color.
	assert.Equal(t, red, img.NRGBAAt(40, 2))
	assert.Equal(t, navy, img.NRGBAAt(120, 2))

	// Labels are drawn in a contrasting color somewhere in the bottom half.
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	assert.True(t, hasColor(img, 0, 40, 80, 80, white))
	assert.True(t, hasColor(img, 80, 40, 160, 80, white))
}

func TestSwatchStrip_LabelTooWide(t *testing.T) {
	c := color.NRGBA{R: 10, G: 200, B: 10, A: 255}
	img := SwatchStrip([]Swatch{{Color: c, Label: "#0ac80a"}}, 20)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			require.Equal(t, c, img.NRGBAAt(x, y))
		}
	}
}

func TestSwatchStrip_Empty(t *testing.T) {
	assert.True(t, SwatchStrip(nil, 40).Bounds().Empty())
	assert.True(t, SwatchStrip([]Swatch{{Label: "x"}}, 0).Bounds().Empty())
}

func TestLabelColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{A: 255}, labelColor(color.NRGBA{R: 255, G: 255, B: 0, A: 255}))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, labelColor(color.NRGBA{B: 255, A: 255}))
}

func hasColor(img interface{ NRGBAAt(x, y int) color.NRGBA }, x0, y0, x1, y1 int, want color.NRGBA) bool {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if img.NRGBAAt(x, y) == want {
				return true
			}
		}
	}
	return false
}

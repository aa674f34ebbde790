package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePalette(t *testing.T) {
	p := GeneratePalette("#3B82F6")
	require.Len(t, p, PaletteSize)
	require.Equal(t, 8, PaletteSize)

	base := NewColor("#3B82F6").HSL
	require.Equal(t, HSL{217, 91, 60}, base)

	wantHues := []int{217, 289, 1, 73, 145}
	for i, h := range wantHues {
		assert.Equal(t, HSL{H: h, S: base.S, L: base.L}, p[i].HSL, "hue rotation %d", i)
		assert.Equal(t, HSLToRGB(h, base.S, base.L), p[i].RGB)
		assert.Equal(t, RGBToHex(p[i].RGB.R, p[i].RGB.G, p[i].RGB.B), p[i].Hex)
	}

	wantLightness := []int{40, 60, 80}
	for i, l := range wantLightness {
		got := p[hueSteps+i]
		assert.Equal(t, HSL{H: base.H, S: base.S, L: l}, got.HSL, "lightness variant %d", i)
	}
}

func TestGeneratePalette_HueSpacing(t *testing.T) {
	for _, hex := range []string{"#ff0000", "#00ff00", "#123456", "#abcdef", "#ff8040"} {
		p := GeneratePalette(hex)
		base := p[0].HSL
		for i := 0; i < hueSteps; i++ {
			assert.Equal(t, (base.H+i*72)%360, p[i].HSL.H, "%s entry %d", hex, i)
			assert.Equal(t, base.S, p[i].HSL.S)
			assert.Equal(t, base.L, p[i].HSL.L)
		}
	}
}

func TestGeneratePalette_LightnessClamp(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want []int
	}{
		{"near black", "#0a0a0a", []int{10, 10, 24}},
		{"black fallback", "nope", []int{10, 10, 20}},
		{"near white", "#f5f5f5", []int{76, 90, 90}},
		{"white", "#ffffff", []int{80, 90, 90}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := GeneratePalette(tt.hex)
			for i, l := range tt.want {
				assert.Equal(t, l, p[hueSteps+i].HSL.L, "variant %d", i)
			}
		})
	}
}

func TestGeneratePalette_Deterministic(t *testing.T) {
	assert.Equal(t, GeneratePalette("#3B82F6"), GeneratePalette("#3b82f6"))
	assert.Equal(t, GeneratePalette("3B82F6"), GeneratePalette("#3B82F6"))
}

func TestGeneratePalette_InvalidIsBlack(t *testing.T) {
	p := GeneratePalette("zzzzzz")
	require.Len(t, p, PaletteSize)
	for i := 0; i < hueSteps; i++ {
		assert.Equal(t, "#000000", p[i].Hex)
		assert.Equal(t, i*72, p[i].HSL.H)
	}
}

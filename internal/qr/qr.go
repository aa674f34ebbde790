// Package qr renders QR codes as PNG images.
package qr

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/ironsheep/tinytools-mcp/internal/colors"
	"github.com/ironsheep/tinytools-mcp/internal/imaging"
)

const (
	DefaultSize   = 256
	MinSize       = 128
	MaxSize       = 512
	DefaultMargin = 2
	MaxMargin     = 10
	DefaultDark   = "#000000"
	DefaultLight  = "#ffffff"
	DefaultLevel  = "M"
)

var (
	ErrEmptyInput   = errors.New("nothing to encode")
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidLevel = errors.New("invalid error correction level")
)

var levels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// Options controls QR rendering. Zero values select the defaults.
type Options struct {
	// Size is the width and height of the output in pixels, clamped to
	// [MinSize, MaxSize].
	Size int

	// Margin is the quiet zone in modules. Negative means none.
	Margin int

	// Dark and Light are "#rrggbb" module and background colors.
	Dark  string
	Light string

	// Level is the error correction level: L, M, Q or H.
	Level string
}

func (o Options) withDefaults() Options {
	if o.Size == 0 {
		o.Size = DefaultSize
	}
	o.Size = max(MinSize, min(MaxSize, o.Size))

	switch {
	case o.Margin == 0:
		o.Margin = DefaultMargin
	case o.Margin < 0:
		o.Margin = 0
	}
	o.Margin = min(o.Margin, MaxMargin)

	if o.Dark == "" {
		o.Dark = DefaultDark
	}
	if o.Light == "" {
		o.Light = DefaultLight
	}
	if o.Level == "" {
		o.Level = DefaultLevel
	}
	o.Level = strings.ToUpper(o.Level)
	return o
}

// Result is a rendered QR code.
type Result struct {
	imaging.EncodedImage

	// Modules is the symbol width in modules, excluding the margin.
	Modules int    `json:"modules"`
	Level   string `json:"level"`
}

// Render encodes text as a QR code image.
func Render(text string, opts Options) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	opts = opts.withDefaults()

	level, ok := levels[opts.Level]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLevel, opts.Level)
	}
	for _, c := range []string{opts.Dark, opts.Light} {
		if !colors.ValidHex(c) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, c)
		}
	}

	code, err := qrcode.New(text, level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	code.DisableBorder = true

	dark, light := toColor(opts.Dark), toColor(opts.Light)
	bitmap := code.Bitmap()

	// One pixel per module, then pad and scale up.
	n := len(bitmap)
	symbol := image.NewNRGBA(image.Rect(0, 0, n, n))
	for y, row := range bitmap {
		for x, on := range row {
			if on {
				symbol.SetNRGBA(x, y, dark)
			} else {
				symbol.SetNRGBA(x, y, light)
			}
		}
	}

	padded := imaging.Pad(symbol, opts.Margin, light)
	scaled := imaging.ScaleNearest(padded, opts.Size, opts.Size)

	enc, err := imaging.EncodePNG(scaled)
	if err != nil {
		return nil, err
	}

	return &Result{
		EncodedImage: *enc,
		Modules:      n,
		Level:        opts.Level,
	}, nil
}

func toColor(hex string) color.NRGBA {
	rgb := colors.HexToRGB(hex)
	return color.NRGBA{R: uint8(rgb.R), G: uint8(rgb.G), B: uint8(rgb.B), A: 255}
}

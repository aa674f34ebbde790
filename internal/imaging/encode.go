package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// PNGMimeType is the MIME type of every image produced by this package.
const PNGMimeType = "image/png"

// EncodedImage is a rendered image ready to hand to an MCP client.
//
// DataURL is the same payload as ImageBase64 in "data:" URL form so it can be
// dropped straight into an <img src>.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	DataURL     string `json:"data_url"`
}

// EncodePNG encodes img as PNG and wraps it as base64.
func EncodePNG(img image.Image) (*EncodedImage, error) {
	var buf bytes.Buffer
	if err := imgio.Encode(&buf, img, imgio.PNGEncoder()); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	b64 := base64.StdEncoding.EncodeToString(buf.Bytes())
	bounds := img.Bounds()

	return &EncodedImage{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: b64,
		MimeType:    PNGMimeType,
		DataURL:     "data:" + PNGMimeType + ";base64," + b64,
	}, nil
}

// ScaleNearest resizes img to exactly width x height without smoothing, which
// keeps hard edges (QR modules, swatches) crisp.
func ScaleNearest(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.NearestNeighbor)
}

// Pad surrounds img with a border of the given width in pixels.
func Pad(img image.Image, border int, bg color.Color) *image.NRGBA {
	if border <= 0 {
		return imaging.Clone(img)
	}
	b := img.Bounds()
	out := imaging.New(b.Dx()+2*border, b.Dy()+2*border, bg)
	return imaging.Paste(out, img, image.Pt(border, border))
}

// Package imaging renders and encodes the raster images returned by the
// tools: QR codes, gradient previews and palette swatch strips.
//
// Images are built as *image.NRGBA with (0,0) at the top-left corner and
// returned to clients as base64 PNG, see EncodePNG. Scaling is always
// nearest neighbor so module and swatch edges stay crisp.
package imaging

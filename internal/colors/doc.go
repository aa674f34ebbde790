// Package colors implements the color math behind the palette and gradient
// tools.
//
// All functions in this package are pure: they read only their arguments and
// return new values, so they are safe to call concurrently.
//
// # Color Representation
//
// A Color carries three views of the same value:
//   - Hex: "#rrggbb", lowercase
//   - RGB: 8-bit channels stored as int (0-255)
//   - HSL: Hue (0-359 degrees), Saturation (0-100), Lightness (0-100)
//
// HSL components are integers, so converting RGB -> HSL -> RGB may drift by a
// few units per channel. Achromatic colors (grays) stay within one unit.
//
// # Malformed Input
//
// HexToRGB never fails. Anything that is not exactly six hex digits, with an
// optional leading '#', converts to black. Callers that need validation should
// use ValidHex first.
//
// # Palettes
//
// GeneratePalette derives eight colors from a base color: five hue rotations
// spaced 72 degrees apart followed by three lightness variants. The order is
// stable and part of the contract.
package colors

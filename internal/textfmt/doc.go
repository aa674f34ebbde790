// Package textfmt implements the text reformatting tools: JSON pretty
// printing and minification, CSS minification, CSV to JSON conversion and
// Markdown rendering.
//
// Every function takes the whole input as a string and returns the whole
// output; nothing is streamed and nothing is retained between calls.
package textfmt

import "errors"

// ErrEmptyInput is returned when the input is empty or only whitespace.
var ErrEmptyInput = errors.New("input is empty")

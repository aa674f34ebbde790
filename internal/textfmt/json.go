package textfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DefaultIndent is the indent width used when none is given.
const DefaultIndent = 2

// SyntaxError describes where JSON parsing failed.
type SyntaxError struct {
	Msg    string `json:"message"`
	Offset int64  `json:"offset"`
	Line   int    `json:"line"`
	Column int    `json:"column"`
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (line %d, column %d)", e.Msg, e.Line, e.Column)
}

// JSONResult is the outcome of validating a JSON document.
type JSONResult struct {
	Valid bool         `json:"valid"`
	Error *SyntaxError `json:"error,omitempty"`
}

// FormatJSON pretty prints input with indent spaces per level. An indent of
// zero or less selects DefaultIndent; indent is capped at 8. Key order is
// preserved.
func FormatJSON(input string, indent int) (string, error) {
	if err := checkJSON(input); err != nil {
		return "", err
	}
	if indent <= 0 {
		indent = DefaultIndent
	}
	indent = min(indent, 8)

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(strings.TrimSpace(input)), "", strings.Repeat(" ", indent)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// MinifyJSON removes all insignificant whitespace from input.
func MinifyJSON(input string) (string, error) {
	if err := checkJSON(input); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(strings.TrimSpace(input))); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ValidateJSON reports whether input is valid JSON and, if not, where it
// broke.
func ValidateJSON(input string) (JSONResult, error) {
	err := checkJSON(input)
	if errors.Is(err, ErrEmptyInput) {
		return JSONResult{}, err
	}

	var se *SyntaxError
	if errors.As(err, &se) {
		return JSONResult{Valid: false, Error: se}, nil
	}
	return JSONResult{Valid: err == nil}, err
}

func checkJSON(input string) error {
	if strings.TrimSpace(input) == "" {
		return ErrEmptyInput
	}

	var v any
	err := json.Unmarshal([]byte(input), &v)
	if err == nil {
		return nil
	}

	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		line, col := position(input, syn.Offset)
		return &SyntaxError{Msg: syn.Error(), Offset: syn.Offset, Line: line, Column: col}
	}
	return fmt.Errorf("invalid json: %w", err)
}

// position converts a json.SyntaxError offset into a 1-based line and
// column. The offset counts the offending byte itself.
func position(input string, offset int64) (line, col int) {
	idx := int(max(0, min(offset-1, int64(len(input)))))
	before := input[:idx]
	line = strings.Count(before, "\n") + 1
	col = idx - (strings.LastIndex(before, "\n") + 1) + 1
	return line, col
}

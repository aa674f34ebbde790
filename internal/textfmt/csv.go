package textfmt

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Delimiters lists the accepted CSV field separators.
var Delimiters = []string{",", ";", "\t", "|"}

var ErrInvalidDelimiter = errors.New("delimiter must be one of , ; tab |")

// CSVOptions controls CSVToJSON.
type CSVOptions struct {
	// Delimiter separates fields. Empty means ",".
	Delimiter string

	// HasHeaders turns each data row into an object keyed by the first
	// line. Without headers every line becomes an array of strings.
	HasHeaders bool

	// Strict parses with RFC 4180 rules (quoted delimiters, quoted
	// newlines, escaped quotes). The default lenient mode splits lines and
	// fields naively.
	Strict bool
}

var wrappingQuotes = regexp.MustCompile(`^"(.*)"$`)

// CSVToJSON converts CSV text to a 2-space indented JSON array.
func CSVToJSON(input string, opts CSVOptions) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", ErrEmptyInput
	}
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}
	if !isDelimiter(opts.Delimiter) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDelimiter, opts.Delimiter)
	}

	var (
		records [][]string
		err     error
	)
	if opts.Strict {
		records, err = strictRecords(input, opts.Delimiter)
		if err != nil {
			return "", err
		}
	} else {
		records = lenientRecords(input, opts.Delimiter)
	}

	return encodeRecords(records, opts.HasHeaders)
}

func isDelimiter(d string) bool {
	for _, v := range Delimiters {
		if d == v {
			return true
		}
	}
	return false
}

// lenientRecords splits on newlines and the delimiter. The first record is
// always the header line; later lines skip blanks, and a field wrapped in
// double quotes is unwrapped with "" unescaped, any other field is trimmed.
func lenientRecords(input, delim string) [][]string {
	lines := strings.Split(strings.TrimSpace(input), "\n")

	header := strings.Split(lines[0], delim)
	for i, h := range header {
		header[i] = wrappingQuotes.ReplaceAllString(strings.TrimSpace(h), "$1")
	}

	records := [][]string{header}
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, delim)
		for i, v := range fields {
			fields[i] = lenientField(v)
		}
		records = append(records, fields)
	}
	return records
}

func lenientField(v string) string {
	if strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		if len(v) < 2 {
			return ""
		}
		return strings.ReplaceAll(v[1:len(v)-1], `""`, `"`)
	}
	return strings.TrimSpace(v)
}

// strictRecords returns the header followed by every line, matching the
// shape of lenientRecords.
func strictRecords(input, delim string) ([][]string, error) {
	comma, _ := utf8.DecodeRuneInString(delim)

	r := csv.NewReader(strings.NewReader(strings.TrimSpace(input)))
	r.Comma = comma
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var lines [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse csv: %w", err)
		}
		lines = append(lines, rec)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	header := append([]string(nil), lines[0]...)
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}
	return append([][]string{header}, lines...), nil
}

// encodeRecords drops the header line from the data when hasHeaders is set
// and renders the rest. records[0] is the header, records[1:] every line.
func encodeRecords(records [][]string, hasHeaders bool) (string, error) {
	header, data := records[0], records[1:]
	if hasHeaders && len(data) > 0 {
		data = data[1:]
	}

	out := make([]any, 0, len(data))
	for _, fields := range data {
		if !hasHeaders {
			out = append(out, fields)
			continue
		}
		row := newOrderedRow()
		for i, h := range header {
			v := ""
			if i < len(fields) {
				v = fields[i]
			}
			row.set(h, v)
		}
		out = append(out, row)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// orderedRow is a JSON object that keeps the header order. Repeated keys
// keep their first position and their last value.
type orderedRow struct {
	keys   []string
	values map[string]string
}

func newOrderedRow() *orderedRow {
	return &orderedRow{values: make(map[string]string)}
}

func (r *orderedRow) set(k, v string) {
	if _, ok := r.values[k]; !ok {
		r.keys = append(r.keys, k)
	}
	r.values[k] = v
}

func (r *orderedRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(k); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')
		if err := enc.Encode(r.values[k]); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

package textfmt

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultTerminalWidth is the wrap width for terminal rendering.
const DefaultTerminalWidth = 80

// markdown renders GitHub flavoured Markdown. Raw HTML in the source is
// passed through untouched.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// MarkdownToHTML renders src as HTML. Empty input renders as an empty
// string.
func MarkdownToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// MarkdownToTerminal renders src with ANSI styling for display in a
// terminal. style is a glamour standard style name ("dark", "light",
// "notty", ...); empty selects "dark".
func MarkdownToTerminal(src string, width int, style string) (string, error) {
	if width <= 0 {
		width = DefaultTerminalWidth
	}
	if style == "" {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create terminal renderer: %w", err)
	}

	out, err := r.Render(src)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

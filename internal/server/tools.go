package server

import (
	"strings"

	"github.com/samber/lo"

	"github.com/ironsheep/tinytools-mcp/internal/codec"
	"github.com/ironsheep/tinytools-mcp/internal/textfmt"
)

// ToolID identifies one tool in the catalog.
type ToolID string

const (
	ToolColorPalette     ToolID = "color_palette"
	ToolColorConvert     ToolID = "color_convert"
	ToolCSSGradient      ToolID = "css_gradient"
	ToolJSONFormat       ToolID = "json_format"
	ToolBase64           ToolID = "base64"
	ToolURLEncode        ToolID = "url_encode"
	ToolHashGenerate     ToolID = "hash_generate"
	ToolMarkdownPreview  ToolID = "markdown_preview"
	ToolCSSMinify        ToolID = "css_minify"
	ToolCSVToJSON        ToolID = "csv_to_json"
	ToolUUIDGenerate     ToolID = "uuid_generate"
	ToolPasswordGenerate ToolID = "password_generate"
	ToolQRGenerate       ToolID = "qr_generate"
	ToolURLShorten       ToolID = "url_shorten"
)

// Category groups tools for listing.
type Category string

const (
	CategoryTextDev  Category = "Text & Dev"
	CategoryUIDesign Category = "UI & Design"
	CategoryFileMisc Category = "File & Misc"
)

// Categories lists the categories in display order.
var Categories = []Category{CategoryTextDev, CategoryUIDesign, CategoryFileMisc}

// ToolSpec describes one catalog entry.
type ToolSpec struct {
	ID          ToolID
	Title       string
	Category    Category
	Description string
	InputSchema map[string]any
}

// Tool represents an MCP tool definition
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Catalog returns every tool in display order.
func Catalog() []ToolSpec {
	return []ToolSpec{
		// Text & Dev
		{
			ID:          ToolJSONFormat,
			Title:       "JSON Formatter",
			Category:    CategoryTextDev,
			Description: "Pretty-print, minify or validate JSON. Invalid input reports the line and column of the first error.",
			InputSchema: object(map[string]any{
				"input":  str("JSON text"),
				"mode":   enum("format (default), minify or validate", "format", "minify", "validate"),
				"indent": integer("Spaces per indent level when formatting (default 2, max 8)"),
			}, "input"),
		},
		{
			ID:          ToolBase64,
			Title:       "Base64 Encoder",
			Category:    CategoryTextDev,
			Description: "Encode UTF-8 text to Base64 or decode Base64 back to text.",
			InputSchema: object(map[string]any{
				"input":    str("Text to encode or Base64 to decode"),
				"mode":     enum("encode (default) or decode", "encode", "decode"),
				"url_safe": boolean("Use the URL-safe alphabet without padding"),
			}, "input"),
		},
		{
			ID:          ToolURLEncode,
			Title:       "URL Encoder",
			Category:    CategoryTextDev,
			Description: "Percent-encode text as a URI component, or decode a percent-encoded string.",
			InputSchema: object(map[string]any{
				"input": str("Text to encode or decode"),
				"mode":  enum("encode (default) or decode", "encode", "decode"),
			}, "input"),
		},
		{
			ID:          ToolHashGenerate,
			Title:       "Hash Generator",
			Category:    CategoryTextDev,
			Description: "Compute hex digests of text. Without an algorithm every supported digest is returned.",
			InputSchema: object(map[string]any{
				"input":     str("Text to hash"),
				"algorithm": enum("Single algorithm to compute", codec.Algorithms...),
			}, "input"),
		},
		{
			ID:          ToolMarkdownPreview,
			Title:       "Markdown Preview",
			Category:    CategoryTextDev,
			Description: "Render GitHub flavoured Markdown to HTML, or to ANSI styled text for a terminal.",
			InputSchema: object(map[string]any{
				"input":  str("Markdown source"),
				"format": enum("html (default) or terminal", "html", "terminal"),
				"width":  integer("Wrap width for terminal output"),
				"style":  str("Terminal style: dark, light, notty, ..."),
			}, "input"),
		},
		{
			ID:          ToolCSSMinify,
			Title:       "CSS Minifier",
			Category:    CategoryTextDev,
			Description: "Strip comments and redundant whitespace from CSS and report the size savings.",
			InputSchema: object(map[string]any{
				"input": str("CSS source"),
			}, "input"),
		},
		{
			ID:          ToolCSVToJSON,
			Title:       "CSV to JSON",
			Category:    CategoryTextDev,
			Description: "Convert CSV to a JSON array of objects (with headers) or arrays (without).",
			InputSchema: object(map[string]any{
				"input":       str("CSV text"),
				"delimiter":   enum("Field delimiter (default ,)", textfmt.Delimiters...),
				"has_headers": boolean("Treat the first line as column names (default true)"),
				"strict":      boolean("Use RFC 4180 quoting rules instead of plain splitting"),
			}, "input"),
		},

		// UI & Design
		{
			ID:          ToolColorPalette,
			Title:       "Color Palette",
			Category:    CategoryUIDesign,
			Description: "Derive an eight color palette from a base color: five hue rotations in 72 degree steps and three lightness variants.",
			InputSchema: object(map[string]any{
				"base_color":  str("Base color as #RRGGBB"),
				"random":      boolean("Pick a random base color instead"),
				"swatch_size": integer("Also render a PNG swatch strip with cells this many pixels square (0 = none)"),
			}),
		},
		{
			ID:          ToolColorConvert,
			Title:       "Color Converter",
			Category:    CategoryUIDesign,
			Description: "Convert one color between hex, RGB and HSL and list every CSS notation. Provide exactly one of hex, rgb or hsl.",
			InputSchema: object(map[string]any{
				"hex": str("Color as #RRGGBB"),
				"rgb": object(map[string]any{
					"r": integer("Red 0-255"),
					"g": integer("Green 0-255"),
					"b": integer("Blue 0-255"),
				}, "r", "g", "b"),
				"hsl": object(map[string]any{
					"h": integer("Hue 0-359"),
					"s": integer("Saturation 0-100"),
					"l": integer("Lightness 0-100"),
				}, "h", "s", "l"),
			}),
		},
		{
			ID:          ToolCSSGradient,
			Title:       "CSS Gradient",
			Category:    CategoryUIDesign,
			Description: "Build a CSS linear or radial gradient from 2-5 color stops or a named preset, with an optional PNG preview.",
			InputSchema: object(map[string]any{
				"type":  enum("linear (default) or radial", "linear", "radial"),
				"angle": integer("Angle in degrees for linear gradients (default 90)"),
				"stops": map[string]any{
					"type":        "array",
					"description": "Color stops",
					"items": object(map[string]any{
						"color":    str("#RRGGBB"),
						"position": integer("Position 0-100"),
					}, "color", "position"),
				},
				"preset":         enum("Named preset", presetNames()...),
				"random":         boolean("Replace every stop color with a random one"),
				"preview_width":  integer("Render a PNG preview this wide (0 = none)"),
				"preview_height": integer("Preview height (default 100)"),
			}),
		},

		// File & Misc
		{
			ID:          ToolUUIDGenerate,
			Title:       "UUID Generator",
			Category:    CategoryFileMisc,
			Description: "Generate random version 4 UUIDs.",
			InputSchema: object(map[string]any{
				"count": integer("How many UUIDs (1-100)"),
			}),
		},
		{
			ID:          ToolPasswordGenerate,
			Title:       "Password Generator",
			Category:    CategoryFileMisc,
			Description: "Generate a random password from the selected character classes and score its strength.",
			InputSchema: object(map[string]any{
				"length":    integer("Length 4-64"),
				"uppercase": boolean("Include A-Z (default true)"),
				"lowercase": boolean("Include a-z (default true)"),
				"numbers":   boolean("Include 0-9 (default true)"),
				"symbols":   boolean("Include symbols (default true)"),
			}),
		},
		{
			ID:          ToolQRGenerate,
			Title:       "QR Code Generator",
			Category:    CategoryFileMisc,
			Description: "Render text or a URL as a QR code PNG, returned base64 encoded.",
			InputSchema: object(map[string]any{
				"text":   str("Content to encode"),
				"size":   integer("Image size in pixels (128-512)"),
				"margin": integer("Quiet zone in modules (0-10)"),
				"dark":   str("Module color #RRGGBB"),
				"light":  str("Background color #RRGGBB"),
				"level":  enum("Error correction level", "L", "M", "Q", "H"),
			}, "text"),
		},
		{
			ID:          ToolURLShorten,
			Title:       "URL Shortener",
			Category:    CategoryFileMisc,
			Description: "Simulate a URL shortener: derive a short code, keep the recent history, look codes up. Nothing is persisted.",
			InputSchema: object(map[string]any{
				"action": enum("shorten (default), history, lookup or clear", "shorten", "history", "lookup", "clear"),
				"url":    str("URL to shorten"),
				"code":   str("Short code to look up"),
			}),
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return lo.Map(Catalog(), func(t ToolSpec, _ int) Tool {
		return Tool{
			Name:        string(t.ID),
			Description: t.Description,
			InputSchema: t.InputSchema,
		}
	})
}

// SearchCatalog returns the tools whose id, title or description contains
// query, ignoring case. An empty query matches everything.
func SearchCatalog(query string) []ToolSpec {
	q := strings.ToLower(strings.TrimSpace(query))
	return lo.Filter(Catalog(), func(t ToolSpec, _ int) bool {
		return q == "" ||
			strings.Contains(string(t.ID), q) ||
			strings.Contains(strings.ToLower(t.Title), q) ||
			strings.Contains(strings.ToLower(t.Description), q)
	})
}

// GroupByCategory buckets tools by category, keeping catalog order.
func GroupByCategory(tools []ToolSpec) map[Category][]ToolSpec {
	return lo.GroupBy(tools, func(t ToolSpec) Category { return t.Category })
}

func object(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func str(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func integer(desc string) map[string]any {
	return map[string]any{"type": "integer", "description": desc}
}

func boolean(desc string) map[string]any {
	return map[string]any{"type": "boolean", "description": desc}
}

func enum(desc string, values ...string) map[string]any {
	return map[string]any{"type": "string", "description": desc, "enum": values}
}

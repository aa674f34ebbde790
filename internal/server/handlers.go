package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/samber/lo"

	"github.com/ironsheep/tinytools-mcp/internal/codec"
	"github.com/ironsheep/tinytools-mcp/internal/colors"
	"github.com/ironsheep/tinytools-mcp/internal/generate"
	"github.com/ironsheep/tinytools-mcp/internal/imaging"
	"github.com/ironsheep/tinytools-mcp/internal/qr"
	"github.com/ironsheep/tinytools-mcp/internal/shortener"
	"github.com/ironsheep/tinytools-mcp/internal/textfmt"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "color_palette", "base64").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errInvalidArgs marks argument errors so they map to -32602 instead of a
// tool failure.
var errInvalidArgs = errors.New("invalid arguments")

type toolHandler func(s *Server, args json.RawMessage) (any, error)

var toolHandlers = map[ToolID]toolHandler{
	ToolColorPalette:     (*Server).handleColorPalette,
	ToolColorConvert:     (*Server).handleColorConvert,
	ToolCSSGradient:      (*Server).handleCSSGradient,
	ToolJSONFormat:       (*Server).handleJSONFormat,
	ToolBase64:           (*Server).handleBase64,
	ToolURLEncode:        (*Server).handleURLEncode,
	ToolHashGenerate:     (*Server).handleHashGenerate,
	ToolMarkdownPreview:  (*Server).handleMarkdownPreview,
	ToolCSSMinify:        (*Server).handleCSSMinify,
	ToolCSVToJSON:        (*Server).handleCSVToJSON,
	ToolUUIDGenerate:     (*Server).handleUUIDGenerate,
	ToolPasswordGenerate: (*Server).handlePasswordGenerate,
	ToolQRGenerate:       (*Server).handleQRGenerate,
	ToolURLShorten:       (*Server).handleURLShorten,
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Argument errors return -32602; tool execution errors return -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Warn().Err(err).Str("tool", params.Name).Msg("tool call failed")
		if errors.Is(err, errInvalidArgs) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]any{
			"content": []map[string]any{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool looks the tool up by name and runs its handler. Missing
// arguments decode as an empty object.
func (s *Server) executeTool(name string, args json.RawMessage) (any, error) {
	h, ok := toolHandlers[ToolID(name)]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
	if len(args) == 0 || string(args) == "null" {
		args = json.RawMessage("{}")
	}
	return h(s, args)
}

// decodeArgs unmarshals tool arguments into v.
func decodeArgs(args json.RawMessage, v any) error {
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return nil
}

func invalidArgs(format string, a ...any) error {
	return fmt.Errorf("%w: %s", errInvalidArgs, fmt.Sprintf(format, a...))
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id any, code int, message string, data any) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// boolOr dereferences b, falling back to def when unset.
func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// === Color Handlers ===

type colorPaletteArgs struct {
	BaseColor  string `json:"base_color"`
	Random     bool   `json:"random"`
	SwatchSize int    `json:"swatch_size"`
}

type paletteEntry struct {
	colors.Color
	Formats colors.Formats `json:"formats"`
}

type colorPaletteResult struct {
	Base     colors.Color          `json:"base"`
	Palette  []paletteEntry        `json:"palette"`
	Export   string                `json:"export"`
	Swatches *imaging.EncodedImage `json:"swatches,omitempty"`
}

const maxSwatchSize = 256

func (s *Server) handleColorPalette(args json.RawMessage) (any, error) {
	var a colorPaletteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	base := a.BaseColor
	switch {
	case a.Random:
		base = colors.RandomHex(s.rng)
	case base == "":
		return nil, invalidArgs("base_color is required unless random is set")
	case !colors.ValidHex(base):
		return nil, invalidArgs("base_color %q is not a #RRGGBB color", base)
	}

	p := colors.GeneratePalette(base)
	res := colorPaletteResult{
		Base: colors.NewColor(base),
		Palette: lo.Map(p, func(c colors.Color, _ int) paletteEntry {
			return paletteEntry{Color: c, Formats: colors.AllFormats(c)}
		}),
		Export: colors.ExportPaletteText(p),
	}

	if a.SwatchSize > 0 {
		strip := imaging.SwatchStrip(lo.Map(p, func(c colors.Color, _ int) imaging.Swatch {
			return imaging.Swatch{
				Color: color.NRGBA{R: uint8(c.RGB.R), G: uint8(c.RGB.G), B: uint8(c.RGB.B), A: 255},
				Label: c.Hex,
			}
		}), min(a.SwatchSize, maxSwatchSize))

		img, err := imaging.EncodePNG(strip)
		if err != nil {
			return nil, err
		}
		res.Swatches = img
	}
	return res, nil
}

type colorConvertArgs struct {
	Hex string      `json:"hex"`
	RGB *colors.RGB `json:"rgb"`
	HSL *colors.HSL `json:"hsl"`
}

type colorConvertResult struct {
	colors.Color
	Formats colors.Formats `json:"formats"`
}

func (s *Server) handleColorConvert(args json.RawMessage) (any, error) {
	var a colorConvertArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	given := lo.Count([]bool{a.Hex != "", a.RGB != nil, a.HSL != nil}, true)
	if given != 1 {
		return nil, invalidArgs("provide exactly one of hex, rgb or hsl")
	}

	var c colors.Color
	switch {
	case a.Hex != "":
		if !colors.ValidHex(a.Hex) {
			return nil, invalidArgs("hex %q is not a #RRGGBB color", a.Hex)
		}
		c = colors.NewColor(a.Hex)
	case a.RGB != nil:
		r := *a.RGB
		if !inRange(r.R, 0, 255) || !inRange(r.G, 0, 255) || !inRange(r.B, 0, 255) {
			return nil, invalidArgs("rgb channels must be 0-255")
		}
		c = colors.NewColor(colors.RGBToHex(r.R, r.G, r.B))
	default:
		h := *a.HSL
		if !inRange(h.H, 0, 359) || !inRange(h.S, 0, 100) || !inRange(h.L, 0, 100) {
			return nil, invalidArgs("hsl must be h 0-359, s and l 0-100")
		}
		c = colors.FromHSL(h.H, h.S, h.L)
	}

	return colorConvertResult{Color: c, Formats: colors.AllFormats(c)}, nil
}

func inRange(v, from, to int) bool {
	return v >= from && v <= to
}

type cssGradientArgs struct {
	Type          colors.GradientType   `json:"type"`
	Angle         *int                  `json:"angle"`
	Stops         []colors.GradientStop `json:"stops"`
	Preset        string                `json:"preset"`
	Random        bool                  `json:"random"`
	PreviewWidth  int                   `json:"preview_width"`
	PreviewHeight int                   `json:"preview_height"`
}

type cssGradientResult struct {
	Gradient    colors.Gradient       `json:"gradient"`
	CSS         string                `json:"css"`
	Declaration string                `json:"declaration"`
	Stylesheet  string                `json:"stylesheet"`
	Preview     *imaging.EncodedImage `json:"preview,omitempty"`
}

const (
	maxPreviewSize       = 1024
	defaultPreviewHeight = 100
)

func presetNames() []string {
	return lo.Map(colors.Presets(), func(p colors.Preset, _ int) string { return p.Name })
}

func (s *Server) handleCSSGradient(args json.RawMessage) (any, error) {
	var a cssGradientArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	g := colors.DefaultGradient()
	if a.Type != "" {
		g.Type = a.Type
	}
	if a.Angle != nil {
		g.Angle = *a.Angle
	}
	if len(a.Stops) > 0 {
		g.Stops = a.Stops
	}
	if a.Preset != "" {
		p, ok := colors.PresetByName(a.Preset)
		if !ok {
			return nil, invalidArgs("unknown preset %q", a.Preset)
		}
		g.Stops = p.Stops
	}
	if a.Random {
		g = g.Randomize(s.rng)
	}

	g = g.Normalize()
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	for _, st := range g.Stops {
		if !colors.ValidHex(st.Color) {
			return nil, invalidArgs("stop color %q is not a #RRGGBB color", st.Color)
		}
	}

	res := cssGradientResult{
		Gradient:    g,
		CSS:         g.CSS(),
		Declaration: g.Declaration(),
		Stylesheet:  g.Stylesheet(),
	}

	if a.PreviewWidth > 0 {
		h := a.PreviewHeight
		if h <= 0 {
			h = defaultPreviewHeight
		}
		img, err := imaging.EncodePNG(g.Render(min(a.PreviewWidth, maxPreviewSize), min(h, maxPreviewSize)))
		if err != nil {
			return nil, err
		}
		res.Preview = img
	}
	return res, nil
}

// === Text & Dev Handlers ===

type jsonFormatArgs struct {
	Input  string `json:"input"`
	Mode   string `json:"mode"`
	Indent int    `json:"indent"`
}

type textResult struct {
	Output string `json:"output"`
}

func (s *Server) handleJSONFormat(args json.RawMessage) (any, error) {
	var a jsonFormatArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	switch a.Mode {
	case "", "format":
		out, err := textfmt.FormatJSON(a.Input, a.Indent)
		if err != nil {
			return nil, err
		}
		return textResult{Output: out}, nil
	case "minify":
		out, err := textfmt.MinifyJSON(a.Input)
		if err != nil {
			return nil, err
		}
		return textResult{Output: out}, nil
	case "validate":
		return textfmt.ValidateJSON(a.Input)
	default:
		return nil, invalidArgs("unknown mode %q", a.Mode)
	}
}

type codecArgs struct {
	Input   string `json:"input"`
	Mode    string `json:"mode"`
	URLSafe bool   `json:"url_safe"`
}

func (s *Server) handleBase64(args json.RawMessage) (any, error) {
	var a codecArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	switch a.Mode {
	case "", "encode":
		return textResult{Output: codec.EncodeBase64(a.Input, a.URLSafe)}, nil
	case "decode":
		out, err := codec.DecodeBase64(a.Input, a.URLSafe)
		if err != nil {
			return nil, err
		}
		return textResult{Output: out}, nil
	default:
		return nil, invalidArgs("unknown mode %q", a.Mode)
	}
}

func (s *Server) handleURLEncode(args json.RawMessage) (any, error) {
	var a codecArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	switch a.Mode {
	case "", "encode":
		return textResult{Output: codec.EncodeURIComponent(a.Input)}, nil
	case "decode":
		out, err := codec.DecodeURIComponent(a.Input)
		if err != nil {
			return nil, err
		}
		return textResult{Output: out}, nil
	default:
		return nil, invalidArgs("unknown mode %q", a.Mode)
	}
}

type hashArgs struct {
	Input     string `json:"input"`
	Algorithm string `json:"algorithm"`
}

func (s *Server) handleHashGenerate(args json.RawMessage) (any, error) {
	var a hashArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	if a.Algorithm == "" {
		return codec.Hashes(a.Input), nil
	}
	digest, err := codec.Hash(a.Algorithm, a.Input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return codec.HashSet{strings.ToLower(a.Algorithm): digest}, nil
}

type markdownArgs struct {
	Input  string `json:"input"`
	Format string `json:"format"`
	Width  int    `json:"width"`
	Style  string `json:"style"`
}

func (s *Server) handleMarkdownPreview(args json.RawMessage) (any, error) {
	var a markdownArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	var (
		out string
		err error
	)
	switch a.Format {
	case "", "html":
		out, err = textfmt.MarkdownToHTML(a.Input)
	case "terminal":
		width := a.Width
		if width <= 0 {
			width = s.cfg.Markdown.TerminalWidth
		}
		out, err = textfmt.MarkdownToTerminal(a.Input, width, a.Style)
	default:
		return nil, invalidArgs("unknown format %q", a.Format)
	}
	if err != nil {
		return nil, err
	}
	return textResult{Output: out}, nil
}

type cssMinifyArgs struct {
	Input string `json:"input"`
}

func (s *Server) handleCSSMinify(args json.RawMessage) (any, error) {
	var a cssMinifyArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return textfmt.MinifyCSSStats(a.Input)
}

type csvArgs struct {
	Input      string `json:"input"`
	Delimiter  string `json:"delimiter"`
	HasHeaders *bool  `json:"has_headers"`
	Strict     bool   `json:"strict"`
}

func (s *Server) handleCSVToJSON(args json.RawMessage) (any, error) {
	var a csvArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	out, err := textfmt.CSVToJSON(a.Input, textfmt.CSVOptions{
		Delimiter:  a.Delimiter,
		HasHeaders: boolOr(a.HasHeaders, true),
		Strict:     a.Strict,
	})
	if err != nil {
		return nil, err
	}
	return textResult{Output: out}, nil
}

// === File & Misc Handlers ===

type uuidArgs struct {
	Count int `json:"count"`
}

type uuidResult struct {
	UUIDs []string `json:"uuids"`
	Text  string   `json:"text"`
}

func (s *Server) handleUUIDGenerate(args json.RawMessage) (any, error) {
	var a uuidArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = s.cfg.UUID.DefaultCount
	}

	ids := generate.UUIDs(a.Count)
	return uuidResult{UUIDs: ids, Text: strings.Join(ids, "\n")}, nil
}

type passwordArgs struct {
	Length    int   `json:"length"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

type passwordResult struct {
	Password string            `json:"password"`
	Length   int               `json:"length"`
	Strength generate.Strength `json:"strength"`
}

func (s *Server) handlePasswordGenerate(args json.RawMessage) (any, error) {
	var a passwordArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Length == 0 {
		a.Length = s.cfg.Password.DefaultLength
	}

	pwd, err := generate.Password(generate.PasswordOptions{
		Length:    a.Length,
		Uppercase: boolOr(a.Uppercase, true),
		Lowercase: boolOr(a.Lowercase, true),
		Numbers:   boolOr(a.Numbers, true),
		Symbols:   boolOr(a.Symbols, true),
	})
	if err != nil {
		return nil, err
	}
	return passwordResult{
		Password: pwd,
		Length:   len(pwd),
		Strength: generate.PasswordStrength(pwd),
	}, nil
}

type qrArgs struct {
	Text   string `json:"text"`
	Size   int    `json:"size"`
	Margin *int   `json:"margin"`
	Dark   string `json:"dark"`
	Light  string `json:"light"`
	Level  string `json:"level"`
}

func (s *Server) handleQRGenerate(args json.RawMessage) (any, error) {
	var a qrArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Size == 0 {
		a.Size = s.cfg.QR.DefaultSize
	}

	margin := s.cfg.QR.Margin
	if a.Margin != nil {
		margin = *a.Margin
	}
	// qr.Options treats 0 as "default" and negative as "none".
	if margin == 0 {
		margin = -1
	}

	res, err := qr.Render(a.Text, qr.Options{
		Size:   a.Size,
		Margin: margin,
		Dark:   a.Dark,
		Light:  a.Light,
		Level:  a.Level,
	})
	if err != nil {
		if errors.Is(err, qr.ErrEmptyInput) || errors.Is(err, qr.ErrInvalidColor) || errors.Is(err, qr.ErrInvalidLevel) {
			return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
		}
		return nil, err
	}
	return res, nil
}

type shortenArgs struct {
	Action string `json:"action"`
	URL    string `json:"url"`
	Code   string `json:"code"`
}

type historyResult struct {
	History []shortener.ShortURL `json:"history"`
}

func (s *Server) handleURLShorten(args json.RawMessage) (any, error) {
	var a shortenArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	switch a.Action {
	case "", "shorten":
		entry, err := s.shortener.Shorten(a.URL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
		}
		return entry, nil
	case "history":
		return historyResult{History: s.shortener.History()}, nil
	case "lookup":
		entry, ok := s.shortener.Lookup(a.Code)
		if !ok {
			return nil, fmt.Errorf("no entry for code %q", a.Code)
		}
		return entry, nil
	case "clear":
		s.shortener.Clear()
		return historyResult{History: []shortener.ShortURL{}}, nil
	default:
		return nil, invalidArgs("unknown action %q", a.Action)
	}
}

package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/tinytools-mcp/internal/config"
)

// callTool sends a tools/call request and decodes the text content into v.
// It returns the JSON-RPC error, if any.
func callTool(t *testing.T, s *Server, name string, args any, v any) *MCPError {
	t.Helper()

	params, err := json.Marshal(map[string]any{"name": name, "arguments": args})
	require.NoError(t, err)

	resp := s.handleRequest(&MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params})
	require.NotNil(t, resp)
	if resp.Error != nil {
		return resp.Error
	}

	result := resp.Result.(map[string]any)
	content := result["content"].([]map[string]any)
	require.Len(t, content, 1)
	assert.Equal(t, "text", content[0]["type"])

	if v != nil {
		require.NoError(t, json.Unmarshal([]byte(content[0]["text"].(string)), v))
	}
	return nil
}

func TestColorPalette(t *testing.T) {
	s := newTestServer(nil, nil)

	var res struct {
		Base struct {
			Hex string `json:"hex"`
		} `json:"base"`
		Palette []struct {
			Hex     string            `json:"hex"`
			HSL     map[string]int    `json:"hsl"`
			Formats map[string]string `json:"formats"`
		} `json:"palette"`
		Export string `json:"export"`
	}
	require.Nil(t, callTool(t, s, "color_palette", map[string]any{"base_color": "#3B82F6"}, &res))

	assert.Equal(t, "#3b82f6", res.Base.Hex)
	require.Len(t, res.Palette, 8)
	assert.Equal(t, 217, res.Palette[0].HSL["h"])
	assert.Equal(t, 289, res.Palette[1].HSL["h"])
	assert.Equal(t, 40, res.Palette[5].HSL["l"])
	assert.Equal(t, "hsl(217, 91%, 60%)", res.Palette[0].Formats["hsl_css"])
	assert.Len(t, strings.Split(res.Export, "\n"), 8)
}

func TestColorPalette_Swatches(t *testing.T) {
	s := newTestServer(nil, nil)

	var res struct {
		Swatches *struct {
			Width  int `json:"width"`
			Height int `json:"height"`
		} `json:"swatches"`
	}
	require.Nil(t, callTool(t, s, "color_palette", map[string]any{"base_color": "#3B82F6", "swatch_size": 60}, &res))
	require.NotNil(t, res.Swatches)
	assert.Equal(t, 480, res.Swatches.Width)
	assert.Equal(t, 60, res.Swatches.Height)
}

func TestColorPalette_Random(t *testing.T) {
	s := New(nil, WithIO(nil, nil), WithRand(rand.New(rand.NewPCG(1, 2))))

	var res struct {
		Palette []json.RawMessage `json:"palette"`
	}
	require.Nil(t, callTool(t, s, "color_palette", map[string]any{"random": true}, &res))
	assert.Len(t, res.Palette, 8)
}

func TestColorPalette_BadArgs(t *testing.T) {
	s := newTestServer(nil, nil)

	for _, args := range []map[string]any{{}, {"base_color": "blue"}, {"base_color": 12}} {
		err := callTool(t, s, "color_palette", args, nil)
		require.NotNil(t, err)
		assert.Equal(t, -32602, err.Code)
	}
}

func TestColorConvert(t *testing.T) {
	s := newTestServer(nil, nil)

	tests := []struct {
		name    string
		args    map[string]any
		wantHex string
		wantRGB string
	}{
		{"hex", map[string]any{"hex": "3B82F6"}, "#3b82f6", "rgb(59, 130, 246)"},
		{"rgb", map[string]any{"rgb": map[string]int{"r": 255, "g": 0, "b": 0}}, "#ff0000", "rgb(255, 0, 0)"},
		{"hsl", map[string]any{"hsl": map[string]int{"h": 217, "s": 91, "l": 60}}, "#3c83f6", "rgb(60, 131, 246)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res struct {
				Hex     string            `json:"hex"`
				Formats map[string]string `json:"formats"`
			}
			require.Nil(t, callTool(t, s, "color_convert", tt.args, &res))
			assert.Equal(t, tt.wantHex, res.Hex)
			assert.Equal(t, tt.wantRGB, res.Formats["rgb_css"])
		})
	}
}

func TestColorConvert_BadArgs(t *testing.T) {
	s := newTestServer(nil, nil)

	for _, args := range []map[string]any{
		{},
		{"hex": "#fff000", "rgb": map[string]int{"r": 1, "g": 2, "b": 3}},
		{"rgb": map[string]int{"r": 256, "g": 0, "b": 0}},
		{"hsl": map[string]int{"h": 360, "s": 0, "l": 0}},
		{"hex": "#ggg"},
	} {
		err := callTool(t, s, "color_convert", args, nil)
		require.NotNil(t, err, args)
		assert.Equal(t, -32602, err.Code)
	}
}

func TestCSSGradient(t *testing.T) {
	s := newTestServer(nil, nil)

	var res struct {
		CSS        string `json:"css"`
		Stylesheet string `json:"stylesheet"`
		Preview    *struct {
			Width       int    `json:"width"`
			Height      int    `json:"height"`
			ImageBase64 string `json:"image_base64"`
		} `json:"preview"`
	}
	require.Nil(t, callTool(t, s, "css_gradient", map[string]any{}, &res))
	assert.Equal(t, "linear-gradient(90deg, #3B82F6 0%, #8B5CF6 100%)", res.CSS)
	assert.Contains(t, res.Stylesheet, "-webkit-linear-gradient")
	assert.Nil(t, res.Preview)

	require.Nil(t, callTool(t, s, "css_gradient", map[string]any{
		"type":           "radial",
		"preset":         "fire",
		"preview_width":  40,
		"preview_height": 20,
	}, &res))
	assert.Equal(t, "radial-gradient(circle, #F12711 0%, #F5AF19 100%)", res.CSS)
	require.NotNil(t, res.Preview)
	assert.Equal(t, 40, res.Preview.Width)

	raw, err := base64.StdEncoding.DecodeString(res.Preview.ImageBase64)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestCSSGradient_BadArgs(t *testing.T) {
	s := newTestServer(nil, nil)

	for _, args := range []map[string]any{
		{"preset": "Nope"},
		{"type": "conic"},
		{"stops": []map[string]any{{"color": "#ffffff", "position": 0}}},
		{"stops": []map[string]any{{"color": "red", "position": 0}, {"color": "#000000", "position": 100}}},
	} {
		err := callTool(t, s, "css_gradient", args, nil)
		require.NotNil(t, err, args)
		assert.Equal(t, -32602, err.Code)
	}
}

func TestTextTools(t *testing.T) {
	s := newTestServer(nil, nil)

	tests := []struct {
		tool string
		args map[string]any
		want string
	}{
		{"json_format", map[string]any{"input": `{"a":1}`}, "{\n  \"a\": 1\n}"},
		{"json_format", map[string]any{"input": "{ \"a\": [1, 2] }", "mode": "minify"}, `{"a":[1,2]}`},
		{"base64", map[string]any{"input": "Hello"}, "SGVsbG8="},
		{"base64", map[string]any{"input": "SGVsbG8=", "mode": "decode"}, "Hello"},
		{"url_encode", map[string]any{"input": "a b&c"}, "a%20b%26c"},
		{"url_encode", map[string]any{"input": "a%20b", "mode": "decode"}, "a b"},
		{"markdown_preview", map[string]any{"input": "# Hi"}, "<h1>Hi</h1>\n"},
		{"csv_to_json", map[string]any{"input": "a,b\n1,2"}, "[\n  {\n    \"a\": \"1\",\n    \"b\": \"2\"\n  }\n]"},
		{"csv_to_json", map[string]any{"input": "a|b", "delimiter": "|", "has_headers": false}, "[\n  [\n    \"a\",\n    \"b\"\n  ]\n]"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			var res textResult
			require.Nil(t, callTool(t, s, tt.tool, tt.args, &res))
			assert.Equal(t, tt.want, res.Output)
		})
	}
}

func TestTextTools_Failures(t *testing.T) {
	s := newTestServer(nil, nil)

	tests := []struct {
		tool     string
		args     map[string]any
		wantCode int
	}{
		{"json_format", map[string]any{"input": `{"a":}`}, -32000},
		{"json_format", map[string]any{"input": "{}", "mode": "sort"}, -32602},
		{"base64", map[string]any{"input": "@@", "mode": "decode"}, -32000},
		{"url_encode", map[string]any{"input": "%zz", "mode": "decode"}, -32000},
		{"markdown_preview", map[string]any{"input": "x", "format": "pdf"}, -32602},
		{"css_minify", map[string]any{"input": "  "}, -32000},
		{"csv_to_json", map[string]any{"input": "a", "delimiter": ":"}, -32000},
		{"hash_generate", map[string]any{"input": "a", "algorithm": "crc32"}, -32602},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			err := callTool(t, s, tt.tool, tt.args, nil)
			require.NotNil(t, err)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.NotEmpty(t, err.Data)
		})
	}
}

func TestJSONFormat_Validate(t *testing.T) {
	s := newTestServer(nil, nil)

	var res struct {
		Valid bool `json:"valid"`
		Error *struct {
			Line   int `json:"line"`
			Column int `json:"column"`
		} `json:"error"`
	}
	require.Nil(t, callTool(t, s, "json_format", map[string]any{"input": `{"a":}`, "mode": "validate"}, &res))
	assert.False(t, res.Valid)
	require.NotNil(t, res.Error)
	assert.Equal(t, 1, res.Error.Line)
	assert.Equal(t, 6, res.Error.Column)
}

func TestHashGenerate(t *testing.T) {
	s := newTestServer(nil, nil)

	var all map[string]string
	require.Nil(t, callTool(t, s, "hash_generate", map[string]any{"input": "abc"}, &all))
	assert.Len(t, all, 5)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", all["md5"])

	var one map[string]string
	require.Nil(t, callTool(t, s, "hash_generate", map[string]any{"input": "abc", "algorithm": "SHA1"}, &one))
	assert.Equal(t, map[string]string{"sha1": "a9993e364706816aba3e25717850c26c9cd0d89d"}, one)
}

func TestCSSMinify(t *testing.T) {
	s := newTestServer(nil, nil)

	var res struct {
		Minified       string  `json:"minified"`
		SavingsPercent float64 `json:"savings_percent"`
	}
	require.Nil(t, callTool(t, s, "css_minify", map[string]any{"input": "a {\n  color: red;\n}\n"}, &res))
	assert.Equal(t, "a {color:red}", res.Minified)
	assert.Equal(t, 35.0, res.SavingsPercent)
}

func TestUUIDGenerate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UUID.DefaultCount = 3
	s := New(&cfg, WithIO(nil, nil))

	var res uuidResult
	require.Nil(t, callTool(t, s, "uuid_generate", map[string]any{}, &res))
	assert.Len(t, res.UUIDs, 3)
	assert.Equal(t, strings.Join(res.UUIDs, "\n"), res.Text)

	require.Nil(t, callTool(t, s, "uuid_generate", map[string]any{"count": 500}, &res))
	assert.Len(t, res.UUIDs, 100)
}

func TestPasswordGenerate(t *testing.T) {
	s := newTestServer(nil, nil)

	var res passwordResult
	require.Nil(t, callTool(t, s, "password_generate", nil, &res))
	assert.Len(t, res.Password, 16)
	assert.Equal(t, 16, res.Length)
	assert.GreaterOrEqual(t, res.Strength.Score, 3)

	require.Nil(t, callTool(t, s, "password_generate", map[string]any{
		"length": 8, "uppercase": false, "lowercase": false, "symbols": false,
	}, &res))
	assert.Regexp(t, `^[0-9]{8}$`, res.Password)

	require.Nil(t, callTool(t, s, "password_generate", map[string]any{
		"uppercase": false, "lowercase": false, "numbers": false, "symbols": false,
	}, &res))
	assert.Empty(t, res.Password)
	assert.Equal(t, "Very Weak", res.Strength.Label)
}

func TestQRGenerate(t *testing.T) {
	s := newTestServer(nil, nil)

	var res struct {
		Width   int    `json:"width"`
		DataURL string `json:"data_url"`
		Modules int    `json:"modules"`
		Level   string `json:"level"`
	}
	require.Nil(t, callTool(t, s, "qr_generate", map[string]any{"text": "hello", "level": "q"}, &res))
	assert.Equal(t, 256, res.Width)
	assert.True(t, strings.HasPrefix(res.DataURL, "data:image/png;base64,"))
	assert.Equal(t, 21, res.Modules)
	assert.Equal(t, "Q", res.Level)

	err := callTool(t, s, "qr_generate", map[string]any{"text": ""}, nil)
	require.NotNil(t, err)
	assert.Equal(t, -32602, err.Code)

	err = callTool(t, s, "qr_generate", map[string]any{"text": "x", "dark": "black"}, nil)
	require.NotNil(t, err)
	assert.Equal(t, -32602, err.Code)
}

func TestURLShorten(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Shortener.BaseURL = "https://tiny.example"
	s := New(&cfg, WithIO(nil, nil))

	var entry struct {
		Short string `json:"short"`
		Code  string `json:"code"`
	}
	require.Nil(t, callTool(t, s, "url_shorten", map[string]any{"url": "https://example.com"}, &entry))
	assert.Equal(t, "ags5vy", entry.Code)
	assert.Equal(t, "https://tiny.example/s/ags5vy", entry.Short)

	require.Nil(t, callTool(t, s, "url_shorten", map[string]any{"action": "lookup", "code": "ags5vy"}, &entry))
	assert.Equal(t, "ags5vy", entry.Code)

	var hist struct {
		History []json.RawMessage `json:"history"`
	}
	require.Nil(t, callTool(t, s, "url_shorten", map[string]any{"action": "history"}, &hist))
	assert.Len(t, hist.History, 1)

	require.Nil(t, callTool(t, s, "url_shorten", map[string]any{"action": "clear"}, &hist))
	assert.Empty(t, hist.History)

	err := callTool(t, s, "url_shorten", map[string]any{"action": "lookup", "code": "ags5vy"}, nil)
	require.NotNil(t, err)
	assert.Equal(t, -32000, err.Code)

	err = callTool(t, s, "url_shorten", map[string]any{"url": "example.com"}, nil)
	require.NotNil(t, err)
	assert.Equal(t, -32602, err.Code)
}

func TestHandleToolsCall_InvalidTool(t *testing.T) {
	s := newTestServer(nil, nil)

	err := callTool(t, s, "image_crop", map[string]any{}, nil)
	require.NotNil(t, err)
	assert.Equal(t, -32000, err.Code)
	assert.Equal(t, "unknown tool: image_crop", err.Data)
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := newTestServer(nil, nil)
	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})

	require.NotNil(t, resp.Error)
	assert.Equal(t, -32602, resp.Error.Code)
}

func TestExecuteTool_AllToolsAcceptEmptyArgs(t *testing.T) {
	s := newTestServer(nil, nil)

	for _, spec := range Catalog() {
		t.Run(string(spec.ID), func(t *testing.T) {
			// Every tool must either succeed or fail cleanly, never panic.
			assert.NotPanics(t, func() {
				_, _ = s.executeTool(string(spec.ID), nil)
			})
		})
	}
}

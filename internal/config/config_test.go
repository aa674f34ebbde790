package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_PartialFile(t *testing.T) {
	path := writeConfig(t, `
shortener:
  base_url: https://tiny.example
qr:
  default_size: 300
  margin: 0
uuid:
  default_count: 20
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://tiny.example", cfg.Shortener.BaseURL)
	assert.Equal(t, 10, cfg.Shortener.HistoryLimit)
	assert.Equal(t, 300, cfg.QR.DefaultSize)
	assert.Equal(t, 0, cfg.QR.Margin)
	assert.Equal(t, 20, cfg.UUID.DefaultCount)
	assert.Equal(t, 16, cfg.Password.DefaultLength)
	assert.Equal(t, 80, cfg.Markdown.TerminalWidth)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"bad yaml", "qr: [", "parse config file"},
		{"qr size", "qr:\n  default_size: 64\n", "qr.default_size"},
		{"qr margin", "qr:\n  margin: 11\n", "qr.margin"},
		{"password", "password:\n  default_length: 100\n", "password.default_length"},
		{"uuid", "uuid:\n  default_count: 101\n", "uuid.default_count"},
		{"history", "shortener:\n  history_limit: -1\n", "shortener.history_limit"},
		{"width", "markdown:\n  terminal_width: 5\n", "markdown.terminal_width"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

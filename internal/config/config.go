// Package config handles configuration loading and validation for
// tinytools-mcp.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ironsheep/tinytools-mcp/internal/generate"
	"github.com/ironsheep/tinytools-mcp/internal/qr"
	"github.com/ironsheep/tinytools-mcp/internal/shortener"
	"github.com/ironsheep/tinytools-mcp/internal/textfmt"
)

// Config holds the application configuration.
type Config struct {
	Shortener ShortenerConfig `yaml:"shortener"`
	QR        QRConfig        `yaml:"qr"`
	Password  PasswordConfig  `yaml:"password"`
	UUID      UUIDConfig      `yaml:"uuid"`
	Markdown  MarkdownConfig  `yaml:"markdown"`
}

// ShortenerConfig configures the url_shorten tool.
type ShortenerConfig struct {
	BaseURL      string `yaml:"base_url"`
	HistoryLimit int    `yaml:"history_limit"`
}

// QRConfig holds the qr_generate defaults.
type QRConfig struct {
	DefaultSize int `yaml:"default_size"`
	Margin      int `yaml:"margin"` // quiet zone in modules
}

type PasswordConfig struct {
	DefaultLength int `yaml:"default_length"`
}

type UUIDConfig struct {
	DefaultCount int `yaml:"default_count"`
}

type MarkdownConfig struct {
	TerminalWidth int `yaml:"terminal_width"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Shortener: ShortenerConfig{
			BaseURL:      shortener.DefaultBaseURL,
			HistoryLimit: shortener.DefaultHistoryLimit,
		},
		QR: QRConfig{
			DefaultSize: qr.DefaultSize,
			Margin:      qr.DefaultMargin,
		},
		Password: PasswordConfig{DefaultLength: generate.DefaultPasswordLength},
		UUID:     UUIDConfig{DefaultCount: generate.DefaultUUIDs},
		Markdown: MarkdownConfig{TerminalWidth: textfmt.DefaultTerminalWidth},
	}
}

// Load reads configuration from configPath. If configPath is empty or the
// file doesn't exist, the defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values left by a partial config file. A zero
// qr.margin is a valid choice and is kept.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Shortener.BaseURL == "" {
		c.Shortener.BaseURL = defaults.Shortener.BaseURL
	}
	if c.Shortener.HistoryLimit == 0 {
		c.Shortener.HistoryLimit = defaults.Shortener.HistoryLimit
	}
	if c.QR.DefaultSize == 0 {
		c.QR.DefaultSize = defaults.QR.DefaultSize
	}
	if c.Password.DefaultLength == 0 {
		c.Password.DefaultLength = defaults.Password.DefaultLength
	}
	if c.UUID.DefaultCount == 0 {
		c.UUID.DefaultCount = defaults.UUID.DefaultCount
	}
	if c.Markdown.TerminalWidth == 0 {
		c.Markdown.TerminalWidth = defaults.Markdown.TerminalWidth
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Shortener.HistoryLimit < 1 {
		return fmt.Errorf("shortener.history_limit must be at least 1")
	}

	if c.QR.DefaultSize < qr.MinSize || c.QR.DefaultSize > qr.MaxSize {
		return fmt.Errorf("qr.default_size must be between %d and %d", qr.MinSize, qr.MaxSize)
	}

	if c.QR.Margin < 0 || c.QR.Margin > qr.MaxMargin {
		return fmt.Errorf("qr.margin must be between 0 and %d", qr.MaxMargin)
	}

	if c.Password.DefaultLength < generate.MinPasswordLength || c.Password.DefaultLength > generate.MaxPasswordLength {
		return fmt.Errorf("password.default_length must be between %d and %d",
			generate.MinPasswordLength, generate.MaxPasswordLength)
	}

	if c.UUID.DefaultCount < generate.MinUUIDs || c.UUID.DefaultCount > generate.MaxUUIDs {
		return fmt.Errorf("uuid.default_count must be between %d and %d", generate.MinUUIDs, generate.MaxUUIDs)
	}

	if c.Markdown.TerminalWidth < 20 {
		return fmt.Errorf("markdown.terminal_width must be at least 20")
	}

	return nil
}

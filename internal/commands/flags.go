package commands

import (
	"os"
	"path/filepath"

	"github.com/ironsheep/tinytools-mcp/internal/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	BaseURL    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tinytools", "config.yaml")
}

// LoadConfig reads the config file and applies flag overrides.
func (f *Flags) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	if f.BaseURL != "" {
		cfg.Shortener.BaseURL = f.BaseURL
	}
	return cfg, nil
}

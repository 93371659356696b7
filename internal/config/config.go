package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/viper"
)

// Config holds all user configuration for apeview.
type Config struct {
	// Path to the annotated xmonad configuration file
	KeymapPath string `mapstructure:"keymap_path"`

	// Color theme (dark or light)
	Theme string `mapstructure:"theme"`

	// Keep plain region comments in non-interactive output
	ShowComments bool `mapstructure:"show_comments"`

	// Verbose output
	Verbose bool `mapstructure:"verbose"`

	// Debug mode
	Debug bool `mapstructure:"debug"`

	// Per-element colors, hex strings
	Colors Colors `mapstructure:"colors"`
}

// Colors overrides the theme palette per element. Empty fields fall
// back to the theme defaults.
type Colors struct {
	Title       string `mapstructure:"title"`
	Section     string `mapstructure:"section"`
	Keybind     string `mapstructure:"keybind"`
	Description string `mapstructure:"description"`
	Match       string `mapstructure:"match"`
	Error       string `mapstructure:"error"`
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		KeymapPath:   "~/.xmonad/xmonad.hs",
		Theme:        "dark",
		ShowComments: false,
		Verbose:      false,
		Debug:        false,
	}
}

// Load loads configuration with the following precedence (lowest to
// highest): defaults, config file (apeview.yaml in ., $HOME or
// $XDG_CONFIG_HOME/apeview), environment variables (APEVIEW_*), CLI
// flags (handled by caller).
func Load() (*Config, error) {
	return LoadFromFile("")
}

// LoadFromFile loads configuration from a specific file path. If path
// is empty, it searches the standard locations.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("keymap_path", defaults.KeymapPath)
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("show_comments", defaults.ShowComments)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("debug", defaults.Debug)

	v.SetConfigName("apeview")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			v.AddConfigPath(filepath.Join(xdgConfig, "apeview"))
		}
	}

	v.SetEnvPrefix("APEVIEW")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine, the defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

var hexColorRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("invalid theme: %s (must be dark or light)", c.Theme)
	}

	if c.KeymapPath == "" {
		return fmt.Errorf("keymap_path cannot be empty")
	}

	for name, val := range map[string]string{
		"title":       c.Colors.Title,
		"section":     c.Colors.Section,
		"keybind":     c.Colors.Keybind,
		"description": c.Colors.Description,
		"match":       c.Colors.Match,
		"error":       c.Colors.Error,
	} {
		if val != "" && !hexColorRe.MatchString(val) {
			return fmt.Errorf("invalid color for %s: %s (must be #RRGGBB)", name, val)
		}
	}

	return nil
}

// ResolveKeymapPath returns the absolute path to the annotated
// configuration file, expanding a leading ~.
func (c *Config) ResolveKeymapPath() (string, error) {
	path := c.KeymapPath
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// GenerateSampleConfig generates a sample configuration file content.
func GenerateSampleConfig() string {
	return `# apeview configuration
# Save this file as ./apeview.yaml, ~/apeview.yaml or
# $XDG_CONFIG_HOME/apeview/apeview.yaml

# Annotated xmonad configuration to read
keymap_path: ~/.xmonad/xmonad.hs

# Color theme: dark or light
theme: dark

# Keep plain region comments in 'apeview show' output
show_comments: false

# Enable verbose output
verbose: false

# Enable debug mode
debug: false

# Optional per-element color overrides (hex)
# colors:
#   title: "#BDAE9D"
#   section: "#7F4A2B"
#   keybind: "#C5656B"
#   description: "#BDAE9D"
#   match: "#E5C07B"
#   error: "#E53935"
`
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.KeymapPath != "~/.xmonad/xmonad.hs" {
		t.Errorf("keymap_path default = %q", cfg.KeymapPath)
	}
	if cfg.Theme != "dark" {
		t.Errorf("theme default = %q", cfg.Theme)
	}
	if cfg.ShowComments || cfg.Verbose || cfg.Debug {
		t.Error("boolean options must default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apeview.yaml")
	content := []byte(strings.Join([]string{
		"keymap_path: /etc/xmonad/xmonad.hs",
		"theme: light",
		"show_comments: true",
		"colors:",
		"  keybind: \"#C5656B\"",
		"  match: \"#E5C07B\"",
	}, "\n"))
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.KeymapPath != "/etc/xmonad/xmonad.hs" {
		t.Errorf("keymap_path = %q", cfg.KeymapPath)
	}
	if cfg.Theme != "light" {
		t.Errorf("theme = %q", cfg.Theme)
	}
	if !cfg.ShowComments {
		t.Error("show_comments not loaded")
	}
	if cfg.Colors.Keybind != "#C5656B" || cfg.Colors.Match != "#E5C07B" {
		t.Errorf("colors not loaded: %+v", cfg.Colors)
	}
	// Unset fields keep their defaults.
	if cfg.Verbose {
		t.Error("verbose should default to false")
	}
}

func TestLoadFromFileMissingExplicitPath(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestValidateTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "solarized"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestValidateColors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Colors.Keybind = "red"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for non-hex color")
	}

	cfg.Colors.Keybind = "#C5656B"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid hex color rejected: %v", err)
	}

	cfg.Colors.Keybind = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty color override rejected: %v", err)
	}
}

func TestValidateKeymapPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KeymapPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty keymap_path")
	}
}

func TestResolveKeymapPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	cfg := DefaultConfig()
	cfg.KeymapPath = "~/.xmonad/xmonad.hs"
	got, err := cfg.ResolveKeymapPath()
	if err != nil {
		t.Fatalf("ResolveKeymapPath: %v", err)
	}
	want := filepath.Join(home, ".xmonad/xmonad.hs")
	if got != want {
		t.Errorf("ResolveKeymapPath = %q, want %q", got, want)
	}
}

func TestResolveKeymapPathAbsolute(t *testing.T) {
	cfg := DefaultConfig()
	cfg.KeymapPath = "/etc/xmonad/xmonad.hs"
	got, err := cfg.ResolveKeymapPath()
	if err != nil {
		t.Fatalf("ResolveKeymapPath: %v", err)
	}
	if got != "/etc/xmonad/xmonad.hs" {
		t.Errorf("ResolveKeymapPath = %q", got)
	}
}

func TestGenerateSampleConfigIsLoadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apeview.yaml")
	if err := os.WriteFile(path, []byte(GenerateSampleConfig()), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("sample theme = %q", cfg.Theme)
	}
}

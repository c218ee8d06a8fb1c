package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		cfg, err := loadConfig(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.MaxWidth != 80 || !cfg.ShowPalette || !cfg.ShowPixels || cfg.Block != "  " {
			t.Fatal(cfg)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "cfg.yaml")
	data := "maxWidth: 40\nshowPalette: false\nblock: '#'\n"
	if err := os.WriteFile(name, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxWidth != 40 || cfg.ShowPalette || cfg.Block != "#" {
		t.Fatal(cfg)
	}
	// Keys absent from the file keep their defaults.
	if !cfg.ShowPixels {
		t.Fatal(cfg)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	name := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(name, []byte("maxWidth: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(name); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

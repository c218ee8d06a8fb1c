package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config controls what bmp4dump prints.
type Config struct {
	MaxWidth    int    `yaml:"maxWidth"`    // preview is downscaled to at most this many columns
	ShowPalette bool   `yaml:"showPalette"` // print the color table
	ShowPixels  bool   `yaml:"showPixels"`  // print the pixel preview
	Block       string `yaml:"block"`       // glyph used for one preview pixel
}

func defaultConfig() *Config {
	return &Config{
		MaxWidth:    80,
		ShowPalette: true,
		ShowPixels:  true,
		Block:       "  ",
	}
}

// loadConfig reads and parses a YAML config file. An empty path or a
// missing file yields the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	return cfg, nil
}

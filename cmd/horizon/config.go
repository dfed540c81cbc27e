package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/horizon"
)

var errInvalidConfig = errors.New("invalid config")

// Config holds CLI defaults, optionally loaded from a YAML file. Flags that
// are set explicitly take precedence.
type Config struct {
	TextureSize int      `yaml:"texture_size"`
	Debug       bool     `yaml:"debug"`
	Viewport    Viewport `yaml:"viewport"`
	// Lens is the pointer position in client coordinates. Nil centers the
	// lens in the viewport.
	Lens *Point `yaml:"lens"`
}

// Viewport is the simulated window size.
type Viewport struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Point is a position in client coordinates.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func defaultConfig() Config {
	return Config{
		TextureSize: horizon.DefaultTextureSize,
		Viewport:    Viewport{Width: 1280, Height: 800},
	}
}

// LensPoint returns the configured pointer position or the viewport center.
func (c Config) LensPoint() Point {
	if c.Lens != nil {
		return *c.Lens
	}
	return Point{X: c.Viewport.Width / 2, Y: c.Viewport.Height / 2}
}

func (c Config) validate() error {
	if c.TextureSize <= 0 {
		return fmt.Errorf("%w: texture_size must be positive, got %d", errInvalidConfig, c.TextureSize)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("%w: viewport must be positive, got %vx%v", errInvalidConfig, c.Viewport.Width, c.Viewport.Height)
	}
	return nil
}

// loadConfig reads path on top of the defaults. An empty path returns the
// defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := decodeConfig(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeConfig(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", errInvalidConfig, err)
	}
	return cfg.validate()
}

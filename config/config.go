// Package config loads the YAML settings file. A file on disk wins; the
// embedded default.yaml is used when none is found.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/pixelmap/palette"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const maxExportScale = 16

//go:embed default.yaml
var defaultYAML []byte

type SwatchSpec struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type ExportSpec struct {
	Filename      string `yaml:"filename"`
	Dir           string `yaml:"dir"`
	Quality       int    `yaml:"quality"`
	GridLines     bool   `yaml:"grid_lines"`
	GridLineColor string `yaml:"grid_line_color"`
	// Background fills gaps between cells. Empty means the default color.
	Background    string `yaml:"background"`
	Scale         int    `yaml:"scale"`
}

type Config struct {
	Title        string       `yaml:"title"`
	LogLevel     string       `yaml:"log_level"`
	CellSize     int          `yaml:"cell_size"`
	Gap          int          `yaml:"gap"`
	Columns      int          `yaml:"columns"`
	Rows         int          `yaml:"rows"`
	DefaultColor string       `yaml:"default_color"`
	PickedColor  string       `yaml:"picked_color"`
	Swatches     []SwatchSpec `yaml:"swatches"`
	PatternsDir  string       `yaml:"patterns_dir"`
	Export       ExportSpec   `yaml:"export"`

	// Path is the file the config was read from; empty for the embedded default.
	Path string `yaml:"-"`
}

// Default returns the embedded configuration.
func Default() *Config {
	cfg, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded default.yaml: %v", err))
	}
	return cfg
}

// Parse decodes data on top of the embedded defaults, so a file only needs
// the keys it changes.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal default: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads path. A missing file falls back to the embedded default.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.WithField("path", path).Info("config not found, using embedded default")
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	cfg.Path = path
	if cfg.PatternsDir != "" && !filepath.IsAbs(cfg.PatternsDir) {
		cfg.PatternsDir = filepath.Join(filepath.Dir(path), cfg.PatternsDir)
	}
	return cfg, nil
}

// Validate checks ranges and colors.
func (c *Config) Validate() error {
	var problems []string
	if c.CellSize <= 0 {
		problems = append(problems, fmt.Sprintf("cell_size must be positive, got %d", c.CellSize))
	}
	if c.Gap < 0 {
		problems = append(problems, fmt.Sprintf("gap must not be negative, got %d", c.Gap))
	}
	if _, err := palette.ParseHex(c.DefaultColor); err != nil {
		problems = append(problems, fmt.Sprintf("default_color %q", c.DefaultColor))
	}
	if c.PickedColor != "" {
		if _, err := palette.ParseHex(c.PickedColor); err != nil {
			problems = append(problems, fmt.Sprintf("picked_color %q", c.PickedColor))
		}
	}
	for i, s := range c.Swatches {
		if _, err := palette.ParseHex(s.Color); err != nil {
			problems = append(problems, fmt.Sprintf("swatches[%d] %q", i, s.Color))
		}
	}
	if c.Export.Quality < 1 || c.Export.Quality > 100 {
		problems = append(problems, fmt.Sprintf("export.quality must be 1-100, got %d", c.Export.Quality))
	}
	if c.Export.Scale < 1 || c.Export.Scale > maxExportScale {
		problems = append(problems, fmt.Sprintf("export.scale must be 1-%d, got %d", maxExportScale, c.Export.Scale))
	}
	if strings.TrimSpace(c.Export.Filename) == "" {
		problems = append(problems, "export.filename is empty")
	}
	if c.Export.GridLines {
		if _, err := palette.ParseHex(c.Export.GridLineColor); err != nil {
			problems = append(problems, fmt.Sprintf("export.grid_line_color %q", c.Export.GridLineColor))
		}
	}
	if c.Export.Background != "" {
		if _, err := palette.ParseHex(c.Export.Background); err != nil {
			problems = append(problems, fmt.Sprintf("export.background %q", c.Export.Background))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: %s: %w", strings.Join(problems, "; "), ErrInvalidConfig)
	}
	return nil
}

// PaletteSwatches converts the swatch specs. Validate has already checked
// every color.
func (c *Config) PaletteSwatches() []palette.Swatch {
	out := make([]palette.Swatch, 0, len(c.Swatches))
	for _, s := range c.Swatches {
		col, err := palette.ParseHex(s.Color)
		if err != nil {
			continue
		}
		name := s.Name
		if name == "" {
			name = palette.Hex(col)
		}
		out = append(out, palette.Swatch{Name: name, Color: col})
	}
	return out
}

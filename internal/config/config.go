package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"slices"

	css "github.com/mazznoer/csscolorparser"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth         = 400
	DefaultHeight        = 300
	DefaultFPS           = 60
	DefaultTheme         = "mono"
	DefaultColumns       = 40
	DefaultExportSeconds = 3.0
	DefaultExportFPS     = 20
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ThemeNames lists the themes the hosts know how to draw.
var ThemeNames = []string{"mono", "cyberpunk", "retro", "ocean", "sunset"}

type Config struct {
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	FPS    int          `yaml:"fps"`
	Theme  string       `yaml:"theme"`
	Cells  CellConfig   `yaml:"cells"`
	Export ExportConfig `yaml:"export"`
	Colors ColorConfig  `yaml:"colors"`
}

// CellConfig sizes a unit in the terminal gallery. Rows is derived from the
// surface aspect ratio when zero.
type CellConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

type ExportConfig struct {
	Duration float64 `yaml:"duration"`
	FPS      int     `yaml:"fps"`
	Dir      string  `yaml:"dir"`
}

// ColorConfig holds CSS color strings ("#0a0a0a", "black", "rgb(...)").
type ColorConfig struct {
	Background  string `yaml:"background"`
	Placeholder string `yaml:"placeholder"`
	Accent      string `yaml:"accent"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		FPS:    DefaultFPS,
		Theme:  DefaultTheme,
		Cells:  CellConfig{Columns: DefaultColumns},
		Export: ExportConfig{
			Duration: DefaultExportSeconds,
			FPS:      DefaultExportFPS,
			Dir:      ".",
		},
		Colors: ColorConfig{
			Background:  "#000000",
			Placeholder: "#1f2937",
			Accent:      "white",
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: surface size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if !slices.Contains(ThemeNames, c.Theme) {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidConfig, c.Theme)
	}
	if c.Cells.Columns < 0 || c.Cells.Rows < 0 {
		return fmt.Errorf("%w: negative cell size", ErrInvalidConfig)
	}
	if c.Export.Duration <= 0 || c.Export.FPS <= 0 {
		return fmt.Errorf("%w: export duration and fps must be positive", ErrInvalidConfig)
	}
	for name, s := range map[string]string{
		"background":  c.Colors.Background,
		"placeholder": c.Colors.Placeholder,
		"accent":      c.Colors.Accent,
	} {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("%w: color %s: %v", ErrInvalidConfig, name, err)
		}
	}
	return nil
}

// FrameMillis is the frame period in milliseconds.
func (c *Config) FrameMillis() float64 {
	return 1000 / float64(c.FPS)
}

// CellRows returns the terminal rows of a unit. Each row holds two pixel
// rows (half blocks), so the aspect ratio is kept with rows = cols*h/w/2.
func (c *Config) CellRows() int {
	if c.Cells.Rows > 0 {
		return c.Cells.Rows
	}
	cols := c.Cells.Columns
	if cols <= 0 {
		cols = DefaultColumns
	}
	rows := cols * c.Height / c.Width / 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ParseColor parses a CSS color string into premultiplied RGBA.
func ParseColor(s string) (color.RGBA, error) {
	c, err := css.Parse(s)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{
		R: uint8(255 * c.R * c.A),
		G: uint8(255 * c.G * c.A),
		B: uint8(255 * c.B * c.A),
		A: uint8(255 * c.A),
	}, nil
}

// MustColor parses s, falling back to fallback on error.
func MustColor(s string, fallback color.RGBA) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c
}

package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Supported display backends
const (
	BackendFyne   = "fyne"
	BackendRaylib = "raylib"
)

// Config represents the viewer configuration
type Config struct {
	// Backend selects the window implementation ("fyne" or "raylib")
	Backend string `toml:"backend"`

	// Title is the window title; empty means the input file name
	Title string `toml:"title"`

	// Width and Height are the initial window size in pixels
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Background is the plot background as #rrggbb
	Background string `toml:"background"`

	LineWidth  float64 `toml:"line_width"`
	MarkerSize float64 `toml:"marker_size"`
	ShowAxes   bool    `toml:"show_axes"`
	ShowInfo   bool    `toml:"show_info"`

	// Watch reloads the plot when the input file changes
	Watch         bool          `toml:"watch"`
	WatchDebounce time.Duration `toml:"watch_debounce"`

	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Backend:       BackendFyne,
		Width:         1200,
		Height:        800,
		Background:    "#ffffff",
		LineWidth:     1.5,
		MarkerSize:    10,
		ShowAxes:      true,
		ShowInfo:      true,
		Watch:         false,
		WatchDebounce: 500 * time.Millisecond,
		LogLevel:      "warn",
	}
}

// Load reads a TOML file over the defaults
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Validate checks the configuration for values no backend can use
func (c *Config) Validate() error {
	var errs []error

	switch c.Backend {
	case BackendFyne, BackendRaylib:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q (expected %s or %s)", c.Backend, BackendFyne, BackendRaylib))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("line_width must be positive, got %v", c.LineWidth))
	}
	if c.MarkerSize <= 0 {
		errs = append(errs, fmt.Errorf("marker_size must be positive, got %v", c.MarkerSize))
	}
	if c.WatchDebounce < 0 {
		errs = append(errs, fmt.Errorf("watch_debounce must not be negative, got %v", c.WatchDebounce))
	}
	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// BackgroundColor parses Background
func (c *Config) BackgroundColor() (color.NRGBA, error) {
	return ParseColor(c.Background)
}

// ParseColor parses #rrggbb or #rrggbbaa
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q (expected #rrggbb)", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}

	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

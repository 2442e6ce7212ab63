package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/suzubu/Infinite-Image-Slider/internal/scene"
	"github.com/suzubu/Infinite-Image-Slider/internal/transition"
)

// Config is the complete slider configuration.
type Config struct {
	LogLevel string        `toml:"log_level"`
	Window   WindowConfig  `toml:"window"`
	Catalog  CatalogConfig `toml:"catalog"`
	Motion   MotionConfig  `toml:"motion"`
	Input    InputConfig   `toml:"input"`
	Title    TitleConfig   `toml:"title"`
	Render   RenderConfig  `toml:"render"`
}

// WindowConfig controls the OS window.
type WindowConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Fullscreen bool   `toml:"fullscreen"`
}

// CatalogConfig says where slides come from. Path wins over Dir.
type CatalogConfig struct {
	Path string `toml:"path"`
	Dir  string `toml:"dir"`
}

// MotionConfig tunes the scroll model.
type MotionConfig struct {
	IntensitySmoothing   float64 `toml:"intensity_smoothing"`
	PositionSmoothing    float64 `toml:"position_smoothing"`
	Friction             float64 `toml:"friction"`
	InputScale           float64 `toml:"input_scale"`
	MaxIntensity         float64 `toml:"max_intensity"`
	MovementThreshold    float64 `toml:"movement_threshold"`
	ConvergenceThreshold float64 `toml:"convergence_threshold"`
}

// InputConfig maps device input onto scroll deltas.
type InputConfig struct {
	// WheelScale converts one wheel unit into a scroll delta.
	WheelScale float64 `toml:"wheel_scale"`
	// KeyStep is the scroll delta of one arrow key press.
	KeyStep float64 `toml:"key_step"`
}

// TitleConfig controls the title overlay.
type TitleConfig struct {
	Duration Duration `toml:"duration"`
	Offset   float64  `toml:"offset"`
	FontSize float64  `toml:"font_size"`
	Color    string   `toml:"color"`
}

// RenderConfig controls textures and the plane.
type RenderConfig struct {
	TextureWidth   int     `toml:"texture_width"`
	TextureHeight  int     `toml:"texture_height"`
	Background     string  `toml:"background"`
	MaxScaleFactor float64 `toml:"max_scale_factor"`
	Segments       int     `toml:"segments"`
	Breakpoint     float64 `toml:"breakpoint"`
	Workers        int     `toml:"workers"`
}

// DefaultConfig returns the configuration the slider ships with.
func DefaultConfig() *Config {
	t := transition.DefaultTuning()
	return &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Width:  1600,
			Height: 900,
			Title:  "Infinite Image Slider",
		},
		Motion: MotionConfig{
			IntensitySmoothing:   t.IntensitySmoothing,
			PositionSmoothing:    t.PositionSmoothing,
			Friction:             t.Friction,
			InputScale:           t.InputScale,
			MaxIntensity:         t.MaxIntensity,
			MovementThreshold:    t.MovementThreshold,
			ConvergenceThreshold: t.ConvergenceThreshold,
		},
		Input: InputConfig{
			WheelScale: 100,
			KeyStep:    1000,
		},
		Title: TitleConfig{
			Duration: Duration{transition.DefaultTitleDuration},
			Offset:   20,
			FontSize: 48,
			Color:    "#111111",
		},
		Render: RenderConfig{
			TextureWidth:   1600,
			TextureHeight:  900,
			Background:     "#ffffff",
			MaxScaleFactor: 2,
			Segments:       scene.DefaultSegments,
			Breakpoint:     scene.DefaultBreakpoint,
			Workers:        2,
		},
	}
}

// Load reads the config file at path, or returns the defaults when path is
// empty or the file does not exist.
func Load(path string) (*Config, error) {
	if path == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		return cfg, cfg.Validate()
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, cfg.Validate()
		}
		return nil, err
	}
	defer f.Close()
	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader reads configuration from an io.Reader on top of the
// defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the slider cannot run with.
func (c *Config) Validate() error {
	if c.Render.TextureWidth <= 0 || c.Render.TextureHeight <= 0 {
		return fmt.Errorf("render: texture size must be positive, got %dx%d", c.Render.TextureWidth, c.Render.TextureHeight)
	}
	if c.Render.Workers < 1 {
		return fmt.Errorf("render: workers must be at least 1, got %d", c.Render.Workers)
	}
	if err := c.Motion.validate(); err != nil {
		return fmt.Errorf("motion: %w", err)
	}
	if _, err := parseColor(c.Render.Background); err != nil {
		return fmt.Errorf("render: background: %w", err)
	}
	if _, err := parseColor(c.Title.Color); err != nil {
		return fmt.Errorf("title: color: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// validate keeps the scroll model convergent: smoothing must move toward the
// target, friction must decay it, and both thresholds must be reachable.
func (m MotionConfig) validate() error {
	if m.IntensitySmoothing <= 0 || m.IntensitySmoothing > 1 {
		return fmt.Errorf("intensity_smoothing must be in (0, 1], got %v", m.IntensitySmoothing)
	}
	if m.PositionSmoothing <= 0 || m.PositionSmoothing > 1 {
		return fmt.Errorf("position_smoothing must be in (0, 1], got %v", m.PositionSmoothing)
	}
	if m.Friction < 0 || m.Friction >= 1 {
		return fmt.Errorf("friction must be in [0, 1), got %v", m.Friction)
	}
	if m.InputScale <= 0 {
		return fmt.Errorf("input_scale must be positive, got %v", m.InputScale)
	}
	if m.MaxIntensity <= 0 {
		return fmt.Errorf("max_intensity must be positive, got %v", m.MaxIntensity)
	}
	if m.ConvergenceThreshold <= 0 {
		return fmt.Errorf("convergence_threshold must be positive, got %v", m.ConvergenceThreshold)
	}
	if m.ConvergenceThreshold > m.MovementThreshold {
		return fmt.Errorf("convergence_threshold %v exceeds movement_threshold %v",
			m.ConvergenceThreshold, m.MovementThreshold)
	}
	return nil
}

// Tuning converts the motion section into the scroll model's tuning.
func (c *Config) Tuning() transition.Tuning {
	m := c.Motion
	return transition.Tuning{
		IntensitySmoothing:   m.IntensitySmoothing,
		PositionSmoothing:    m.PositionSmoothing,
		Friction:             m.Friction,
		InputScale:           m.InputScale,
		MaxIntensity:         m.MaxIntensity,
		MovementThreshold:    m.MovementThreshold,
		ConvergenceThreshold: m.ConvergenceThreshold,
	}
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// BackgroundColor returns the parsed clear color.
func (c *Config) BackgroundColor() color.Color {
	col, _ := parseColor(c.Render.Background)
	return col
}

// TitleColor returns the parsed title text color.
func (c *Config) TitleColor() color.Color {
	col, _ := parseColor(c.Title.Color)
	return col
}

// TitleDuration returns the title animation lock duration.
func (c *Config) TitleDuration() time.Duration {
	return c.Title.Duration.Duration
}

func parseColor(hex string) (color.Color, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return nil, err
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SLIDER_CATALOG"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("SLIDER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// Package config loads the TOML settings file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window  Window  `toml:"window"`
	Time    Time    `toml:"time"`
	Render  Render  `toml:"render"`
	Physics Physics `toml:"physics"`
	Scene   Scene   `toml:"scene"`
	Log     Log     `toml:"log"`
}

type Window struct {
	Title     string `toml:"title"`
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	TargetFPS int32  `toml:"target_fps"`
	HighDPI   bool   `toml:"high_dpi"`
}

type Time struct {
	FixedDeltaTime float32 `toml:"fixed_delta_time"`
	MaxFixedSteps  int     `toml:"max_fixed_steps"` // 0 = unbounded
}

type Render struct {
	ClearColor [4]float32 `toml:"clear_color"`
	Debug      bool       `toml:"debug"`
}

type Physics struct {
	Gravity [3]float32 `toml:"gravity"`
}

type Scene struct {
	Path  string `toml:"path"` // empty = built-in default scene
	Watch bool   `toml:"watch"`
}

type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:     "unigo",
			Width:     1280,
			Height:    720,
			TargetFPS: 60,
		},
		Time:    Time{FixedDeltaTime: 0.02},
		Render:  Render{ClearColor: [4]float32{0.3, 0.5, 0.9, 1}},
		Physics: Physics{Gravity: [3]float32{0, -9.81, 0}},
		Log:     Log{Level: "info", Format: "text"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML into cfg, leaving keys absent from data untouched,
// and validates the result.
func Parse(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Time.FixedDeltaTime <= 0:
		return fmt.Errorf("%w: time.fixed_delta_time must be positive, got %v", ErrInvalid, c.Time.FixedDeltaTime)
	case c.Time.MaxFixedSteps < 0:
		return fmt.Errorf("%w: time.max_fixed_steps must not be negative", ErrInvalid)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TargetFPS < 0:
		return fmt.Errorf("%w: window.target_fps must not be negative", ErrInvalid)
	}
	for i, ch := range c.Render.ClearColor {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("%w: render.clear_color[%d] = %v is outside 0..1", ErrInvalid, i, ch)
		}
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// Package config holds the game settings decoded from TOML. Defaults come
// from the embedded asset.DefaultConfig; a user file only needs the keys it
// changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml"

	"github.com/lixenwraith/skii/asset"
)

var ErrInvalid = errors.New("config: invalid value")

// Color modes accepted by RenderConfig.Color
const (
	ColorAuto      = "auto"
	ColorMono      = "mono"
	ColorTrueColor = "truecolor"
)

type GridConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type SimConfig struct {
	TickRate         int     `toml:"tick_rate"`
	Gravity          float32 `toml:"gravity"`
	TurnRate         float32 `toml:"turn_rate"`
	TurnDamping      float32 `toml:"turn_damping"`
	ScrollTrigger    float32 `toml:"scroll_trigger"`
	CameraOffset     float32 `toml:"camera_offset"`
	MaxTicksPerFrame int     `toml:"max_ticks_per_frame"`
}

type GenerationConfig struct {
	Seed         string  `toml:"seed"`
	ObjectRadius float32 `toml:"object_radius"`
	// RerollPlacedType keeps the two-stage obstacle roll
	RerollPlacedType bool `toml:"reroll_placed_type"`
}

type RenderConfig struct {
	Scale        float32 `toml:"scale"`
	CellPx       int     `toml:"cell_px"`
	WindowWidth  int     `toml:"window_width"`
	WindowHeight int     `toml:"window_height"`
	Color        string  `toml:"color"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type InputConfig struct {
	HoldMs int    `toml:"hold_ms"`
	Keymap string `toml:"keymap"`
}

type DebugConfig struct {
	Log    bool   `toml:"log"`
	LogDir string `toml:"log_dir"`
}

type TelemetryConfig struct {
	SentryDSN string `toml:"sentry_dsn"`
}

// Config is the full game configuration
type Config struct {
	Grid       GridConfig       `toml:"grid"`
	Sim        SimConfig        `toml:"sim"`
	Generation GenerationConfig `toml:"generation"`
	Render     RenderConfig     `toml:"render"`
	Audio      AudioConfig      `toml:"audio"`
	Input      InputConfig      `toml:"input"`
	Debug      DebugConfig      `toml:"debug"`
	Telemetry  TelemetryConfig  `toml:"telemetry"`
}

// Default returns the embedded configuration; it panics if the embedded TOML is broken
func Default() Config {
	cfg, err := Parse(nil)
	if err != nil {
		panic(fmt.Sprintf("embedded default config: %v", err))
	}
	return cfg
}

// Load reads a TOML file and overlays it on the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Parse(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays TOML data on the defaults, then validates the result
func Parse(data []byte) (Config, error) {
	tree, err := toml.Load(asset.DefaultConfig)
	if err != nil {
		return Config{}, fmt.Errorf("parse defaults: %w", err)
	}

	if len(data) > 0 {
		user, err := toml.LoadBytes(data)
		if err != nil {
			return Config{}, fmt.Errorf("parse: %w", err)
		}
		merge(tree, user, nil)
	}

	var cfg Config
	if err := tree.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// merge copies every leaf of src into dst, descending into tables
func merge(dst, src *toml.Tree, prefix []string) {
	for _, key := range src.Keys() {
		path := append(append([]string(nil), prefix...), key)
		if sub, ok := src.GetPath([]string{key}).(*toml.Tree); ok {
			merge(dst, sub, path)
			continue
		}
		dst.SetPath(path, src.GetPath([]string{key}))
	}
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Grid.Width < 2:
		return fmt.Errorf("grid.width %d < 2: %w", c.Grid.Width, ErrInvalid)
	case c.Grid.Height < 3:
		return fmt.Errorf("grid.height %d < 3: %w", c.Grid.Height, ErrInvalid)
	case c.Sim.TickRate <= 0:
		return fmt.Errorf("sim.tick_rate %d: %w", c.Sim.TickRate, ErrInvalid)
	case c.Sim.MaxTicksPerFrame < 1:
		return fmt.Errorf("sim.max_ticks_per_frame %d: %w", c.Sim.MaxTicksPerFrame, ErrInvalid)
	case c.Sim.CameraOffset < 0:
		return fmt.Errorf("sim.camera_offset %g: %w", c.Sim.CameraOffset, ErrInvalid)
	case int(c.Sim.ScrollTrigger-c.Sim.CameraOffset) < 1:
		return fmt.Errorf("sim.scroll_trigger %g must exceed camera_offset %g by a row: %w",
			c.Sim.ScrollTrigger, c.Sim.CameraOffset, ErrInvalid)
	case c.Sim.ScrollTrigger+1 >= float32(c.Grid.Height):
		return fmt.Errorf("sim.scroll_trigger %g leaves no rows ahead in grid.height %d: %w",
			c.Sim.ScrollTrigger, c.Grid.Height, ErrInvalid)
	case c.Generation.ObjectRadius < 0:
		return fmt.Errorf("generation.object_radius %g: %w", c.Generation.ObjectRadius, ErrInvalid)
	case c.Render.Scale <= 0 || c.Render.CellPx <= 0:
		return fmt.Errorf("render.scale %g, render.cell_px %d: %w", c.Render.Scale, c.Render.CellPx, ErrInvalid)
	case c.Input.HoldMs < 0:
		return fmt.Errorf("input.hold_ms %d: %w", c.Input.HoldMs, ErrInvalid)
	}
	switch c.Render.Color {
	case ColorAuto, ColorMono, ColorTrueColor:
	default:
		return fmt.Errorf("render.color %q: %w", c.Render.Color, ErrInvalid)
	}
	return nil
}

// TickInterval is the fixed simulation step
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Sim.TickRate)
}

// HoldWindow is how long a terminal key press counts as held
func (c Config) HoldWindow() time.Duration {
	return time.Duration(c.Input.HoldMs) * time.Millisecond
}

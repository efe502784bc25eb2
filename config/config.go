// Package config provides configuration loading and access for the
// renderer.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all runtime configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Grid      GridConfig      `yaml:"grid"`
	Field     FieldConfig     `yaml:"field"`
	Particles ParticlesConfig `yaml:"particles"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	PixelScale int  `yaml:"pixel_scale"` // window pixels per grid cell
	TargetFPS  int  `yaml:"target_fps"`
	Vsync      bool `yaml:"vsync"`
	ShowHUD    bool `yaml:"show_hud"`
}

// GridConfig holds the fixed grid dimensions. The x axis spans
// [0, rows) and the y axis spans [0, cols); the flat field index is
// y*rows + x, following the panel convention of the display hardware
// this effect was written for.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// FieldConfig holds vector-field construction parameters.
type FieldConfig struct {
	// Time is the noise time slice the field is frozen at. The field
	// is built once at startup and never evolves during the run.
	Time float64 `yaml:"time"`
}

// ParticlesConfig holds particle population parameters.
type ParticlesConfig struct {
	Count int     `yaml:"count"`
	Speed float64 `yaml:"speed"` // distance per step for a unit flow vector
}

// TelemetryConfig holds telemetry and reporting parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // rolling window size in seconds
	ReportEvery int     `yaml:"report_every"` // log frame stats every N ticks
}

// DerivedConfig holds values computed from the loaded configuration.
type DerivedConfig struct {
	WindowW int // Rows * PixelScale
	WindowH int // Cols * PixelScale
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Grid.Rows <= 0 {
		c.Grid.Rows = 64
	}
	if c.Grid.Cols <= 0 {
		c.Grid.Cols = 64
	}
	if c.Screen.PixelScale <= 0 {
		c.Screen.PixelScale = 1
	}
	if c.Particles.Count <= 0 {
		c.Particles.Count = 256
	}
	if c.Particles.Speed == 0 {
		c.Particles.Speed = 0.1
	}
	if c.Telemetry.ReportEvery <= 0 {
		c.Telemetry.ReportEvery = 120
	}

	c.Derived.WindowW = c.Grid.Rows * c.Screen.PixelScale
	c.Derived.WindowH = c.Grid.Cols * c.Screen.PixelScale
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Colour modes for the heatmap.
const (
	ColorGray     = "gray"
	ColorHue      = "hue"
	ColorGradient = "gradient"
)

// Noise coordinate normalization conventions.
const (
	NormalizeAxis    = "axis"    // each axis divided by its own extent
	NormalizeUniform = "uniform" // both axes divided by the larger extent
)

// Particle advection strategies.
const (
	StrategySimple = "simple"
	StrategyWrap   = "wrap"
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen       ScreenConfig       `yaml:"screen"`
	Noise        NoiseConfig        `yaml:"noise"`
	Simulation   SimulationConfig   `yaml:"simulation"`
	Particles    ParticleConfig     `yaml:"particles"`
	Accumulation AccumulationConfig `yaml:"accumulation"`
	Colors       ColorsConfig       `yaml:"colors"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	TargetFPS  int  `yaml:"target_fps"`
	Resizable  bool `yaml:"resizable"`
	PanelWidth int  `yaml:"panel_width"`
}

// NoiseConfig selects the gradient noise backend.
type NoiseConfig struct {
	Backend string `yaml:"backend"` // "perlin" or "simplex"
	Seed    int64  `yaml:"seed"`
}

// SimulationConfig is the live vector field configuration.
// The control panel mutates a copy of it every frame.
type SimulationConfig struct {
	Speed         float64 `yaml:"speed"`     // wall-clock to noise-time multiplier
	Step          int     `yaml:"step"`      // grid cell edge in pixels
	MaxAngle      float64 `yaml:"max_angle"` // radians per unit of noise
	Frequency     float64 `yaml:"frequency"` // noise coordinate scale
	ShowArrows    bool    `yaml:"show_arrows"`
	ShowValues    bool    `yaml:"show_values"`
	ColorMode     string  `yaml:"color_mode"` // gray, hue, gradient
	Running       bool    `yaml:"running"`
	Normalization string  `yaml:"normalization"` // axis, uniform
}

// ParticleConfig holds particle system parameters.
type ParticleConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Strategy  string  `yaml:"strategy"` // simple, wrap
	Count     int     `yaml:"count"`
	MoveDelta float64 `yaml:"move_delta"` // pixels per advection step
	Size      float64 `yaml:"size"`       // square edge in pixels
}

// AccumulationConfig controls the persistent particle trail buffer.
type AccumulationConfig struct {
	FadeAlpha uint8 `yaml:"fade_alpha"` // 0 = trails never fade
}

// ColorsConfig holds RGB colours used by the renderers.
type ColorsConfig struct {
	Background [3]uint8 `yaml:"background"`
	Arrow      [3]uint8 `yaml:"arrow"`
}

// TelemetryConfig holds frame statistics parameters.
type TelemetryConfig struct {
	WindowFrames int  `yaml:"window_frames"` // frames per stats window
	PerfWindow   int  `yaml:"perf_window"`   // frames averaged by the perf collector
	LogStats     bool `yaml:"log_stats"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW64 float64 // Screen.Width as float64
	ScreenH64 float64 // Screen.Height as float64
	FrameDT   float64 // seconds per frame at TargetFPS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
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

// Defaults returns the embedded default configuration.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
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

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate checks the values the simulation core treats as preconditions.
func (c *Config) Validate() error {
	var errs []error
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height))
	}
	if c.Screen.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS))
	}
	switch c.Noise.Backend {
	case "perlin", "simplex":
	default:
		errs = append(errs, fmt.Errorf("unknown noise backend %q", c.Noise.Backend))
	}
	if err := c.Simulation.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := c.Particles.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Validate checks a live simulation config.
func (s SimulationConfig) Validate() error {
	var errs []error
	if s.Step < 1 {
		errs = append(errs, fmt.Errorf("simulation.step must be >= 1, got %d", s.Step))
	}
	if s.Speed < 0 || math.IsNaN(s.Speed) {
		errs = append(errs, fmt.Errorf("simulation.speed must be >= 0, got %v", s.Speed))
	}
	if math.IsNaN(s.MaxAngle) || math.IsInf(s.MaxAngle, 0) {
		errs = append(errs, fmt.Errorf("simulation.max_angle must be finite"))
	}
	if s.Frequency <= 0 {
		errs = append(errs, fmt.Errorf("simulation.frequency must be positive, got %v", s.Frequency))
	}
	switch s.ColorMode {
	case ColorGray, ColorHue, ColorGradient:
	default:
		errs = append(errs, fmt.Errorf("unknown color mode %q", s.ColorMode))
	}
	switch s.Normalization {
	case NormalizeAxis, NormalizeUniform:
	default:
		errs = append(errs, fmt.Errorf("unknown normalization %q", s.Normalization))
	}
	return errors.Join(errs...)
}

// Validate checks particle parameters.
func (p ParticleConfig) Validate() error {
	var errs []error
	if p.Count < 0 {
		errs = append(errs, fmt.Errorf("particles.count must be >= 0, got %d", p.Count))
	}
	if p.Size <= 0 {
		errs = append(errs, fmt.Errorf("particles.size must be positive, got %v", p.Size))
	}
	switch p.Strategy {
	case StrategySimple, StrategyWrap:
	default:
		errs = append(errs, fmt.Errorf("unknown particle strategy %q", p.Strategy))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW64 = float64(c.Screen.Width)
	c.Derived.ScreenH64 = float64(c.Screen.Height)
	c.Derived.FrameDT = 1.0 / float64(c.Screen.TargetFPS)
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

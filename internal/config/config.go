package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/san-kum/entropic/internal/dynamo"
	"github.com/san-kum/entropic/internal/physics"
	"github.com/san-kum/entropic/internal/sim"
	"gopkg.in/yaml.v3"
)

const (
	BackendRaylib = "raylib"
	BackendEbiten = "ebiten"
	BackendTUI    = "tui"

	DefaultFPS   = 60
	DefaultTheme = "night"
)

var Backends = []string{BackendRaylib, BackendEbiten, BackendTUI}

type Config struct {
	Variant   string             `yaml:"variant"`
	Backend   string             `yaml:"backend"`
	Dt        float64            `yaml:"dt"`
	TimeScale float64            `yaml:"time_scale"`
	Particles int                `yaml:"particles"`
	Trails    bool               `yaml:"trails"`
	Overlay   bool               `yaml:"overlay"`
	Seed      int64              `yaml:"seed"`
	Workers   int                `yaml:"workers"`
	Theme     string             `yaml:"theme"`
	FPS       int                `yaml:"fps"`
	LogLevel  string             `yaml:"log_level"`
	Width     int                `yaml:"width"`
	Height    int                `yaml:"height"`
	Params    map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Variant:   physics.Lorenz.Slug(),
		Backend:   BackendRaylib,
		Dt:        sim.DefaultDt,
		TimeScale: sim.DefaultTimeScale,
		Particles: sim.DefaultParticleCount,
		Trails:    true,
		Overlay:   true,
		Theme:     DefaultTheme,
		FPS:       DefaultFPS,
		LogLevel:  "info",
		Width:     sim.ScreenWidth,
		Height:    sim.ScreenHeight,
		Params:    physics.DefaultParams().GetParams(),
	}
}

// Load reads a YAML file over the defaults; keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

// Validate checks every field and wraps the first problem in
// dynamo.ErrInvalidConfig (or ErrUnknownVariant, ErrUnknownBackend,
// ErrUnknownParam for bad names).
func (c *Config) Validate() error {
	if _, err := physics.ParseVariant(c.Variant); err != nil {
		return err
	}
	if !slices.Contains(Backends, c.Backend) {
		return fmt.Errorf("%q (want one of %s): %w", c.Backend, strings.Join(Backends, ", "), dynamo.ErrUnknownBackend)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %v: %w", c.Dt, dynamo.ErrInvalidConfig)
	}
	if c.TimeScale < sim.MinTimeScale || c.TimeScale > sim.MaxTimeScale {
		return fmt.Errorf("time_scale %v outside [%v, %v]: %w", c.TimeScale, sim.MinTimeScale, sim.MaxTimeScale, dynamo.ErrInvalidConfig)
	}
	if c.Particles < sim.MinParticles || c.Particles > sim.MaxParticles {
		return fmt.Errorf("particles %d outside [%d, %d]: %w", c.Particles, sim.MinParticles, sim.MaxParticles, dynamo.ErrInvalidConfig)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d: %w", c.FPS, dynamo.ErrInvalidConfig)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d: %w", c.Width, c.Height, dynamo.ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return physics.DefaultParams().Apply(c.Params)
}

// ToSim converts a validated config into simulator settings.
func (c *Config) ToSim(logger *slog.Logger) (sim.Config, error) {
	v, err := physics.ParseVariant(c.Variant)
	if err != nil {
		return sim.Config{}, err
	}
	params := physics.DefaultParams()
	if err := params.Apply(c.Params); err != nil {
		return sim.Config{}, err
	}
	return sim.Config{
		Variant:       v,
		Params:        params,
		Dt:            c.Dt,
		TimeScale:     c.TimeScale,
		ParticleCount: c.Particles,
		Trails:        c.Trails,
		Overlay:       c.Overlay,
		Seed:          c.Seed,
		Workers:       c.Workers,
		Width:         float64(c.Width),
		Height:        float64(c.Height),
		Logger:        logger,
	}, nil
}

// SetParam records a dotted-name override.
func (c *Config) SetParam(name string, value float64) error {
	if _, err := physics.DefaultParams().Get(name); err != nil {
		return err
	}
	if c.Params == nil {
		c.Params = make(map[string]float64)
	}
	c.Params[name] = value
	return nil
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", s, dynamo.ErrInvalidConfig)
	}
	return level, nil
}

package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/san-kum/entropic/internal/config"
	"github.com/san-kum/entropic/internal/dynamo"
	"github.com/san-kum/entropic/internal/gui"
	"github.com/san-kum/entropic/internal/physics"
	"github.com/san-kum/entropic/internal/sim"
	"github.com/san-kum/entropic/internal/viz"
	"github.com/san-kum/entropic/internal/window"
	"github.com/spf13/cobra"
)

// simFlags are the flags shared by every command that builds a simulator or a
// parameter set.
type simFlags struct {
	configFile string
	preset     string
	params     []string
	dt         float64
	seed       int64
}

func (f *simFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "named parameter preset for the variant")
	cmd.Flags().StringArrayVar(&f.params, "param", nil, "parameter override name=value, e.g. lorenz.rho=99.96 (repeatable)")
	cmd.Flags().Float64Var(&f.dt, "dt", sim.DefaultDt, "integration step")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 seeds from the clock)")
}

// resolve builds the effective config. Precedence: defaults < config file <
// variant argument < preset < explicit flags.
func (f *simFlags) resolve(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.configFile != "" {
		loaded, err := config.Load(f.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Variant = args[0]
	}
	v, err := physics.ParseVariant(cfg.Variant)
	if err != nil {
		return nil, err
	}
	cfg.Variant = v.Slug()

	if f.preset != "" {
		p := config.GetPreset(v, f.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q for %s (available: %s): %w",
				f.preset, v, strings.Join(config.ListPresets(v), ", "), dynamo.ErrInvalidConfig)
		}
		p.Apply(cfg)
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = f.dt
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = f.seed
	}
	for _, kv := range f.params {
		name, value, err := parseParam(kv)
		if err != nil {
			return nil, err
		}
		if err := cfg.SetParam(name, value); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// parseParam splits "name=value".
func parseParam(kv string) (string, float64, error) {
	name, raw, ok := strings.Cut(kv, "=")
	if !ok {
		return "", 0, fmt.Errorf("--param %q: want name=value: %w", kv, dynamo.ErrInvalidConfig)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", 0, fmt.Errorf("--param %q: %w", kv, dynamo.ErrInvalidConfig)
	}
	return strings.TrimSpace(name), value, nil
}

type runOptions struct {
	simFlags
	backend   string
	particles int
	timeScale float64
	workers   int
	noTrails  bool
	noUI      bool
	fps       int
	theme     string
	width     int
	height    int
}

func newRunCmd() *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run [variant]",
		Short: "open the interactive visualizer",
		Long: `Open the interactive visualizer for lorenz, rossler, aizawa or chenlee.

Keys: 1-4 switch family, Q/A W/S E/D R/F tune parameters, Backspace resets,
Z/X time scale, C/V particle count, T trails, H overlay, ESC quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: o.execute,
	}
	o.register(cmd)
	return cmd
}

func (o *runOptions) register(cmd *cobra.Command) {
	o.simFlags.register(cmd)
	cmd.Flags().StringVar(&o.backend, "backend", config.BackendRaylib, "display backend (raylib|ebiten|tui)")
	cmd.Flags().IntVar(&o.particles, "particles", sim.DefaultParticleCount, "particle count")
	cmd.Flags().Float64Var(&o.timeScale, "time-scale", sim.DefaultTimeScale, "time scale multiplier")
	cmd.Flags().IntVar(&o.workers, "workers", 0, "tick workers (0 uses GOMAXPROCS)")
	cmd.Flags().BoolVar(&o.noTrails, "no-trails", false, "start with trails hidden")
	cmd.Flags().BoolVar(&o.noUI, "no-ui", false, "start with the overlay hidden")
	cmd.Flags().IntVar(&o.fps, "fps", config.DefaultFPS, "frames per second")
	cmd.Flags().StringVar(&o.theme, "theme", config.DefaultTheme, "terminal theme ("+strings.Join(viz.ThemeNames(), "|")+")")
	cmd.Flags().IntVar(&o.width, "width", sim.ScreenWidth, "window width")
	cmd.Flags().IntVar(&o.height, "height", sim.ScreenHeight, "window height")
}

func (o *runOptions) resolve(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg, err := o.simFlags.resolve(cmd, args)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = o.backend
	}
	if flags.Changed("particles") {
		cfg.Particles = o.particles
	}
	if flags.Changed("time-scale") {
		cfg.TimeScale = o.timeScale
	}
	if flags.Changed("workers") {
		cfg.Workers = o.workers
	}
	if flags.Changed("no-trails") {
		cfg.Trails = !o.noTrails
	}
	if flags.Changed("no-ui") {
		cfg.Overlay = !o.noUI
	}
	if flags.Changed("fps") {
		cfg.FPS = o.fps
	}
	if flags.Changed("theme") {
		cfg.Theme = o.theme
	}
	if flags.Changed("width") {
		cfg.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Height = o.height
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, ok := viz.GetTheme(cfg.Theme); !ok && cfg.Backend == config.BackendTUI {
		return nil, fmt.Errorf("theme %q (want one of %s): %w", cfg.Theme, strings.Join(viz.ThemeNames(), ", "), dynamo.ErrInvalidConfig)
	}
	return cfg, nil
}

func (o *runOptions) execute(cmd *cobra.Command, args []string) error {
	cfg, err := o.resolve(cmd, args)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	if err := setupLogging(level, cfg.Backend); err != nil {
		return err
	}
	logger := slog.Default()

	simCfg, err := cfg.ToSim(logger)
	if err != nil {
		return err
	}
	s := sim.New(simCfg)
	logger.Info("starting visualizer",
		"variant", cfg.Variant, "backend", cfg.Backend, "particles", cfg.Particles, "seed", cfg.Seed)

	ctx := cmd.Context()
	switch cfg.Backend {
	case config.BackendRaylib:
		return gui.Run(ctx, s, gui.Options{Title: "entropic", Width: cfg.Width, Height: cfg.Height, FPS: cfg.FPS, Logger: logger})
	case config.BackendEbiten:
		return window.Run(ctx, s, window.Options{Title: "entropic", FPS: cfg.FPS, Logger: logger})
	case config.BackendTUI:
		return viz.Run(ctx, s, viz.Options{Theme: cfg.Theme, FPS: cfg.FPS, Logger: logger})
	}
	return fmt.Errorf("%q: %w", cfg.Backend, dynamo.ErrUnknownBackend)
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/entropic/internal/analysis"
	"github.com/san-kum/entropic/internal/dynamo"
	"github.com/san-kum/entropic/internal/export"
	"github.com/san-kum/entropic/internal/integrators"
	"github.com/san-kum/entropic/internal/physics"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/plot/vg"
)

var coordNames = []string{"x", "y", "z"}

// systemFor resolves the variant and parameters selected by args and flags.
func systemFor(cmd *cobra.Command, f *simFlags, args []string) (*physics.System, float64, error) {
	cfg, err := f.resolve(cmd, args)
	if err != nil {
		return nil, 0, err
	}
	v, err := physics.ParseVariant(cfg.Variant)
	if err != nil {
		return nil, 0, err
	}
	p := physics.DefaultParams()
	if err := p.Apply(cfg.Params); err != nil {
		return nil, 0, err
	}
	return physics.NewSystem(v, p), cfg.Dt, nil
}

// initialState parses "x,y,z" or, when empty, returns the upper corner of
// the family's initial-condition box. Box centres can sit on invariant axes
// or fixed points.
func initialState(v physics.Variant, raw string) (dynamo.State, error) {
	if raw == "" {
		box := v.InitBox()
		return dynamo.State{box.Max[0], box.Max[1], box.Max[2]}, nil
	}
	parts := strings.Split(raw, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("--x0 %q: want x,y,z: %w", raw, dynamo.ErrDimensionMismatch)
	}
	x := make(dynamo.State, 3)
	for i, s := range parts {
		if _, err := fmt.Sscan(strings.TrimSpace(s), &x[i]); err != nil {
			return nil, fmt.Errorf("--x0 %q: %w", raw, dynamo.ErrInvalidConfig)
		}
	}
	return x, nil
}

func newTraceCmd() *cobra.Command {
	var (
		f        simFlags
		steps    int
		x0       string
		spectrum bool
	)
	cmd := &cobra.Command{
		Use:   "trace [variant]",
		Short: "integrate one particle and plot its coordinates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps %d: need at least one step: %w", steps, dynamo.ErrInvalidConfig)
			}
			sys, dt, err := systemFor(cmd, &f, args)
			if err != nil {
				return err
			}
			start, err := initialState(sys.Variant, x0)
			if err != nil {
				return err
			}

			samples, err := analysis.Trace(cmd.Context(), sys, integrators.NewEuler(), start, dt, steps)
			if err != nil {
				slog.Warn("trace stopped early", "samples", len(samples), "err", err)
				if len(samples) < 2 {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s from (%.3f, %.3f, %.3f), %d steps of %g\n\n", sys.Variant, start[0], start[1], start[2], len(samples)-1, dt)
			for i, name := range coordNames {
				fmt.Fprintln(out, asciigraph.Plot(analysis.Column(samples, i),
					asciigraph.Height(10), asciigraph.Width(80), asciigraph.Caption(name+"(t)")))
				fmt.Fprintln(out)
			}

			if spectrum {
				ps := analysis.PowerSpectrum(analysis.Column(samples, 0))
				fmt.Fprintln(out, asciigraph.Plot(ps[:min(len(ps), max(2, len(ps)/4))],
					asciigraph.Height(12), asciigraph.Width(80), asciigraph.Caption("power spectrum of x")))
				freq := analysis.DominantFrequency(ps, len(samples), dt)
				fmt.Fprintf(out, "\ndominant frequency: %.4f per time unit\n", freq)
				if freq > 0 {
					fmt.Fprintf(out, "period: %.4f\n", 1/freq)
				}
			}
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&steps, "steps", 5000, "integration steps")
	cmd.Flags().StringVar(&x0, "x0", "", "initial state x,y,z (default: upper corner of the initial box)")
	cmd.Flags().BoolVar(&spectrum, "spectrum", false, "also plot the power spectrum of x")
	return cmd
}

func newLyapunovCmd() *cobra.Command {
	var (
		f    simFlags
		opts = analysis.DefaultLyapunovOptions()
	)
	cmd := &cobra.Command{
		Use:   "lyapunov [variant]",
		Short: "estimate the largest Lyapunov exponent (all variants when none is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variants := physics.Variants
			if len(args) > 0 {
				v, err := physics.ParseVariant(args[0])
				if err != nil {
					return err
				}
				variants = []physics.Variant{v}
			}
			base, dt, err := systemFor(cmd, &f, nil)
			if err != nil {
				return err
			}
			opts.Dt = dt

			results := make([]float64, len(variants))
			errs := make([]error, len(variants))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, v := range variants {
				i, v := i, v
				g.Go(func() error {
					sys := physics.NewSystem(v, base.Params.Clone())
					x0, _ := initialState(v, "")
					results[i], errs[i] = analysis.LargestLyapunov(ctx, sys, integrators.NewEuler(), x0, opts)
					if errors.Is(errs[i], dynamo.ErrInvalidConfig) {
						return errs[i]
					}
					if ctx.Err() != nil {
						return ctx.Err()
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "VARIANT\tLAMBDA\tREGIME")
			for i, v := range variants {
				if errs[i] != nil {
					fmt.Fprintf(w, "%s\t-\t%v\n", v, errs[i])
					continue
				}
				fmt.Fprintf(w, "%s\t%.4f\t%s\n", v, results[i], regime(results[i]))
			}
			return w.Flush()
		},
	}
	f.register(cmd)
	cmd.Flags().Float64Var(&opts.Transient, "transient", opts.Transient, "settling time before measuring")
	cmd.Flags().Float64Var(&opts.Duration, "duration", opts.Duration, "measurement time")
	cmd.Flags().Float64Var(&opts.Perturbation, "perturbation", opts.Perturbation, "initial separation")
	return cmd
}

func regime(lambda float64) string {
	switch {
	case lambda > 0.01:
		return "chaotic"
	case lambda < -0.01:
		return "stable"
	}
	return "periodic/marginal"
}

func newBifurcationCmd() *cobra.Command {
	var (
		f     simFlags
		sweep = analysis.SweepOptions{Transient: 50, Record: 50, Steps: 200, Coord: 2}
		coord string
		x0    string
		out   string
	)
	cmd := &cobra.Command{
		Use:   "bifurcation [variant]",
		Short: "sweep a parameter and record local maxima of one coordinate",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, dt, err := systemFor(cmd, &f, args)
			if err != nil {
				return err
			}
			sweep.Dt = dt
			if sweep.Param == "" {
				sweep.Param = sys.Variant.Attractor().Knobs()[0].Param
			}
			if !cmd.Flags().Changed("from") || !cmd.Flags().Changed("to") {
				cur, err := sys.Params.Get(sweep.Param)
				if err != nil {
					return err
				}
				if !cmd.Flags().Changed("from") {
					sweep.Min = cur * 0.5
				}
				if !cmd.Flags().Changed("to") {
					sweep.Max = cur * 1.5
				}
			}
			idx := indexOf(coordNames, coord)
			if idx < 0 {
				return fmt.Errorf("--coord %q: want x, y or z: %w", coord, dynamo.ErrInvalidConfig)
			}
			sweep.Coord = idx
			start, err := initialState(sys.Variant, x0)
			if err != nil {
				return err
			}

			points, err := analysis.BifurcationDiagram(cmd.Context(), sys, integrators.NewEuler(), start, sweep)
			if err != nil {
				return err
			}

			if out == "" {
				counts := make([]float64, len(points))
				for i, p := range points {
					counts[i] = float64(len(p.Maxima))
				}
				fmt.Fprintln(cmd.OutOrStdout(), asciigraph.Plot(counts, asciigraph.Height(10), asciigraph.Width(80),
					asciigraph.Caption(fmt.Sprintf("maxima of %s per %s in [%g, %g]", coord, sweep.Param, sweep.Min, sweep.Max))))
				return nil
			}

			file, err := os.Create(out)
			if err != nil {
				return err
			}
			defer file.Close()
			format := strings.TrimPrefix(filepath.Ext(out), ".")
			if err := export.WriteBifurcation(file, points, sys.Variant.String(), sweep.Param, "max "+coord, format, 8*vg.Inch, 5*vg.Inch); err != nil {
				return err
			}
			slog.Info("wrote bifurcation diagram", "path", out, "points", len(points))
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&sweep.Param, "sweep", "", "parameter to sweep (default: the family's first knob)")
	cmd.Flags().Float64Var(&sweep.Min, "from", 0, "sweep start (default: half the current value)")
	cmd.Flags().Float64Var(&sweep.Max, "to", 0, "sweep end (default: 1.5x the current value)")
	cmd.Flags().IntVar(&sweep.Steps, "steps", sweep.Steps, "parameter values")
	cmd.Flags().Float64Var(&sweep.Transient, "transient", sweep.Transient, "settling time per value")
	cmd.Flags().Float64Var(&sweep.Record, "record", sweep.Record, "recording time per value")
	cmd.Flags().StringVar(&coord, "coord", "z", "coordinate whose maxima are recorded (x|y|z)")
	cmd.Flags().StringVar(&x0, "x0", "", "initial state x,y,z")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write a png/svg/pdf diagram instead of a text summary")
	return cmd
}

func indexOf(names []string, s string) int {
	for i, n := range names {
		if n == s {
			return i
		}
	}
	return -1
}

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/entropic/internal/config"
	"github.com/san-kum/entropic/internal/dynamo"
	"github.com/san-kum/entropic/internal/export"
	"github.com/san-kum/entropic/internal/sim"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

var planes = map[string]export.Plane{
	"xy": export.PlaneXY,
	"xz": export.PlaneXZ,
	"yz": export.PlaneYZ,
}

func newSnapshotCmd() *cobra.Command {
	var (
		f         simFlags
		ticks     int
		particles int
		out       string
		plane     string
	)
	cmd := &cobra.Command{
		Use:   "snapshot [variant]",
		Short: "run headless and export a frame (.svg) or a phase portrait (.png/.pdf)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd, args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("particles") {
				cfg.Particles = particles
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			pl, ok := planes[plane]
			if !ok {
				return fmt.Errorf("--plane %q: want xy, xz or yz: %w", plane, dynamo.ErrInvalidConfig)
			}
			return snapshot(cmd, cfg, ticks, out, pl)
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&ticks, "ticks", 500, "ticks to run before exporting")
	cmd.Flags().IntVar(&particles, "particles", sim.DefaultParticleCount, "particle count")
	cmd.Flags().StringVarP(&out, "out", "o", "frame.svg", "output path; .svg writes the frame, .png/.pdf a portrait")
	cmd.Flags().StringVar(&plane, "plane", "xy", "portrait plane (xy|xz|yz)")
	return cmd
}

func snapshot(cmd *cobra.Command, cfg *config.Config, ticks int, out string, plane export.Plane) error {
	logger := slog.Default()
	simCfg, err := cfg.ToSim(logger)
	if err != nil {
		return err
	}
	s := sim.New(simCfg)

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(out), "."))
	portrait := ext == "png" || ext == "pdf" || ext == "eps" || ext == "jpg"
	if !portrait && ext != "svg" {
		return fmt.Errorf("output %q: unsupported extension: %w", out, dynamo.ErrInvalidConfig)
	}

	var tr *export.Trajectories
	if portrait {
		tr = export.NewTrajectories(plane)
		tr.Record(s)
	}
	ctx := cmd.Context()
	for i := 0; i < ticks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Tick()
		if tr != nil {
			tr.Record(s)
		}
	}
	if n := s.Diverged(); n > 0 {
		logger.Warn("particles diverged", "count", n, "of", len(s.Particles()))
	}

	file, err := os.Create(out)
	if err != nil {
		return err
	}
	if portrait {
		title := fmt.Sprintf("%s, %d particles, t=%.2f", s.Variant(), len(s.Particles()), s.Time())
		err = tr.WritePortrait(file, title, ext, 8*vg.Inch, 6*vg.Inch)
	} else {
		err = export.WriteFrame(file, s, logger)
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return errors.Join(err, os.Remove(out))
	}
	logger.Info("wrote snapshot", "path", out, "ticks", s.Ticks(), "variant", s.Variant().Slug())
	return nil
}

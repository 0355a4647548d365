package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/entropic/internal/dynamo"
)

// LyapunovOptions controls a largest-exponent estimate. Durations are in
// simulation time units.
type LyapunovOptions struct {
	Dt           float64
	Transient    float64
	Duration     float64
	Perturbation float64
}

func DefaultLyapunovOptions() LyapunovOptions {
	return LyapunovOptions{Dt: 0.01, Transient: 10, Duration: 100, Perturbation: 1e-8}
}

// LargestLyapunov estimates the largest Lyapunov exponent with the
// two-trajectory renormalisation method: a companion trajectory starts
// Perturbation away from the reference, and after every step the separation
// is logged and rescaled back to Perturbation. A positive value indicates
// chaos.
//
// The reference is first run for Transient to settle onto the attractor.
func LargestLyapunov(ctx context.Context, dyn dynamo.System, integ dynamo.Integrator, x0 dynamo.State, opts LyapunovOptions) (float64, error) {
	if len(x0) == 0 {
		return 0, fmt.Errorf("empty initial state: %w", dynamo.ErrDimensionMismatch)
	}
	if opts.Dt <= 0 || opts.Duration <= 0 || opts.Perturbation <= 0 {
		return 0, fmt.Errorf("dt, duration and perturbation must be positive: %w", dynamo.ErrInvalidConfig)
	}
	measured := int(opts.Duration / opts.Dt)
	if measured < 1 {
		return 0, fmt.Errorf("duration %g is shorter than one step of %g: %w", opts.Duration, opts.Dt, dynamo.ErrInvalidConfig)
	}

	u := make(dynamo.Control, dyn.ControlDim())
	x := x0.Clone()
	t := 0.0

	steps := int(opts.Transient / opts.Dt)
	for i := 0; i < steps; i++ {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return 0, ctx.Err()
		}
		x = integ.Step(dyn, x, u, t, opts.Dt)
		t += opts.Dt
	}
	if !x.IsValid() {
		return 0, fmt.Errorf("transient at t=%.2f: %w", t, ErrDiverged)
	}

	d0 := opts.Perturbation
	xp := x.Clone()
	xp[0] += d0

	sumLog := 0.0
	for i := 0; i < measured; i++ {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return 0, ctx.Err()
		}
		x = integ.Step(dyn, x, u, t, opts.Dt)
		xp = integ.Step(dyn, xp, u, t, opts.Dt)
		t += opts.Dt

		sep := xp.Sub(x).Norm()
		if !x.IsValid() || math.IsNaN(sep) || math.IsInf(sep, 0) {
			return 0, fmt.Errorf("t=%.2f: %w", t, ErrDiverged)
		}
		if sep == 0 {
			// merged below float resolution
			xp = x.Clone()
			xp[0] += d0
			continue
		}
		sumLog += math.Log(sep / d0)

		scale := d0 / sep
		for j := range xp {
			xp[j] = x[j] + (xp[j]-x[j])*scale
		}
	}

	return sumLog / (float64(measured) * opts.Dt), nil
}

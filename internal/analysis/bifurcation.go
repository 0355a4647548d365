package analysis

import (
	"context"
	"fmt"

	"github.com/san-kum/entropic/internal/dynamo"
)

// BifurcationPoint holds the local maxima of one coordinate observed at a
// single parameter value.
type BifurcationPoint struct {
	Param  float64
	Maxima []float64
}

// SweepOptions describes a parameter sweep. Param is a dotted parameter name
// such as "lorenz.rho".
type SweepOptions struct {
	Param     string
	Min, Max  float64
	Steps     int
	Coord     int
	Dt        float64
	Transient float64
	Record    float64
}

// BifurcationDiagram sweeps a parameter and records the local maxima of one
// coordinate once the trajectory has settled. A periodic orbit yields a few
// distinct maxima per parameter value; chaos smears them over an interval.
//
// The parameter is restored to its original value before returning. A
// parameter value whose trajectory diverges contributes no maxima.
func BifurcationDiagram(ctx context.Context, dyn dynamo.System, integ dynamo.Integrator, x0 dynamo.State, opts SweepOptions) (results []BifurcationPoint, err error) {
	tunable, ok := dyn.(dynamo.Configurable)
	if !ok {
		return nil, fmt.Errorf("system has no parameters: %w", dynamo.ErrInvalidConfig)
	}
	original, ok := tunable.GetParams()[opts.Param]
	if !ok {
		return nil, fmt.Errorf("%q: %w", opts.Param, dynamo.ErrUnknownParam)
	}
	if opts.Coord < 0 || opts.Coord >= len(x0) {
		return nil, fmt.Errorf("coordinate %d of %d: %w", opts.Coord, len(x0), dynamo.ErrDimensionMismatch)
	}
	if opts.Dt <= 0 {
		return nil, fmt.Errorf("dt must be positive: %w", dynamo.ErrInvalidConfig)
	}
	if opts.Steps < 2 {
		opts.Steps = 2
	}
	defer func() {
		if rerr := tunable.SetParam(opts.Param, original); rerr != nil && err == nil {
			err = fmt.Errorf("restore %s: %w", opts.Param, rerr)
		}
	}()

	step := (opts.Max - opts.Min) / float64(opts.Steps-1)
	u := make(dynamo.Control, dyn.ControlDim())
	transient := int(opts.Transient / opts.Dt)
	record := int(opts.Record / opts.Dt)

	results = make([]BifurcationPoint, 0, opts.Steps)
	for i := 0; i < opts.Steps; i++ {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		param := opts.Min + float64(i)*step
		if err := tunable.SetParam(opts.Param, param); err != nil {
			return results, err
		}

		x := x0.Clone()
		t := 0.0
		for j := 0; j < transient; j++ {
			if j%checkEvery == 0 && ctx.Err() != nil {
				return results, ctx.Err()
			}
			x = integ.Step(dyn, x, u, t, opts.Dt)
			t += opts.Dt
		}

		point := BifurcationPoint{Param: param}
		prev2, prev1 := x[opts.Coord], x[opts.Coord]
		for j := 0; j < record && x.IsValid(); j++ {
			if j%checkEvery == 0 && ctx.Err() != nil {
				return results, ctx.Err()
			}
			x = integ.Step(dyn, x, u, t, opts.Dt)
			t += opts.Dt
			cur := x[opts.Coord]
			if j >= 1 && prev1 > prev2 && prev1 >= cur {
				point.Maxima = append(point.Maxima, prev1)
			}
			prev2, prev1 = prev1, cur
		}
		if !x.IsValid() {
			point.Maxima = nil
		}
		results = append(results, point)
	}
	return results, nil
}

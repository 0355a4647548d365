package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/entropic/internal/dynamo"
)

// Trace integrates a single trajectory and returns its samples, one per step
// plus the initial state. Integration stops with ErrDiverged at the first
// non-finite sample; the samples up to that point are returned with it.
func Trace(ctx context.Context, dyn dynamo.System, integ dynamo.Integrator, x0 dynamo.State, dt float64, steps int) ([]dynamo.State, error) {
	if steps < 0 {
		return nil, fmt.Errorf("negative step count %d: %w", steps, dynamo.ErrInvalidConfig)
	}
	out := make([]dynamo.State, 0, steps+1)
	u := make(dynamo.Control, dyn.ControlDim())
	x := x0.Clone()
	out = append(out, x)
	t := 0.0
	for i := 0; i < steps; i++ {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return out, ctx.Err()
		}
		x = integ.Step(dyn, x, u, t, dt)
		t += dt
		if !x.IsValid() {
			return out, fmt.Errorf("step %d: %w", i+1, ErrDiverged)
		}
		out = append(out, x)
	}
	return out, nil
}

// Column extracts component i of every sample.
func Column(samples []dynamo.State, i int) []float64 {
	col := make([]float64, len(samples))
	for j, s := range samples {
		if i < len(s) {
			col[j] = s[i]
		} else {
			col[j] = math.NaN()
		}
	}
	return col
}

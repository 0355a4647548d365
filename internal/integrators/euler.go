package integrators

import "github.com/san-kum/entropic/internal/dynamo"

// Euler is the explicit first-order integrator: next = x + dt*f(x).
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t float64, dt float64) dynamo.State {
	result := make(dynamo.State, len(x))
	e.StepInto(dyn, result, x, u, t, dt)
	return result
}

// StepInto writes the next state into dst. The derivative is evaluated before
// dst is written, so dst may alias x.
func (e *Euler) StepInto(dyn dynamo.System, dst, x dynamo.State, u dynamo.Control, t float64, dt float64) {
	dx := dyn.Derive(x, u, t)
	for i := range x {
		dst[i] = x[i] + dt*dx[i]
	}
}

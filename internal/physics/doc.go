// Package physics provides the chaotic attractor families driven by the
// visualizer.
//
// Every family implements [Attractor]: a pure derivative function over a
// shared [Params] record, an initial-condition [Box], a fixed display scale
// and the table of keyboard-tunable [Knob]s:
//
//   - [Lorenz]: butterfly attractor
//   - [Rossler]: single-band spiral
//   - [Aizawa]: torus-like attractor
//   - [ChenLee]: double-scroll variant
//
// [Derive] evaluates the active family without side effects. Coefficients are
// never clamped: tuned far enough, trajectories overflow to Inf or NaN, and
// that is expected physics rather than an error.
//
// [System] adapts a family plus its parameters to [dynamo.System] so the
// integrators and analysis routines can drive it:
//
//	sys := physics.NewSystem(physics.Aizawa, physics.DefaultParams())
//	next := integrators.NewEuler().Step(sys, dynamo.State{0.1, 0, 0}, nil, 0, 0.01)
package physics

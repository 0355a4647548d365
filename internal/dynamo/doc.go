// Package dynamo provides the numerical primitives shared by the attractor
// simulation.
//
// The package defines the small vocabulary the rest of the module builds on:
//
//   - [State]: vector representing a system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: numerical stepper interface
//   - [Configurable]: named, runtime-adjustable coefficients
//   - [ParallelFor]: index-range fan-out used by the per-particle tick
//
// # Example
//
//	sys := physics.NewSystem(physics.Lorenz, physics.DefaultParams())
//	next := integrators.NewEuler().Step(sys, dynamo.State{1, 1, 20}, nil, 0, 0.01)
//
// # Thread Safety
//
// Systems only read their parameters while deriving, so a single System may be
// shared by goroutines that step disjoint states. Mutating parameters while a
// step is in flight is a data race; callers serialize that themselves.
package dynamo

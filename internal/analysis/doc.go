// Package analysis characterises a single attractor trajectory away from the
// frame loop: the largest Lyapunov exponent, the power spectrum of one
// coordinate, and parameter sweeps for bifurcation diagrams.
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	sys := physics.NewSystem(physics.Lorenz, physics.DefaultParams())
//	lambda, err := analysis.LargestLyapunov(ctx, sys, integrators.NewEuler(), x0, analysis.DefaultLyapunovOptions())
//
// All functions check ctx between steps and return its error on cancellation.
package analysis

package sim

import (
	"log/slog"

	"github.com/san-kum/entropic/internal/physics"
)

const (
	ScreenWidth  = 800.0
	ScreenHeight = 600.0

	MaxTrailLength = 100

	DefaultDt            = 0.01
	DefaultTimeScale     = 1.0
	DefaultParticleCount = 50

	MinTimeScale  = 0.1
	MaxTimeScale  = 5.0
	MinParticles  = 5
	MaxParticles  = 200
	TimeScaleStep = 0.1
	ParticleStep  = 5

	// tickChunk is the smallest index range handed to one worker.
	tickChunk = 32
)

// Point is a screen-space coordinate in pixels.
type Point struct {
	X, Y float64
}

// Color is a straight-alpha RGBA colour with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

type Config struct {
	Variant       physics.Variant
	Params        *physics.Params
	Dt            float64
	TimeScale     float64
	ParticleCount int
	Trails        bool
	Overlay       bool
	// Seed 0 seeds from the clock.
	Seed int64
	// Workers <= 0 uses GOMAXPROCS; 1 keeps the tick on the calling goroutine.
	Workers       int
	Width, Height float64
	Logger        *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		Variant:       physics.Lorenz,
		Params:        physics.DefaultParams(),
		Dt:            DefaultDt,
		TimeScale:     DefaultTimeScale,
		ParticleCount: DefaultParticleCount,
		Trails:        true,
		Overlay:       true,
		Width:         ScreenWidth,
		Height:        ScreenHeight,
	}
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

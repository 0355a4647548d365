package sim

import (
	"math/rand"

	"github.com/san-kum/entropic/internal/physics"
)

type Particle struct {
	X, Y, Z float64
	Color   Color
	Trail   *Trail
}

// NewParticle creates a particle at (x, y, z) with an empty trail and a
// random light colour (each channel in [0.5, 1.0), opaque).
func NewParticle(x, y, z float64, rng *rand.Rand) *Particle {
	return newParticle(x, y, z, rng, new(Trail))
}

func newParticle(x, y, z float64, rng *rand.Rand, trail *Trail) *Particle {
	return &Particle{
		X: x, Y: y, Z: z,
		Color: Color{
			R: 0.5 + 0.5*rng.Float64(),
			G: 0.5 + 0.5*rng.Float64(),
			B: 0.5 + 0.5*rng.Float64(),
			A: 1.0,
		},
		Trail: trail,
	}
}

// Update records screen in the trail and then moves the particle to the new
// state. Values are not validated; NaN and Inf are stored as given.
func (p *Particle) Update(x, y, z float64, screen Point) {
	p.Trail.Push(screen)
	p.X, p.Y, p.Z = x, y, z
}

// ScreenPos projects the current state onto the default 800x600 canvas.
func (p *Particle) ScreenPos(v physics.Variant) Point {
	return Project(v, p.X, p.Y, Point{ScreenWidth / 2, ScreenHeight / 2})
}

// Project maps a state's (x, y) to screen space around origin using the
// family's scale factor.
func Project(v physics.Variant, x, y float64, origin Point) Point {
	s := v.Scale()
	return Point{X: origin.X + x*s, Y: origin.Y + y*s}
}

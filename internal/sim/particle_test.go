package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/entropic/internal/physics"
)

func TestNewParticleColor(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		p := NewParticle(0, 0, 0, rng)
		for _, c := range []float64{p.Color.R, p.Color.G, p.Color.B} {
			if c < 0.5 || c >= 1.0 {
				t.Fatalf("channel %v outside [0.5, 1.0)", c)
			}
		}
		if p.Color.A != 1.0 {
			t.Fatalf("alpha = %v, want 1", p.Color.A)
		}
		if p.Trail.Len() != 0 {
			t.Fatal("new particle has a non-empty trail")
		}
	}
}

func TestParticleUpdate(t *testing.T) {
	p := NewParticle(1, 2, 3, rand.New(rand.NewSource(1)))
	color := p.Color

	p.Update(4, 5, 6, Point{10, 20})
	if p.X != 4 || p.Y != 5 || p.Z != 6 {
		t.Errorf("state = (%v, %v, %v), want (4, 5, 6)", p.X, p.Y, p.Z)
	}
	if p.Trail.Len() != 2 {
		t.Errorf("trail len = %d, want 2", p.Trail.Len())
	}
	if p.Color != color {
		t.Error("colour changed on update")
	}
}

func TestParticleUpdateAcceptsNonFinite(t *testing.T) {
	p := NewParticle(0, 0, 0, rand.New(rand.NewSource(1)))
	p.Update(math.NaN(), math.Inf(1), math.Inf(-1), Point{math.NaN(), 0})
	if !math.IsNaN(p.X) || !math.IsInf(p.Y, 1) || !math.IsInf(p.Z, -1) {
		t.Errorf("non-finite state not stored: %v %v %v", p.X, p.Y, p.Z)
	}
}

func TestParticleScreenPos(t *testing.T) {
	tests := []struct {
		v    physics.Variant
		want Point
	}{
		{physics.Lorenz, Point{400 + 10, 300 - 20}},
		{physics.Rossler, Point{400 + 30, 300 - 60}},
		{physics.Aizawa, Point{400 + 100, 300 - 200}},
		{physics.ChenLee, Point{400 + 30, 300 - 60}},
	}

	p := NewParticle(1, -2, 50, rand.New(rand.NewSource(1)))
	p.Trail.Push(Point{-1, -1})
	for _, tt := range tests {
		if got := p.ScreenPos(tt.v); got != tt.want {
			t.Errorf("%s: ScreenPos = %v, want %v", tt.v, got, tt.want)
		}
	}
}

package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/entropic/internal/dynamo"
)

type decay struct{}

func (decay) Derive(x dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	return dynamo.State{-x[0]}
}
func (decay) StateDim() int   { return 1 }
func (decay) ControlDim() int { return 0 }

type harmonic struct{}

func (harmonic) Derive(x dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	return dynamo.State{x[1], -x[0]}
}
func (harmonic) StateDim() int   { return 2 }
func (harmonic) ControlDim() int { return 0 }

func TestEulerSingleStep(t *testing.T) {
	got := NewEuler().Step(harmonic{}, dynamo.State{1, 0}, nil, 0, 0.1)
	if got[0] != 1 || got[1] != -0.1 {
		t.Errorf("Step = %v, want [1 -0.1]", got)
	}
}

func TestEulerDecayConverges(t *testing.T) {
	integ := NewEuler()
	x := dynamo.State{1.0}
	dt := 0.001
	for i := 0; i < 1000; i++ {
		x = integ.Step(decay{}, x, nil, float64(i)*dt, dt)
	}

	expected := math.Exp(-1.0)
	if math.Abs(x[0]-expected) > 1e-3 {
		t.Errorf("expected ~%.6f, got %.6f", expected, x[0])
	}
}

func TestEulerStepIntoAliasing(t *testing.T) {
	integ := NewEuler()
	x := dynamo.State{1, 0}
	want := integ.Step(harmonic{}, x, nil, 0, 0.5)

	integ.StepInto(harmonic{}, x, x, nil, 0, 0.5)
	if x[0] != want[0] || x[1] != want[1] {
		t.Errorf("in-place StepInto = %v, want %v", x, want)
	}
}

package physics

import "github.com/san-kum/entropic/internal/dynamo"

// System binds a family to a parameter record as a [dynamo.System]. It reads
// Params on every call, so tuning is visible to the next step.
type System struct {
	Variant Variant
	Params  *Params
}

func NewSystem(v Variant, p *Params) *System {
	return &System{Variant: v, Params: p}
}

func (s *System) StateDim() int   { return 3 }
func (s *System) ControlDim() int { return 0 }

func (s *System) Derive(x dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	dx, dy, dz := Derive(s.Variant, x[0], x[1], x[2], s.Params)
	return dynamo.State{dx, dy, dz}
}

func (s *System) GetParams() map[string]float64 { return s.Params.GetParams() }

func (s *System) SetParam(name string, value float64) error {
	return s.Params.SetParam(name, value)
}

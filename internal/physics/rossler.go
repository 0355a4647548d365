package physics

type rossler struct{}

func (rossler) Name() string   { return "Rossler" }
func (rossler) Scale() float64 { return 30.0 }
func (rossler) InitBox() Box   { return CubeBox(1) }

func (rossler) Knobs() []Knob {
	return []Knob{
		{Param: "rossler.a", Symbol: "a", Step: 0.01},
		{Param: "rossler.b", Symbol: "b", Step: 0.01},
		{Param: "rossler.c", Symbol: "c", Step: 0.01},
	}
}

// Derive calculates the Rossler attractor derivatives.
func (rossler) Derive(x, y, z float64, p *Params) (float64, float64, float64) {
	return -y - z, x + p.A*y, p.B + z*(x-p.C)
}

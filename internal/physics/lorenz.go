package physics

type lorenz struct{}

func (lorenz) Name() string   { return "Lorenz" }
func (lorenz) Scale() float64 { return 10.0 }

func (lorenz) InitBox() Box {
	return Box{Min: [3]float64{-1, -1, 15}, Max: [3]float64{1, 1, 25}}
}

func (lorenz) Knobs() []Knob {
	return []Knob{
		{Param: "lorenz.sigma", Symbol: "σ", Step: 0.1},
		{Param: "lorenz.rho", Symbol: "ρ", Step: 0.1},
		{Param: "lorenz.beta", Symbol: "β", Step: 0.01},
	}
}

// Derive calculates the Lorenz attractor derivatives.
func (lorenz) Derive(x, y, z float64, p *Params) (float64, float64, float64) {
	return p.Sigma * (y - x), x*(p.Rho-z) - y, x*y - p.Beta*z
}

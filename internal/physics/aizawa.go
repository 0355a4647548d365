package physics

type aizawa struct{}

func (aizawa) Name() string   { return "Aizawa" }
func (aizawa) Scale() float64 { return 100.0 }
func (aizawa) InitBox() Box   { return CubeBox(0.1) }

func (aizawa) Knobs() []Knob {
	return []Knob{
		{Param: "aizawa.alpha", Symbol: "α", Step: 0.01},
		{Param: "aizawa.gamma", Symbol: "γ", Step: 0.01},
		{Param: "aizawa.delta", Symbol: "δ", Step: 0.01},
		{Param: "aizawa.epsilon", Symbol: "ε", Step: 0.01},
	}
}

// Readouts shows AizawaBeta, which has no key binding and is not shared with
// Lorenz beta.
func (aizawa) Readouts() []Knob {
	return []Knob{{Param: "aizawa.beta", Symbol: "BETA"}}
}

// Derive calculates the Aizawa attractor derivatives. The δzx³ coupling term
// reuses δ rather than a separate ζ coefficient.
func (aizawa) Derive(x, y, z float64, p *Params) (float64, float64, float64) {
	zg := z - p.Gamma
	dx := zg*x - p.Delta*y
	dy := p.Delta*x + zg*y
	dz := p.Alpha + p.AizawaBeta*z - z*z*z/3.0 - (x*x+y*y)*(1.0+p.Epsilon*z) + p.Delta*z*x*x*x
	return dx, dy, dz
}

package physics

type chenLee struct{}

func (chenLee) Name() string   { return "Chen-Lee" }
func (chenLee) Scale() float64 { return 30.0 }
func (chenLee) InitBox() Box   { return CubeBox(1) }

func (chenLee) Knobs() []Knob {
	return []Knob{
		{Param: "chenlee.p", Symbol: "p", Step: 0.1},
		{Param: "chenlee.q", Symbol: "q", Step: 0.1},
		{Param: "chenlee.r", Symbol: "r", Step: 0.01},
	}
}

// Derive calculates the Chen-Lee attractor derivatives.
func (chenLee) Derive(x, y, z float64, p *Params) (float64, float64, float64) {
	return p.P*x - y*z, p.Q*y + x*z, p.R*z + x*y/3.0
}

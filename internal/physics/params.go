package physics

import (
	"fmt"
	"sort"

	"github.com/san-kum/entropic/internal/dynamo"
)

// Params holds the coefficients of all four families at once. Only the active
// family's fields are read by a tick; the others keep their tuned values
// across variant switches.
type Params struct {
	// Lorenz
	Sigma, Rho, Beta float64
	// Rossler
	A, B, C float64
	// Aizawa. AizawaBeta is its own coefficient (default 0.7); the Lorenz
	// E/D keys move Beta only.
	Alpha, Gamma, Delta, Epsilon, AizawaBeta float64
	// Chen-Lee
	P, Q, R float64
}

func DefaultParams() *Params {
	return &Params{
		Sigma: 10.0, Rho: 28.0, Beta: 8.0 / 3.0,
		A: 0.2, B: 0.2, C: 5.7,
		Alpha: 0.95, Gamma: 0.6, Delta: 3.5, Epsilon: 0.25, AizawaBeta: 0.7,
		P: 5.0, Q: -10.0, R: -0.38,
	}
}

type paramField struct {
	name  string
	field func(*Params) *float64
}

var paramFields = []paramField{
	{"lorenz.sigma", func(p *Params) *float64 { return &p.Sigma }},
	{"lorenz.rho", func(p *Params) *float64 { return &p.Rho }},
	{"lorenz.beta", func(p *Params) *float64 { return &p.Beta }},
	{"rossler.a", func(p *Params) *float64 { return &p.A }},
	{"rossler.b", func(p *Params) *float64 { return &p.B }},
	{"rossler.c", func(p *Params) *float64 { return &p.C }},
	{"aizawa.alpha", func(p *Params) *float64 { return &p.Alpha }},
	{"aizawa.gamma", func(p *Params) *float64 { return &p.Gamma }},
	{"aizawa.delta", func(p *Params) *float64 { return &p.Delta }},
	{"aizawa.epsilon", func(p *Params) *float64 { return &p.Epsilon }},
	{"aizawa.beta", func(p *Params) *float64 { return &p.AizawaBeta }},
	{"chenlee.p", func(p *Params) *float64 { return &p.P }},
	{"chenlee.q", func(p *Params) *float64 { return &p.Q }},
	{"chenlee.r", func(p *Params) *float64 { return &p.R }},
}

func lookupField(name string) (paramField, bool) {
	for _, f := range paramFields {
		if f.name == name {
			return f, true
		}
	}
	return paramField{}, false
}

// ParamNames returns every dotted coefficient name in sorted order.
func ParamNames() []string {
	names := make([]string, len(paramFields))
	for i, f := range paramFields {
		names[i] = f.name
	}
	sort.Strings(names)
	return names
}

func (p *Params) GetParams() map[string]float64 {
	out := make(map[string]float64, len(paramFields))
	for _, f := range paramFields {
		out[f.name] = *f.field(p)
	}
	return out
}

func (p *Params) Get(name string) (float64, error) {
	f, ok := lookupField(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", dynamo.ErrUnknownParam, name)
	}
	return *f.field(p), nil
}

func (p *Params) SetParam(name string, value float64) error {
	f, ok := lookupField(name)
	if !ok {
		return fmt.Errorf("%w: %q", dynamo.ErrUnknownParam, name)
	}
	*f.field(p) = value
	return nil
}

// Apply sets every entry of values, stopping at the first unknown name.
func (p *Params) Apply(values map[string]float64) error {
	names := make([]string, 0, len(values))
	for k := range values {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := p.SetParam(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

func (p *Params) Clone() *Params {
	c := *p
	return &c
}

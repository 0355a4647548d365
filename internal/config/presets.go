package config

import (
	"sort"

	"github.com/san-kum/entropic/internal/physics"
)

// Preset is a named parameter set for one family.
type Preset struct {
	Description string
	Params      map[string]float64
	TimeScale   float64
}

var Presets = map[physics.Variant]map[string]*Preset{
	physics.Lorenz: {
		"classic": {
			Description: "Butterfly at σ=10, ρ=28, β=8/3",
			Params:      map[string]float64{"lorenz.sigma": 10, "lorenz.rho": 28, "lorenz.beta": 8.0 / 3.0},
		},
		"periodic": {
			Description: "Stable periodic orbit at ρ=160",
			Params:      map[string]float64{"lorenz.sigma": 10, "lorenz.rho": 160, "lorenz.beta": 8.0 / 3.0},
			TimeScale:   0.5,
		},
		"transient": {
			Description: "Transient chaos settling onto a fixed point at ρ=21",
			Params:      map[string]float64{"lorenz.sigma": 10, "lorenz.rho": 21, "lorenz.beta": 8.0 / 3.0},
		},
	},
	physics.Rossler: {
		"classic": {
			Description: "Spiral attractor at a=b=0.2, c=5.7",
			Params:      map[string]float64{"rossler.a": 0.2, "rossler.b": 0.2, "rossler.c": 5.7},
		},
		"funnel": {
			Description: "Funnel attractor at a=0.3, c=5.7",
			Params:      map[string]float64{"rossler.a": 0.3, "rossler.b": 0.2, "rossler.c": 5.7},
		},
		"periodic": {
			Description: "Period-1 limit cycle at c=2.5",
			Params:      map[string]float64{"rossler.a": 0.2, "rossler.b": 0.2, "rossler.c": 2.5},
		},
	},
	physics.Aizawa: {
		"classic": {
			Description: "Sphere with a tube at α=0.95, γ=0.6, δ=3.5, ε=0.25",
			Params: map[string]float64{
				"aizawa.alpha": 0.95, "aizawa.gamma": 0.6, "aizawa.delta": 3.5,
				"aizawa.epsilon": 0.25, "aizawa.beta": 0.7,
			},
		},
	},
	physics.ChenLee: {
		"classic": {
			Description: "Double scroll at p=5, q=-10, r=-0.38",
			Params:      map[string]float64{"chenlee.p": 5, "chenlee.q": -10, "chenlee.r": -0.38},
		},
	},
}

// GetPreset returns the named preset of v, or nil.
func GetPreset(v physics.Variant, name string) *Preset {
	if m, ok := Presets[v]; ok {
		return m[name]
	}
	return nil
}

// ListPresets returns the preset names of v in order, or nil.
func ListPresets(v physics.Variant) []string {
	m, ok := Presets[v]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset's parameters and time scale onto c.
func (p *Preset) Apply(c *Config) {
	if c.Params == nil {
		c.Params = make(map[string]float64, len(p.Params))
	}
	for k, v := range p.Params {
		c.Params[k] = v
	}
	if p.TimeScale > 0 {
		c.TimeScale = p.TimeScale
	}
}

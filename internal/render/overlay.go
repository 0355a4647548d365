package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/entropic/internal/input"
	"github.com/san-kum/entropic/internal/physics"
	"github.com/san-kum/entropic/internal/sim"
)

// OverlayLines returns the status text shown in the top-left corner.
func OverlayLines(s *sim.Simulator) []string {
	trails := "Disabled"
	if s.TrailsEnabled() {
		trails = "Enabled"
	}
	return []string{
		fmt.Sprintf("System: %s (Press 1-4 to change)", s.Variant()),
		ParamLine(s.Variant(), s.Params()),
		fmt.Sprintf("Time Scale: %.2fx (Z/X to adjust)", s.TimeScale()),
		fmt.Sprintf("Particles: %d (C/V to adjust)", s.ParticleCount()),
		fmt.Sprintf("Trails: %s (T to toggle)", trails),
		"Press H to hide UI, R to reset particles, ESC to quit",
	}
}

// ParamLine formats the active family's knobs with their key bindings, e.g.
// "Parameters (Q/A: σ=10.00, W/S: ρ=28.00, E/D: β=2.67)".
func ParamLine(v physics.Variant, p *physics.Params) string {
	a := v.Attractor()
	knobs := a.Knobs()
	parts := make([]string, len(knobs))
	for i, k := range knobs {
		parts[i] = fmt.Sprintf("%s: %s=%.2f", input.KnobLabel(i), k.Symbol, k.Value(p))
	}
	line := "Parameters (" + strings.Join(parts, ", ") + ")"

	if r, ok := a.(physics.Readouts); ok {
		for _, k := range r.Readouts() {
			line += fmt.Sprintf(" (%s: %.2f)", k.Symbol, k.Value(p))
		}
	}
	return line
}

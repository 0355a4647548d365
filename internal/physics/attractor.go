package physics

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/san-kum/entropic/internal/dynamo"
)

// Variant selects one attractor family.
type Variant int

const (
	Lorenz Variant = iota
	Rossler
	Aizawa
	ChenLee
)

// Variants lists every family in key order (1-4).
var Variants = []Variant{Lorenz, Rossler, Aizawa, ChenLee}

// Attractor is one family's equations plus the display metadata that goes
// with them.
type Attractor interface {
	Name() string
	Derive(x, y, z float64, p *Params) (dx, dy, dz float64)
	InitBox() Box
	Scale() float64
	Knobs() []Knob
}

// Readouts is implemented by families that show coefficients without a key
// binding in the overlay.
type Readouts interface {
	Readouts() []Knob
}

// Knob is a keyboard-tunable coefficient adjusted by a flat Step.
type Knob struct {
	Param  string
	Symbol string
	Step   float64
}

// Value reads the knob's coefficient from p.
func (k Knob) Value(p *Params) float64 {
	f, _ := lookupField(k.Param)
	return *f.field(p)
}

// Nudge adds dir*Step to the knob's coefficient. No bounds are applied.
func (k Knob) Nudge(p *Params, dir float64) {
	f, _ := lookupField(k.Param)
	*f.field(p) += dir * k.Step
}

// Box is an axis-aligned sampling region for initial conditions.
type Box struct {
	Min, Max [3]float64
}

func CubeBox(h float64) Box {
	return Box{Min: [3]float64{-h, -h, -h}, Max: [3]float64{h, h, h}}
}

// Sample draws a point uniformly from the box.
func (b Box) Sample(rng *rand.Rand) (x, y, z float64) {
	x = b.Min[0] + rng.Float64()*(b.Max[0]-b.Min[0])
	y = b.Min[1] + rng.Float64()*(b.Max[1]-b.Min[1])
	z = b.Min[2] + rng.Float64()*(b.Max[2]-b.Min[2])
	return x, y, z
}

func (b Box) Contains(x, y, z float64) bool {
	p := [3]float64{x, y, z}
	for i := range p {
		if p[i] < b.Min[i] || p[i] > b.Max[i] {
			return false
		}
	}
	return true
}

var attractors = [...]Attractor{
	Lorenz:  lorenz{},
	Rossler: rossler{},
	Aizawa:  aizawa{},
	ChenLee: chenLee{},
}

var slugs = [...]string{
	Lorenz:  "lorenz",
	Rossler: "rossler",
	Aizawa:  "aizawa",
	ChenLee: "chenlee",
}

func (v Variant) Valid() bool { return v >= Lorenz && v <= ChenLee }

// Attractor returns the family implementation. v must be valid.
func (v Variant) Attractor() Attractor { return attractors[v] }

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return attractors[v].Name()
}

// Slug is the lowercase identifier used on the command line and in config files.
func (v Variant) Slug() string {
	if !v.Valid() {
		return ""
	}
	return slugs[v]
}

func (v Variant) Scale() float64 { return attractors[v].Scale() }
func (v Variant) InitBox() Box   { return attractors[v].InitBox() }

// ParseVariant accepts a slug, a display name or a 1-based key digit.
func ParseVariant(s string) (Variant, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "", "_", "", "ö", "o").Replace(norm)
	for _, v := range Variants {
		if norm == slugs[v] || norm == fmt.Sprint(int(v)+1) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", dynamo.ErrUnknownVariant, s)
}

// Derive evaluates the active family's vector field at (x, y, z).
func Derive(v Variant, x, y, z float64, p *Params) (dx, dy, dz float64) {
	return attractors[v].Derive(x, y, z, p)
}

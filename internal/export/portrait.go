package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/san-kum/entropic/internal/render"
	"github.com/san-kum/entropic/internal/sim"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plane selects the pair of state coordinates a portrait plots.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
)

func (p Plane) axes() (string, string) {
	switch p {
	case PlaneXZ:
		return "x", "z"
	case PlaneYZ:
		return "y", "z"
	}
	return "x", "y"
}

func (p Plane) pick(x, y, z float64) (float64, float64) {
	switch p {
	case PlaneXZ:
		return x, z
	case PlaneYZ:
		return y, z
	}
	return x, y
}

// Trajectories accumulates the state-space path of every particle in a
// simulator, in one plane. A reseed that changes the population restarts it.
type Trajectories struct {
	plane  Plane
	paths  []plotter.XYs
	colors []color.RGBA
}

func NewTrajectories(plane Plane) *Trajectories {
	return &Trajectories{plane: plane}
}

// Record appends each particle's current position. Non-finite positions are
// skipped.
func (t *Trajectories) Record(s *sim.Simulator) {
	ps := s.Particles()
	if len(ps) != len(t.paths) {
		t.paths = make([]plotter.XYs, len(ps))
		t.colors = make([]color.RGBA, len(ps))
	}
	for i, p := range ps {
		t.colors[i] = render.ToRGBA(p.Color)
		a, b := t.plane.pick(p.X, p.Y, p.Z)
		if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
			continue
		}
		t.paths[i] = append(t.paths[i], plotter.XY{X: a, Y: b})
	}
}

// Len is the number of particles being tracked.
func (t *Trajectories) Len() int { return len(t.paths) }

// Points is the number of samples recorded for particle i.
func (t *Trajectories) Points(i int) int { return len(t.paths[i]) }

// Portrait builds a phase portrait with one line per particle.
func (t *Trajectories) Portrait(title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text, p.Y.Label.Text = t.plane.axes()
	p.BackgroundColor = render.ToRGBA(render.Background)
	for _, axis := range []*plot.Axis{&p.X, &p.Y} {
		axis.LineStyle.Color = color.White
		axis.Label.TextStyle.Color = color.White
		axis.Tick.LineStyle.Color = color.White
		axis.Tick.Label.Color = color.White
	}
	p.Title.TextStyle.Color = color.White

	for i, path := range t.paths {
		if len(path) < 2 {
			continue
		}
		line, err := plotter.NewLine(path)
		if err != nil {
			return nil, fmt.Errorf("particle %d: %w", i, err)
		}
		line.LineStyle.Width = vg.Points(0.5)
		line.LineStyle.Color = t.colors[i]
		p.Add(line)
	}
	return p, nil
}

// WritePortrait renders the portrait to w in the given format ("png", "svg",
// "pdf", ...).
func (t *Trajectories) WritePortrait(w io.Writer, title, format string, width, height vg.Length) error {
	p, err := t.Portrait(title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("portrait writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write portrait: %w", err)
	}
	return nil
}

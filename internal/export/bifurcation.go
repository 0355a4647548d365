package export

import (
	"fmt"
	"image/color"
	"io"

	"github.com/san-kum/entropic/internal/analysis"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// WriteBifurcation plots the maxima of a parameter sweep as a scatter of
// (parameter, maximum) points.
func WriteBifurcation(w io.Writer, points []analysis.BifurcationPoint, title, xLabel, yLabel, format string, width, height vg.Length) error {
	var xys plotter.XYs
	for _, p := range points {
		for _, m := range p.Maxima {
			xys = append(xys, plotter.XY{X: p.Param, Y: m})
		}
	}
	if len(xys) == 0 {
		return fmt.Errorf("no maxima to plot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	sc.GlyphStyle.Radius = vg.Points(0.4)
	sc.GlyphStyle.Color = color.Black
	p.Add(sc)

	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("bifurcation writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write bifurcation: %w", err)
	}
	return nil
}

package render

import (
	"log/slog"

	"github.com/san-kum/entropic/internal/sim"
)

// Renderer draws simulator frames. It keeps a scratch slice for trail points
// and is not safe for concurrent use.
type Renderer struct {
	logger  *slog.Logger
	scratch []Point
}

func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger, scratch: make([]Point, 0, sim.MaxTrailLength)}
}

// Draw renders trails, particles and the overlay. A failing primitive is
// logged and skipped; the rest of the frame is still drawn.
func (r *Renderer) Draw(c Canvas, s *sim.Simulator) {
	c.Clear(Background)

	if s.TrailsEnabled() {
		for i, p := range s.Particles() {
			if p.Trail.Len() < 2 {
				continue
			}
			r.scratch = p.Trail.AppendTo(r.scratch[:0])
			if err := c.Polyline(r.scratch, TrailWidth, p.Color); err != nil {
				r.logger.Warn("failed to draw trail", "particle", i, "points", len(r.scratch), "err", err)
			}
		}
	}

	for i, p := range s.Particles() {
		if err := c.FillCircle(s.ScreenPos(p), ParticleRadius, p.Color); err != nil {
			r.logger.Warn("failed to draw particle", "particle", i, "err", err)
		}
	}

	if s.OverlayEnabled() {
		for i, line := range OverlayLines(s) {
			at := Point{X: OverlayX, Y: OverlayY + float64(i)*LineHeight}
			if err := c.Text(line, at, TextSize, White); err != nil {
				r.logger.Warn("failed to draw overlay", "line", i, "err", err)
			}
		}
	}
}

package export

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/san-kum/entropic/internal/render"
	"github.com/san-kum/entropic/internal/sim"
)

// SVG is a render.Canvas that accumulates one frame as SVG markup.
type SVG struct {
	width, height float64
	bg            render.Color
	body          strings.Builder
}

func NewSVG(width, height float64) *SVG {
	return &SVG{width: width, height: height, bg: render.Background}
}

func (c *SVG) Size() (float64, float64) { return c.width, c.height }

func (c *SVG) Clear(bg render.Color) {
	c.bg = bg
	c.body.Reset()
}

func (c *SVG) FillCircle(center render.Point, radius float64, col render.Color) error {
	if !render.Finite(center) {
		return fmt.Errorf("circle at non-finite position (%v, %v)", center.X, center.Y)
	}
	fmt.Fprintf(&c.body, `<circle cx="%.2f" cy="%.2f" r="%.1f" fill="%s"/>`+"\n",
		center.X, center.Y, radius, hex(col))
	return nil
}

func (c *SVG) Polyline(pts []render.Point, width float64, col render.Color) error {
	if !render.Finite(pts...) {
		return fmt.Errorf("polyline of %d points has a non-finite vertex", len(pts))
	}
	c.body.WriteString(`<polyline fill="none" points="`)
	for i, p := range pts {
		if i > 0 {
			c.body.WriteByte(' ')
		}
		fmt.Fprintf(&c.body, "%.2f,%.2f", p.X, p.Y)
	}
	fmt.Fprintf(&c.body, `" stroke="%s" stroke-width="%.1f"/>`+"\n", hex(col), width)
	return nil
}

func (c *SVG) Text(s string, at render.Point, size float64, col render.Color) error {
	fmt.Fprintf(&c.body, `<text x="%.1f" y="%.1f" font-family="monospace" font-size="%.0f" dominant-baseline="hanging" fill="%s">%s</text>`+"\n",
		at.X, at.Y, size, hex(col), escape(s))
	return nil
}

// WriteTo emits the complete document.
func (c *SVG) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, c.width, c.height, c.width, c.height, hex(c.bg))
	sb.WriteString(c.body.String())
	sb.WriteString("</svg>\n")
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// WriteFrame renders the simulator's current frame as SVG.
func WriteFrame(w io.Writer, s *sim.Simulator, logger *slog.Logger) error {
	width, height := s.Size()
	c := NewSVG(width, height)
	render.NewRenderer(logger).Draw(c, s)
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func hex(c render.Color) string {
	rgba := render.ToRGBA(c)
	if rgba.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", rgba.R, rgba.G, rgba.B, float64(rgba.A)/255)
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return xmlEscaper.Replace(s) }

// Package render draws a simulator frame through a backend-neutral [Canvas].
//
// A Canvas exposes the three primitives the visualizer needs (filled circle,
// polyline, text). The raylib, ebiten, terminal and SVG backends each
// implement it, and [Renderer.Draw] issues the same calls to all of them.
package render

import (
	"image/color"
	"math"

	"github.com/san-kum/entropic/internal/sim"
)

type (
	Point = sim.Point
	Color = sim.Color
)

// Canvas is the drawing surface a backend provides for one frame.
type Canvas interface {
	Size() (w, h float64)
	Clear(bg Color)
	FillCircle(center Point, radius float64, col Color) error
	Polyline(pts []Point, width float64, col Color) error
	Text(s string, at Point, size float64, col Color) error
}

var (
	Background = Color{R: 0.1, G: 0.1, B: 0.15, A: 1.0}
	White      = Color{R: 1, G: 1, B: 1, A: 1}
)

const (
	ParticleRadius = 2.0
	TrailWidth     = 1.0
	TextSize       = 16.0
	OverlayX       = 20.0
	OverlayY       = 20.0
	LineHeight     = 20.0
)

// ToRGBA converts a unit-range colour to 8-bit channels, clamping out-of-range
// values.
func ToRGBA(c Color) color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

// Finite reports whether every point has finite coordinates.
func Finite(pts ...Point) bool {
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/entropic/internal/render"
)

// canvas draws onto the current raylib frame. It must only be used between
// rl.BeginDrawing and rl.EndDrawing.
type canvas struct {
	width, height float64
	font          rl.Font
	strip         []rl.Vector2
}

func newCanvas(width, height float64, font rl.Font) *canvas {
	return &canvas{width: width, height: height, font: font}
}

func (c *canvas) Size() (float64, float64) { return c.width, c.height }

func (c *canvas) Clear(bg render.Color) {
	rl.ClearBackground(render.ToRGBA(bg))
}

func (c *canvas) FillCircle(center render.Point, radius float64, col render.Color) error {
	if !render.Finite(center) {
		return fmt.Errorf("circle at non-finite position (%v, %v)", center.X, center.Y)
	}
	rl.DrawCircleV(vec(center), float32(radius), render.ToRGBA(col))
	return nil
}

func (c *canvas) Polyline(pts []render.Point, width float64, col render.Color) error {
	if !render.Finite(pts...) {
		return fmt.Errorf("polyline of %d points has a non-finite vertex", len(pts))
	}
	c.strip = c.strip[:0]
	for _, p := range pts {
		c.strip = append(c.strip, vec(p))
	}
	rgba := render.ToRGBA(col)
	if width <= 1 {
		rl.DrawLineStrip(c.strip, rgba)
		return nil
	}
	for i := 1; i < len(c.strip); i++ {
		rl.DrawLineEx(c.strip[i-1], c.strip[i], float32(width), rgba)
	}
	return nil
}

func (c *canvas) Text(s string, at render.Point, size float64, col render.Color) error {
	rl.DrawTextEx(c.font, s, vec(at), float32(size), 1, render.ToRGBA(col))
	return nil
}

func vec(p render.Point) rl.Vector2 {
	return rl.NewVector2(float32(p.X), float32(p.Y))
}

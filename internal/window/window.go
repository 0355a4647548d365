// Package window is the pure-Go desktop backend built on ebiten. It needs no
// C toolchain for the draw calls, unlike the raylib backend in package gui.
package window

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/san-kum/entropic/internal/input"
	"github.com/san-kum/entropic/internal/render"
	"github.com/san-kum/entropic/internal/sim"
)

type Options struct {
	Title  string
	FPS    int
	Logger *slog.Logger
}

var keyMap = map[input.Key]ebiten.Key{
	input.Key1:         ebiten.KeyDigit1,
	input.Key2:         ebiten.KeyDigit2,
	input.Key3:         ebiten.KeyDigit3,
	input.Key4:         ebiten.KeyDigit4,
	input.KeyQ:         ebiten.KeyQ,
	input.KeyA:         ebiten.KeyA,
	input.KeyW:         ebiten.KeyW,
	input.KeyS:         ebiten.KeyS,
	input.KeyE:         ebiten.KeyE,
	input.KeyD:         ebiten.KeyD,
	input.KeyR:         ebiten.KeyR,
	input.KeyF:         ebiten.KeyF,
	input.KeyBackspace: ebiten.KeyBackspace,
	input.KeyZ:         ebiten.KeyZ,
	input.KeyX:         ebiten.KeyX,
	input.KeyC:         ebiten.KeyC,
	input.KeyV:         ebiten.KeyV,
	input.KeyT:         ebiten.KeyT,
	input.KeyH:         ebiten.KeyH,
	input.KeyEscape:    ebiten.KeyEscape,
}

// Run opens a window and drives s until ESC, the window is closed or ctx is
// cancelled.
func Run(ctx context.Context, s *sim.Simulator, opts Options) error {
	if opts.Title == "" {
		opts.Title = "entropic"
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	w, h := s.Size()
	g := &game{
		ctx:      ctx,
		sim:      s,
		renderer: render.NewRenderer(opts.Logger),
		canvas:   &canvas{width: w, height: h},
	}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetTPS(opts.FPS)

	opts.Logger.Info("window opened", "backend", "ebiten", "width", int(w), "height", int(h))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}

type game struct {
	ctx      context.Context
	sim      *sim.Simulator
	renderer *render.Renderer
	canvas   *canvas
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	for _, k := range input.Keys {
		if !inpututil.IsKeyJustPressed(keyMap[k]) {
			continue
		}
		if input.Apply(g.sim, k) == input.Quit {
			return ebiten.Termination
		}
	}
	g.sim.Tick()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.renderer.Draw(g.canvas, g.sim)
	g.canvas.dst = nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.canvas.width), int(g.canvas.height)
}

// canvas draws onto the screen image handed to Draw.
type canvas struct {
	dst           *ebiten.Image
	width, height float64
}

func (c *canvas) Size() (float64, float64) { return c.width, c.height }

func (c *canvas) Clear(bg render.Color) {
	c.dst.Fill(render.ToRGBA(bg))
}

func (c *canvas) FillCircle(center render.Point, radius float64, col render.Color) error {
	if !render.Finite(center) {
		return fmt.Errorf("circle at non-finite position (%v, %v)", center.X, center.Y)
	}
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), render.ToRGBA(col), true)
	return nil
}

func (c *canvas) Polyline(pts []render.Point, width float64, col render.Color) error {
	if !render.Finite(pts...) {
		return fmt.Errorf("polyline of %d points has a non-finite vertex", len(pts))
	}
	rgba := render.ToRGBA(col)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), rgba, true)
	}
	return nil
}

// Text uses ebiten's fixed-size debug font; size and colour are ignored.
func (c *canvas) Text(s string, at render.Point, size float64, col render.Color) error {
	ebitenutil.DebugPrintAt(c.dst, s, int(at.X), int(at.Y))
	return nil
}

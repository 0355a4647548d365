// Package gui is the desktop window backend built on raylib.
package gui

import (
	"context"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/entropic/internal/input"
	"github.com/san-kum/entropic/internal/render"
	"github.com/san-kum/entropic/internal/sim"
)

const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

// Options configures the window.
type Options struct {
	Title  string
	Width  int
	Height int
	FPS    int
	Logger *slog.Logger
}

// keyMap binds raylib key codes to input keys.
var keyMap = map[input.Key]int32{
	input.Key1:         rl.KeyOne,
	input.Key2:         rl.KeyTwo,
	input.Key3:         rl.KeyThree,
	input.Key4:         rl.KeyFour,
	input.KeyQ:         rl.KeyQ,
	input.KeyA:         rl.KeyA,
	input.KeyW:         rl.KeyW,
	input.KeyS:         rl.KeyS,
	input.KeyE:         rl.KeyE,
	input.KeyD:         rl.KeyD,
	input.KeyR:         rl.KeyR,
	input.KeyF:         rl.KeyF,
	input.KeyBackspace: rl.KeyBackspace,
	input.KeyZ:         rl.KeyZ,
	input.KeyX:         rl.KeyX,
	input.KeyC:         rl.KeyC,
	input.KeyV:         rl.KeyV,
	input.KeyT:         rl.KeyT,
	input.KeyH:         rl.KeyH,
	input.KeyEscape:    rl.KeyEscape,
}

type App struct {
	sim      *sim.Simulator
	renderer *render.Renderer
	canvas   *canvas
	logger   *slog.Logger
}

// initWindow opens the window and disables raylib's own exit key so ESC goes
// through the key bindings.
func initWindow(opts Options) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// Run opens a window and drives s until ESC, the window is closed or ctx is
// cancelled.
func Run(ctx context.Context, s *sim.Simulator, opts Options) error {
	opts = withDefaults(opts)
	initWindow(opts)
	defer rl.CloseWindow()

	w, h := s.Size()
	app := &App{
		sim:      s,
		renderer: render.NewRenderer(opts.Logger),
		canvas:   newCanvas(w, h, loadFont()),
		logger:   opts.Logger,
	}
	app.logger.Info("window opened", "backend", "raylib", "width", opts.Width, "height", opts.Height)
	app.RunLoop(ctx)
	return nil
}

func (a *App) RunLoop(ctx context.Context) {
	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return
		}
		if a.Update() == input.Quit {
			return
		}
		a.Draw()
	}
}

// Update applies every key pressed this frame, then advances one tick.
func (a *App) Update() input.Action {
	for _, k := range input.Keys {
		if !rl.IsKeyPressed(keyMap[k]) {
			continue
		}
		if input.Apply(a.sim, k) == input.Quit {
			return input.Quit
		}
	}
	a.sim.Tick()
	return input.Continue
}

func (a *App) Draw() {
	rl.BeginDrawing()
	a.renderer.Draw(a.canvas, a.sim)
	rl.EndDrawing()
}

func withDefaults(opts Options) Options {
	if opts.Title == "" {
		opts.Title = "entropic"
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = sim.ScreenWidth, sim.ScreenHeight
	}
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}

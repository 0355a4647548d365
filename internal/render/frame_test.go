package render

import (
	"bytes"
	"errors"
	"image/color"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/entropic/internal/physics"
	"github.com/san-kum/entropic/internal/sim"
)

type recorder struct {
	cleared   []Color
	circles   []Point
	polylines [][]Point
	texts     []string
	lineErr   error
}

func (r *recorder) Size() (float64, float64) { return sim.ScreenWidth, sim.ScreenHeight }
func (r *recorder) Clear(bg Color)           { r.cleared = append(r.cleared, bg) }

func (r *recorder) FillCircle(c Point, radius float64, col Color) error {
	r.circles = append(r.circles, c)
	return nil
}

func (r *recorder) Polyline(pts []Point, width float64, col Color) error {
	if r.lineErr != nil {
		return r.lineErr
	}
	r.polylines = append(r.polylines, append([]Point(nil), pts...))
	return nil
}

func (r *recorder) Text(s string, at Point, size float64, col Color) error {
	r.texts = append(r.texts, s)
	return nil
}

func newSim(t *testing.T, v physics.Variant) *sim.Simulator {
	t.Helper()
	cfg := sim.DefaultConfig()
	cfg.Seed = 3
	cfg.Variant = v
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return sim.New(cfg)
}

func TestDrawFreshFrameSkipsEmptyTrails(t *testing.T) {
	s := newSim(t, physics.Lorenz)
	rec := &recorder{}
	NewRenderer(nil).Draw(rec, s)

	if len(rec.cleared) != 1 || rec.cleared[0] != Background {
		t.Errorf("expected one clear with background, got %v", rec.cleared)
	}
	if len(rec.polylines) != 0 {
		t.Errorf("expected no trails before the first tick, got %d", len(rec.polylines))
	}
	if len(rec.circles) != len(s.Particles()) {
		t.Errorf("expected %d circles, got %d", len(s.Particles()), len(rec.circles))
	}
	if len(rec.texts) != 6 {
		t.Errorf("expected 6 overlay lines, got %d", len(rec.texts))
	}
}

func TestDrawTrailsAndToggles(t *testing.T) {
	s := newSim(t, physics.Rossler)
	for i := 0; i < 3; i++ {
		s.Tick()
	}

	rec := &recorder{}
	NewRenderer(nil).Draw(rec, s)
	if len(rec.polylines) != len(s.Particles()) {
		t.Fatalf("expected %d trails, got %d", len(s.Particles()), len(rec.polylines))
	}
	if len(rec.polylines[0]) != 4 {
		t.Errorf("expected 4 trail points after 3 ticks, got %d", len(rec.polylines[0]))
	}

	s.ToggleTrails()
	s.ToggleOverlay()
	rec = &recorder{}
	NewRenderer(nil).Draw(rec, s)
	if len(rec.polylines) != 0 || len(rec.texts) != 0 {
		t.Errorf("toggled frame drew %d trails and %d texts", len(rec.polylines), len(rec.texts))
	}
	if len(rec.circles) != len(s.Particles()) {
		t.Error("particles must be drawn regardless of toggles")
	}
}

func TestDrawLogsAndSkipsFailingTrail(t *testing.T) {
	s := newSim(t, physics.Lorenz)
	s.Tick()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	rec := &recorder{lineErr: errors.New("mesh rejected")}
	NewRenderer(logger).Draw(rec, s)

	if len(rec.circles) != len(s.Particles()) {
		t.Error("a failing trail stopped the frame")
	}
	if !strings.Contains(logs.String(), "failed to draw trail") {
		t.Errorf("expected a warning, got %q", logs.String())
	}
}

func TestOverlayLines(t *testing.T) {
	s := newSim(t, physics.Lorenz)
	got := OverlayLines(s)
	want := []string{
		"System: Lorenz (Press 1-4 to change)",
		"Parameters (Q/A: σ=10.00, W/S: ρ=28.00, E/D: β=2.67)",
		"Time Scale: 1.00x (Z/X to adjust)",
		"Particles: 50 (C/V to adjust)",
		"Trails: Enabled (T to toggle)",
		"Press H to hide UI, R to reset particles, ESC to quit",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParamLinePerFamily(t *testing.T) {
	p := physics.DefaultParams()
	tests := []struct {
		v    physics.Variant
		want string
	}{
		{physics.Rossler, "Parameters (Q/A: a=0.20, W/S: b=0.20, E/D: c=5.70)"},
		{physics.Aizawa, "Parameters (Q/A: α=0.95, W/S: γ=0.60, E/D: δ=3.50, R/F: ε=0.25) (BETA: 0.70)"},
		{physics.ChenLee, "Parameters (Q/A: p=5.00, W/S: q=-10.00, E/D: r=-0.38)"},
	}
	for _, tt := range tests {
		if got := ParamLine(tt.v, p); got != tt.want {
			t.Errorf("%s: %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestToRGBA(t *testing.T) {
	tests := []struct {
		in   Color
		want color.RGBA
	}{
		{White, color.RGBA{255, 255, 255, 255}},
		{Color{R: 0.5, G: 0, B: -1, A: 2}, color.RGBA{128, 0, 0, 255}},
		{Color{R: math.NaN(), G: 1, B: 1, A: 1}, color.RGBA{0, 255, 255, 255}},
	}
	for _, tt := range tests {
		if got := ToRGBA(tt.in); got != tt.want {
			t.Errorf("ToRGBA(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFinite(t *testing.T) {
	if !Finite(Point{X: 1, Y: 2}, Point{X: 3, Y: 4}) {
		t.Error("finite points reported non-finite")
	}
	if Finite(Point{X: 1, Y: math.Inf(1)}) || Finite(Point{X: math.NaN(), Y: 0}) {
		t.Error("non-finite point reported finite")
	}
}

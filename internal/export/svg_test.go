package export

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/entropic/internal/physics"
	"github.com/san-kum/entropic/internal/render"
	"github.com/san-kum/entropic/internal/sim"
)

func newSim(v physics.Variant) *sim.Simulator {
	cfg := sim.DefaultConfig()
	cfg.Seed = 5
	cfg.Variant = v
	cfg.ParticleCount = 10
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return sim.New(cfg)
}

func TestWriteFrame(t *testing.T) {
	s := newSim(physics.Aizawa)
	for i := 0; i < 5; i++ {
		s.Tick()
	}

	var buf bytes.Buffer
	if err := WriteFrame(&buf, s, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>\n") {
		t.Error("document is not a complete svg")
	}
	if !strings.Contains(out, `fill="#1a1a26"`) {
		t.Error("background colour missing")
	}
	if got := strings.Count(out, "<circle"); got != 10 {
		t.Errorf("expected 10 circles, got %d", got)
	}
	if got := strings.Count(out, "<polyline"); got != 10 {
		t.Errorf("expected 10 trails, got %d", got)
	}
	if got := strings.Count(out, "<text"); got != 6 {
		t.Errorf("expected 6 overlay lines, got %d", got)
	}
	if !strings.Contains(out, "System: Aizawa") {
		t.Error("overlay text missing")
	}
}

func TestSVGRejectsNonFinite(t *testing.T) {
	c := NewSVG(800, 600)
	if err := c.FillCircle(render.Point{X: math.NaN()}, 2, render.White); err == nil {
		t.Error("expected an error for a NaN circle")
	}
	if err := c.Polyline([]render.Point{{}, {Y: math.Inf(-1)}}, 1, render.White); err == nil {
		t.Error("expected an error for an infinite vertex")
	}
}

func TestSVGEscapesText(t *testing.T) {
	c := NewSVG(100, 100)
	_ = c.Text(`a<b & "c"`, render.Point{}, 16, render.White)
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "a&lt;b &amp; &quot;c&quot;") {
		t.Errorf("text not escaped: %s", buf.String())
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   render.Color
		want string
	}{
		{render.White, "#ffffff"},
		{render.Background, "#1a1a26"},
		{render.Color{R: 1, A: 0.5}, "rgba(255,0,0,0.502)"},
	}
	for _, tt := range tests {
		if got := hex(tt.in); got != tt.want {
			t.Errorf("hex(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

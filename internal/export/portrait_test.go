package export

import (
	"bytes"
	"math"
	"testing"

	"github.com/san-kum/entropic/internal/physics"
	"gonum.org/v1/plot/vg"
)

func TestTrajectoriesRecord(t *testing.T) {
	s := newSim(physics.Lorenz)
	tr := NewTrajectories(PlaneXZ)
	for i := 0; i < 20; i++ {
		s.Tick()
		tr.Record(s)
	}
	if tr.Len() != 10 {
		t.Fatalf("expected 10 paths, got %d", tr.Len())
	}
	if tr.Points(0) != 20 {
		t.Errorf("expected 20 samples, got %d", tr.Points(0))
	}

	s.Particles()[0].X = math.NaN()
	tr.Record(s)
	if tr.Points(0) != 20 {
		t.Error("non-finite sample was recorded")
	}

	s.SetParticleCount(20)
	tr.Record(s)
	if tr.Len() != 20 || tr.Points(0) != 1 {
		t.Errorf("population change should restart paths, got %d paths", tr.Len())
	}
}

func TestWritePortraitPNG(t *testing.T) {
	s := newSim(physics.Rossler)
	tr := NewTrajectories(PlaneXY)
	for i := 0; i < 50; i++ {
		s.Tick()
		tr.Record(s)
	}

	var buf bytes.Buffer
	if err := tr.WritePortrait(&buf, "Rossler", "png", 4*vg.Inch, 3*vg.Inch); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a png")
	}
}

func TestPlaneAxes(t *testing.T) {
	tests := []struct {
		plane  Plane
		ax, ay string
		a, b   float64
	}{
		{PlaneXY, "x", "y", 1, 2},
		{PlaneXZ, "x", "z", 1, 3},
		{PlaneYZ, "y", "z", 2, 3},
	}
	for _, tt := range tests {
		ax, ay := tt.plane.axes()
		a, b := tt.plane.pick(1, 2, 3)
		if ax != tt.ax || ay != tt.ay || a != tt.a || b != tt.b {
			t.Errorf("plane %d: got %s/%s %v/%v", tt.plane, ax, ay, a, b)
		}
	}
}

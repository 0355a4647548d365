package gui

import (
	"testing"

	"github.com/san-kum/entropic/internal/input"
	"github.com/san-kum/entropic/internal/sim"
)

func TestEveryKeyIsMapped(t *testing.T) {
	seen := map[int32]input.Key{}
	for _, k := range input.Keys {
		code, ok := keyMap[k]
		if !ok {
			t.Fatalf("key %s has no raylib binding", k)
		}
		if prev, dup := seen[code]; dup {
			t.Errorf("keys %s and %s share raylib code %d", prev, k, code)
		}
		seen[code] = k
	}
}

func TestWithDefaults(t *testing.T) {
	opts := withDefaults(Options{})
	if opts.Title != "entropic" || opts.FPS != 60 {
		t.Errorf("unexpected defaults %+v", opts)
	}
	if opts.Width != sim.ScreenWidth || opts.Height != sim.ScreenHeight {
		t.Errorf("expected %vx%v, got %dx%d", sim.ScreenWidth, sim.ScreenHeight, opts.Width, opts.Height)
	}
	if opts.Logger == nil {
		t.Error("logger not defaulted")
	}
}

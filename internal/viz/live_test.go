package viz

import (
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/entropic/internal/physics"
	"github.com/san-kum/entropic/internal/sim"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := sim.DefaultConfig()
	cfg.Seed = 11
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewModel(sim.New(cfg), Options{Logger: cfg.Logger})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelKeysDriveSimulator(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(runes("2"))
	m = next.(Model)
	if cmd != nil {
		t.Error("variant switch should not schedule a command")
	}
	if m.sim.Variant() != physics.Rossler {
		t.Errorf("expected Rossler, got %s", m.sim.Variant())
	}

	next, _ = m.Update(runes("t"))
	m = next.(Model)
	if m.sim.TrailsEnabled() {
		t.Error("T should disable trails")
	}
}

func TestModelQuits(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestModel(t)
		next, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s: expected a quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected QuitMsg", msg)
		}
		if next.(Model).View() != "" {
			t.Errorf("%s: view should be empty after quitting", msg)
		}
	}
}

func TestModelTickAdvancesAndCharts(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 3; i++ {
		next, cmd := m.Update(TickMsg(time.Now()))
		if cmd == nil {
			t.Fatal("tick must reschedule itself")
		}
		m = next.(Model)
	}
	if m.sim.Ticks() != 3 {
		t.Errorf("expected 3 ticks, got %d", m.sim.Ticks())
	}
	if len(m.spread) != 3 {
		t.Errorf("expected 3 spread samples, got %d", len(m.spread))
	}

	view := m.View()
	for _, want := range []string{"entropic :: Lorenz", "Mean radius", "Particles: 50"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSpreadIgnoresNonFinite(t *testing.T) {
	m := newTestModel(t)
	before := Spread(m.sim)
	if before <= 0 {
		t.Fatalf("expected a positive spread, got %v", before)
	}
	m.sim.Particles()[0].X = math.NaN()
	if s := Spread(m.sim); math.IsNaN(s) || s <= 0 {
		t.Errorf("spread = %v after one particle diverged", s)
	}
}

func TestGetTheme(t *testing.T) {
	if th, ok := GetTheme("retro"); !ok || th.Name != "retro" {
		t.Errorf("GetTheme(retro) = %v, %v", th.Name, ok)
	}
	if th, ok := GetTheme("missing"); ok || th.Name != ThemeNight.Name {
		t.Errorf("unknown theme should fall back to night, got %v", th.Name)
	}
}

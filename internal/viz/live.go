package viz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/entropic/internal/input"
	"github.com/san-kum/entropic/internal/render"
	"github.com/san-kum/entropic/internal/sim"
)

const (
	defaultCols     = 80
	defaultRows     = 24
	sidebarWidth    = 48
	historyCapacity = 240
)

type TickMsg time.Time

// Options configures the terminal view.
type Options struct {
	Theme  string
	FPS    int
	Logger *slog.Logger
}

// Model is the bubbletea model of the terminal view. It owns the simulator
// for the lifetime of the program.
type Model struct {
	sim      *sim.Simulator
	renderer *render.Renderer
	surface  *Surface
	styles   styles
	interval time.Duration
	spread   []float64
	quitting bool
}

func NewModel(s *sim.Simulator, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	theme, ok := GetTheme(opts.Theme)
	if !ok && opts.Theme != "" {
		opts.Logger.Warn("unknown theme, using default", "theme", opts.Theme, "default", theme.Name)
	}
	w, h := s.Size()
	return Model{
		sim:      s,
		renderer: render.NewRenderer(opts.Logger),
		surface:  NewSurface(defaultCols, defaultRows, w, h),
		styles:   newStyles(theme),
		interval: time.Second / time.Duration(opts.FPS),
		spread:   make([]float64, 0, historyCapacity),
	}
}

// Run drives s in the terminal until ESC, ctrl+c or ctx is cancelled.
func Run(ctx context.Context, s *sim.Simulator, opts Options) error {
	p := tea.NewProgram(NewModel(s, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal view: %w", err)
	}
	return nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the simulation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if k := input.ParseKey(msg.String()); k != input.KeyNone {
			if input.Apply(m.sim, k) == input.Quit {
				m.quitting = true
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.surface.Resize(msg.Width-sidebarWidth-4, msg.Height-1)
	case TickMsg:
		m.sim.Tick()
		m.record()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) record() {
	if len(m.spread) == historyCapacity {
		copy(m.spread, m.spread[1:])
		m.spread = m.spread[:historyCapacity-1]
	}
	m.spread = append(m.spread, Spread(m.sim))
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.renderer.Draw(m.surface, m.sim)
	plot := m.styles.plot.Render(m.surface.Grid().String())
	return lipgloss.JoinHorizontal(lipgloss.Top, plot, m.sidebar())
}

func (m Model) sidebar() string {
	st := m.styles
	var b strings.Builder

	b.WriteString(st.header.Render(fmt.Sprintf("entropic :: %s", m.sim.Variant())) + "\n")
	row := func(label, value string) {
		b.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2f", m.sim.Time()))
	row("Ticks", fmt.Sprintf("%d", m.sim.Ticks()))
	row("Step", fmt.Sprintf("%.4f x %.2f", m.sim.Dt(), m.sim.TimeScale()))
	if n := m.sim.Diverged(); n > 0 {
		b.WriteString(st.label.Render("Diverged") + st.warning.Render(fmt.Sprintf("%d/%d", n, len(m.sim.Particles()))) + "\n")
	}

	if len(m.spread) > 1 {
		chart := asciigraph.Plot(finiteOnly(m.spread),
			asciigraph.Height(5), asciigraph.Width(sidebarWidth-12), asciigraph.Caption("Mean radius"))
		b.WriteString(st.graph.Render(chart) + "\n")
	}

	if lines := m.surface.Lines(); len(lines) > 0 {
		for _, l := range lines {
			b.WriteString(st.value.Render(l) + "\n")
		}
	} else {
		b.WriteString(st.help.Render("H to show controls, ESC to quit") + "\n")
	}
	return st.sidebar.Render(b.String())
}

// Spread is the mean distance of finite particles from the origin of state
// space, or 0 when none are finite.
func Spread(s *sim.Simulator) float64 {
	sum, n := 0.0, 0
	for _, p := range s.Particles() {
		r := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		sum += r
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func finiteOnly(vs []float64) []float64 {
	out := make([]float64, 0, len(vs))
	for _, v := range vs {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		out = append(out, 0)
	}
	return out
}

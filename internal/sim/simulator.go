package sim

import (
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/entropic/internal/dynamo"
	"github.com/san-kum/entropic/internal/physics"
)

// Simulator owns the particle population, the active family, its parameters
// and the playback controls. Every method runs on the goroutine driving the
// frame loop; only Tick fans out internally.
type Simulator struct {
	variant   physics.Variant
	params    *physics.Params
	particles []*Particle

	dt        float64
	timeScale float64
	count     int
	trails    bool
	overlay   bool

	time  float64
	ticks uint64

	rng       *rand.Rand
	workers   int
	origin    Point
	width     float64
	height    float64
	trailPool *TrailPool
	logger    *slog.Logger
}

// New builds a simulator from cfg and seeds the first population.
func New(cfg Config) *Simulator {
	def := DefaultConfig()
	if cfg.Params == nil {
		cfg.Params = def.Params
	}
	if cfg.Dt <= 0 {
		cfg.Dt = def.Dt
	}
	if cfg.TimeScale == 0 {
		cfg.TimeScale = def.TimeScale
	}
	if cfg.ParticleCount == 0 {
		cfg.ParticleCount = def.ParticleCount
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if !cfg.Variant.Valid() {
		cfg.Variant = def.Variant
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Simulator{
		variant:   cfg.Variant,
		params:    cfg.Params,
		dt:        cfg.Dt,
		timeScale: clampFloat(cfg.TimeScale, MinTimeScale, MaxTimeScale),
		count:     clampInt(cfg.ParticleCount, MinParticles, MaxParticles),
		trails:    cfg.Trails,
		overlay:   cfg.Overlay,
		rng:       rand.New(rand.NewSource(seed)),
		workers:   cfg.Workers,
		width:     cfg.Width,
		height:    cfg.Height,
		origin:    Point{cfg.Width / 2, cfg.Height / 2},
		trailPool: NewTrailPool(),
		logger:    cfg.Logger,
	}
	s.Reseed()
	return s
}

func (s *Simulator) Variant() physics.Variant { return s.variant }
func (s *Simulator) Params() *physics.Params  { return s.params }
func (s *Simulator) Particles() []*Particle   { return s.particles }
func (s *Simulator) Dt() float64              { return s.dt }
func (s *Simulator) TimeScale() float64       { return s.timeScale }
func (s *Simulator) ParticleCount() int       { return s.count }
func (s *Simulator) TrailsEnabled() bool      { return s.trails }
func (s *Simulator) OverlayEnabled() bool     { return s.overlay }
func (s *Simulator) Time() float64            { return s.time }
func (s *Simulator) Ticks() uint64            { return s.ticks }
func (s *Simulator) Size() (w, h float64)     { return s.width, s.height }

// ScreenPos projects p's current state with the active family's scale.
func (s *Simulator) ScreenPos(p *Particle) Point {
	return Project(s.variant, p.X, p.Y, s.origin)
}

// Tick advances every particle by one forward Euler step of dt*timeScale.
// Particles are independent, so disjoint index ranges are stepped
// concurrently and joined before Tick returns. The step works on scalars and
// does not allocate per particle.
func (s *Simulator) Tick() {
	dt := s.dt * s.timeScale
	v, params := s.variant, s.params

	dynamo.ParallelFor(len(s.particles), tickChunk, s.workers, func(start, end int) {
		for i := start; i < end; i++ {
			p := s.particles[i]
			dx, dy, dz := physics.Derive(v, p.X, p.Y, p.Z, params)
			x, y, z := p.X+dt*dx, p.Y+dt*dy, p.Z+dt*dz
			p.Update(x, y, z, Project(v, x, y, s.origin))
		}
	})

	s.time += dt
	s.ticks++
}

// Reseed discards the population and samples ParticleCount fresh particles
// from the active family's initial-condition box.
func (s *Simulator) Reseed() {
	for _, p := range s.particles {
		s.trailPool.Put(p.Trail)
	}

	box := s.variant.InitBox()
	particles := make([]*Particle, s.count)
	for i := range particles {
		x, y, z := box.Sample(s.rng)
		particles[i] = newParticle(x, y, z, s.rng, s.trailPool.Get())
	}
	s.particles = particles
	s.time = 0

	s.logger.Debug("reseeded particles", "variant", s.variant.Slug(), "count", s.count)
}

// SwitchVariant activates v and reseeds. Selecting the active family is a
// no-op and reports false.
func (s *Simulator) SwitchVariant(v physics.Variant) bool {
	if v == s.variant || !v.Valid() {
		return false
	}
	s.variant = v
	s.Reseed()
	return true
}

// SetParticleCount clamps n to [MinParticles, MaxParticles] and reseeds when
// the clamped value differs from the current count.
func (s *Simulator) SetParticleCount(n int) bool {
	n = clampInt(n, MinParticles, MaxParticles)
	if n == s.count {
		return false
	}
	s.count = n
	s.Reseed()
	return true
}

// AdjustParticleCount backs the C/V keys. A press at either bound changes
// nothing and keeps the current population; it does not reseed.
func (s *Simulator) AdjustParticleCount(delta int) bool {
	return s.SetParticleCount(s.count + delta)
}

// HasKnob reports whether the active family binds a coefficient to slot.
func (s *Simulator) HasKnob(slot int) bool {
	return slot >= 0 && slot < len(s.variant.Attractor().Knobs())
}

// AdjustParam nudges the active family's knob in slot by dir steps. It reports
// false when the family has no such knob.
func (s *Simulator) AdjustParam(slot int, dir float64) bool {
	if !s.HasKnob(slot) {
		return false
	}
	s.variant.Attractor().Knobs()[slot].Nudge(s.params, dir)
	return true
}

func (s *Simulator) AdjustTimeScale(delta float64) {
	s.SetTimeScale(s.timeScale + delta)
}

func (s *Simulator) SetTimeScale(v float64) {
	s.timeScale = clampFloat(v, MinTimeScale, MaxTimeScale)
}

func (s *Simulator) ToggleTrails()  { s.trails = !s.trails }
func (s *Simulator) ToggleOverlay() { s.overlay = !s.overlay }

// Diverged counts particles whose state is no longer finite.
func (s *Simulator) Diverged() int {
	n := 0
	for _, p := range s.particles {
		if !isFinite(p.X) || !isFinite(p.Y) || !isFinite(p.Z) {
			n++
		}
	}
	return n
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

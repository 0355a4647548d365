package sim_test

import (
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/entropic/internal/physics"
	"github.com/san-kum/entropic/internal/sim"
)

func inBox(b physics.Box) OmegaMatcher {
	return WithTransform(func(p *sim.Particle) bool {
		return b.Contains(p.X, p.Y, p.Z)
	}, BeTrue())
}

var _ = Describe("Simulator", func() {
	var s *sim.Simulator

	BeforeEach(func() {
		cfg := sim.DefaultConfig()
		cfg.Seed = 1234
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		s = sim.New(cfg)
	})

	It("starts on Lorenz with the default population", func() {
		Expect(s.Variant()).To(Equal(physics.Lorenz))
		Expect(s.Particles()).To(HaveLen(sim.DefaultParticleCount))
		Expect(s.TimeScale()).To(Equal(1.0))
		Expect(s.Dt()).To(Equal(0.01))
		Expect(s.TrailsEnabled()).To(BeTrue())
		Expect(s.OverlayEnabled()).To(BeTrue())
	})

	Describe("Reseed", func() {
		DescribeTable("samples every particle inside the family box",
			func(v physics.Variant) {
				s.SwitchVariant(v)
				s.Reseed()
				Expect(s.Particles()).To(HaveLen(s.ParticleCount()))
				Expect(s.Particles()).To(HaveEach(inBox(v.InitBox())))
				for _, p := range s.Particles() {
					Expect(p.Trail.Len()).To(BeZero())
				}
			},
			Entry("lorenz", physics.Lorenz),
			Entry("rossler", physics.Rossler),
			Entry("aizawa", physics.Aizawa),
			Entry("chen-lee", physics.ChenLee),
		)

		It("replaces particle identities", func() {
			before := s.Particles()[0]
			s.Reseed()
			Expect(s.Particles()).NotTo(ContainElement(BeIdenticalTo(before)))
		})
	})

	Describe("SwitchVariant", func() {
		It("is a no-op when the family is already active", func() {
			s.Tick()
			before := append([]*sim.Particle(nil), s.Particles()...)
			trailLen := before[0].Trail.Len()

			Expect(s.SwitchVariant(physics.Lorenz)).To(BeFalse())
			Expect(s.Particles()).To(HaveLen(len(before)))
			for i, p := range s.Particles() {
				Expect(p).To(BeIdenticalTo(before[i]))
			}
			Expect(s.Particles()[0].Trail.Len()).To(Equal(trailLen))
		})

		It("discards trails on every switch to a different family", func() {
			for i := 0; i < 10; i++ {
				s.Tick()
			}
			lorenzFirst := s.Particles()[0]

			Expect(s.SwitchVariant(physics.Rossler)).To(BeTrue())
			Expect(s.Particles()).To(HaveEach(inBox(physics.Rossler.InitBox())))
			rosslerFirst := s.Particles()[0]
			s.Tick()

			Expect(s.SwitchVariant(physics.Lorenz)).To(BeTrue())
			Expect(s.Variant()).To(Equal(physics.Lorenz))
			Expect(s.Particles()).NotTo(ContainElement(BeIdenticalTo(lorenzFirst)))
			Expect(s.Particles()).NotTo(ContainElement(BeIdenticalTo(rosslerFirst)))
			for _, p := range s.Particles() {
				Expect(p.Trail.Len()).To(BeZero())
			}
		})
	})

	Describe("SetParticleCount", func() {
		It("clamps above the maximum and reseeds", func() {
			Expect(s.SetParticleCount(203)).To(BeTrue())
			Expect(s.ParticleCount()).To(Equal(sim.MaxParticles))
			Expect(s.Particles()).To(HaveLen(200))
		})

		It("clamps below the minimum", func() {
			s.SetParticleCount(-40)
			Expect(s.ParticleCount()).To(Equal(sim.MinParticles))
			Expect(s.Particles()).To(HaveLen(5))
		})

		It("does not reseed when the clamped count is unchanged", func() {
			s.SetParticleCount(sim.MaxParticles)
			first := s.Particles()[0]
			Expect(s.SetParticleCount(sim.MaxParticles + 5)).To(BeFalse())
			Expect(s.Particles()[0]).To(BeIdenticalTo(first))
		})

		It("keeps the population when adjusting past a bound", func() {
			s.SetParticleCount(sim.MaxParticles)
			first := s.Particles()[0]
			Expect(s.AdjustParticleCount(sim.ParticleStep)).To(BeFalse())
			Expect(s.Particles()[0]).To(BeIdenticalTo(first))

			s.SetParticleCount(sim.MinParticles)
			first = s.Particles()[0]
			Expect(s.AdjustParticleCount(-sim.ParticleStep)).To(BeFalse())
			Expect(s.Particles()[0]).To(BeIdenticalTo(first))
		})

		It("stays inside [5, 200] under arbitrary adjustments", func() {
			deltas := []int{5, 5, -5, 500, 5, -1000, -5, 5, 35, -5}
			for _, d := range deltas {
				s.AdjustParticleCount(d)
				Expect(s.ParticleCount()).To(And(BeNumerically(">=", 5), BeNumerically("<=", 200)))
				Expect(s.Particles()).To(HaveLen(s.ParticleCount()))
			}
		})
	})

	Describe("time scale", func() {
		It("reaches 2.0 after ten increments from 1.0", func() {
			for i := 0; i < 10; i++ {
				s.AdjustTimeScale(sim.TimeScaleStep)
			}
			Expect(s.TimeScale()).To(BeNumerically("~", 2.0, 1e-9))
		})
	})

	Describe("toggles", func() {
		It("flip only their own flag", func() {
			first := s.Particles()[0]
			s.ToggleTrails()
			Expect(s.TrailsEnabled()).To(BeFalse())
			Expect(s.OverlayEnabled()).To(BeTrue())
			s.ToggleOverlay()
			Expect(s.OverlayEnabled()).To(BeFalse())
			s.ToggleTrails()
			Expect(s.TrailsEnabled()).To(BeTrue())
			Expect(s.Particles()[0]).To(BeIdenticalTo(first))
		})
	})

	Describe("Tick", func() {
		It("grows every trail up to its capacity", func() {
			for i := 0; i < 150; i++ {
				s.Tick()
			}
			for _, p := range s.Particles() {
				Expect(p.Trail.Len()).To(Equal(sim.MaxTrailLength))
				last, ok := p.Trail.Last()
				Expect(ok).To(BeTrue())
				Expect(last).To(Equal(s.ScreenPos(p)))
			}
		})
	})
})

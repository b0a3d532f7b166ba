package scenario_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/engine"
	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/scenario"
	"github.com/Parth04Dalvi/3D-N-Body-Gravity-Simulator/internal/vec"
)

var _ = Describe("CircularOrbitSpeed", func() {
	It("matches sqrt(G·M/r)", func() {
		got := scenario.CircularOrbitSpeed(engine.GravitationalConstant, scenario.SunMass, scenario.EarthOrbit)
		want := math.Sqrt(engine.GravitationalConstant * scenario.SunMass / scenario.EarthOrbit)
		Expect(got).To(Equal(want))
		// Sanity: earth's orbital speed is about 29.8 km/s.
		Expect(got).To(BeNumerically("~", 2.98e4, 2e2))
	})
})

var _ = Describe("OrbitalPeriod", func() {
	It("gives roughly one year for the earth orbit", func() {
		period := scenario.OrbitalPeriod(engine.GravitationalConstant, scenario.SunMass, scenario.EarthOrbit)
		Expect(period).To(BeNumerically("~", 3.156e7, 2e5))
	})
})

var _ = Describe("Orbiting", func() {
	var central engine.Body

	BeforeEach(func() {
		var err error
		central, err = engine.NewBody("central", scenario.SunMass, vec.Vec3{}, vec.Vec3{})
		Expect(err).NotTo(HaveOccurred())
	})

	It("places the body at the requested radius", func() {
		b, err := scenario.Orbiting(central, engine.GravitationalConstant, "sat", 1e24, scenario.EarthOrbit, 1.2, vec.Vec3{Z: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Position.Sub(central.Position).Norm()).To(BeNumerically("~", scenario.EarthOrbit, 1))
	})

	It("keeps the orbit in the plane normal to the axis", func() {
		axis := vec.Vec3{X: 1, Y: 2, Z: -1}
		b, err := scenario.Orbiting(central, engine.GravitationalConstant, "sat", 1e24, scenario.EarthOrbit, 0.7, axis)
		Expect(err).NotTo(HaveOccurred())

		offset := b.Position.Sub(central.Position)
		n := axis.Normalize()
		Expect(math.Abs(offset.Dot(n)) / offset.Norm()).To(BeNumerically("<", 1e-12))
	})

	It("directs the velocity perpendicular to the radius at Keplerian speed", func() {
		b, err := scenario.Orbiting(central, engine.GravitationalConstant, "sat", 1e24, scenario.EarthOrbit, 2.3, vec.Vec3{Y: 1})
		Expect(err).NotTo(HaveOccurred())

		offset := b.Position.Sub(central.Position)
		rel := b.Velocity.Sub(central.Velocity)
		Expect(math.Abs(rel.Dot(offset)) / (rel.Norm() * offset.Norm())).To(BeNumerically("<", 1e-12))

		want := scenario.CircularOrbitSpeed(engine.GravitationalConstant, central.Mass, scenario.EarthOrbit)
		Expect(rel.Norm()).To(BeNumerically("~", want, want*1e-12))
	})

	It("inherits the central body's velocity", func() {
		central.Velocity = vec.Vec3{X: 1000}
		b, err := scenario.Orbiting(central, engine.GravitationalConstant, "moon", 1e22, 1e9, 0, vec.Vec3{Z: 1})
		Expect(err).NotTo(HaveOccurred())

		rel := b.Velocity.Sub(central.Velocity)
		want := scenario.CircularOrbitSpeed(engine.GravitationalConstant, central.Mass, 1e9)
		Expect(rel.Norm()).To(BeNumerically("~", want, want*1e-12))
	})

	It("rejects non-positive radii", func() {
		_, err := scenario.Orbiting(central, engine.GravitationalConstant, "sat", 1e24, 0, 0, vec.Vec3{Z: 1})
		Expect(err).To(HaveOccurred())
		_, err = scenario.Orbiting(central, engine.GravitationalConstant, "sat", 1e24, -5, 0, vec.Vec3{Z: 1})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Catalog", func() {
	It("builds every named scenario", func() {
		for _, name := range scenario.Names() {
			eng, err := scenario.Build(name)
			Expect(err).NotTo(HaveOccurred(), "scenario %s", name)
			Expect(eng.Len()).To(BeNumerically(">=", 2))
		}
	})

	It("rejects unknown names", func() {
		_, err := scenario.Build("no-such-scenario")
		Expect(err).To(MatchError(ContainSubstring("unknown scenario")))
	})

	It("gives the binary pair zero net momentum", func() {
		eng, err := scenario.Build("binary")
		Expect(err).NotTo(HaveOccurred())
		scale := scenario.SunMass * 1e4
		Expect(eng.Momentum().Norm()).To(BeNumerically("<", scale*1e-9))
	})

	It("spreads the planets scenario across coordinate planes", func() {
		eng, err := scenario.Build("planets")
		Expect(err).NotTo(HaveOccurred())

		// Not all bodies in one plane: some z, some y displacement.
		var sawY, sawZ bool
		for _, b := range eng.Bodies() {
			if math.Abs(b.Position.Y) > 1e9 {
				sawY = true
			}
			if math.Abs(b.Position.Z) > 1e9 {
				sawZ = true
			}
		}
		Expect(sawY).To(BeTrue())
		Expect(sawZ).To(BeTrue())
	})

	It("builds the demo scenario in G=1 units", func() {
		eng, err := scenario.Build("demo")
		Expect(err).NotTo(HaveOccurred())
		Expect(eng.G).To(Equal(1.0))
	})
})

var _ = Describe("Two-body evolution", func() {
	It("returns the satellite to its start after one period", func() {
		eng, err := scenario.TwoBody()
		Expect(err).NotTo(HaveOccurred())

		period := scenario.OrbitalPeriod(engine.GravitationalConstant, scenario.SunMass, scenario.EarthOrbit)
		const steps = 20000
		dt := period / steps

		start := eng.Bodies()[1].Position
		for i := 0; i < steps; i++ {
			eng.Step(dt)
		}
		end := eng.Bodies()[1].Position

		Expect(end.Sub(start).Norm() / scenario.EarthOrbit).To(BeNumerically("<", 1e-2))
	})
})

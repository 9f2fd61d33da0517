package physics

import (
	"fmt"
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NBody", func() {
	var nb *NBody

	BeforeEach(func() {
		nb = NewNBody()
	})

	Describe("initial conditions", func() {
		It("scales masses by the solar mass", func() {
			bodies := JovianBodies()
			Expect(bodies[0].Mass).To(Equal(SolarMass))
			Expect(bodies[1].Mass).To(Equal(9.54791938424326609e-04 * SolarMass))
			Expect(SolarMass).To(BeNumerically("~", 4*math.Pi*math.Pi, 1e-12))
		})

		It("scales velocities by days per year", func() {
			bodies := JovianBodies()
			Expect(bodies[4].VZ).To(Equal(-9.51592254519715870e-05 * DaysPerYear))
			Expect(bodies[0].VX).To(BeZero())
		})

		It("zeroes total momentum", func() {
			raw := NBody{Bodies: JovianBodies()}
			rawX, _, _ := raw.Momentum()
			Expect(rawX).NotTo(BeZero())

			px, py, pz := nb.Momentum()
			Expect(px).To(BeNumerically("~", 0, 1e-15))
			Expect(py).To(BeNumerically("~", 0, 1e-15))
			Expect(pz).To(BeNumerically("~", 0, 1e-15))
		})

		It("keeps the Sun at the origin", func() {
			Expect(nb.Bodies[0].X).To(BeZero())
			Expect(nb.Bodies[0].Y).To(BeZero())
			Expect(nb.Bodies[0].Z).To(BeZero())
		})
	})

	Describe("Energy", func() {
		It("matches the baseline checkpoint", func() {
			Expect(fmt.Sprintf("%.9f", nb.Energy())).To(Equal("-0.169075164"))
		})

		It("is bit-identical across repeated calls", func() {
			e1 := nb.Energy()
			e2 := nb.Energy()
			Expect(math.Float64bits(e1)).To(Equal(math.Float64bits(e2)))
		})

		It("does not mutate the system", func() {
			before := nb.Bodies
			nb.Energy()
			Expect(nb.Bodies).To(Equal(before))
		})
	})

	Describe("Advance", func() {
		It("reaches the known energy after 1000 steps", func() {
			for i := 0; i < 1000; i++ {
				nb.Advance(0.01)
			}
			Expect(fmt.Sprintf("%.9f", nb.Energy())).To(Equal("-0.169087605"))
		})

		It("applies equal and opposite impulses per pair", func() {
			for i := 0; i < NumBodies; i++ {
				for j := i + 1; j < NumBodies; j++ {
					sys := NewNBody()
					bi, bj := sys.Bodies[i], sys.Bodies[j]

					sys.interact(i, j, 0.01)

					ai, aj := sys.Bodies[i], sys.Bodies[j]
					Expect(bi.Mass*(ai.VX-bi.VX)+bj.Mass*(aj.VX-bj.VX)).To(BeNumerically("~", 0, 1e-13))
					Expect(bi.Mass*(ai.VY-bi.VY)+bj.Mass*(aj.VY-bj.VY)).To(BeNumerically("~", 0, 1e-13))
					Expect(bi.Mass*(ai.VZ-bi.VZ)+bj.Mass*(aj.VZ-bj.VZ)).To(BeNumerically("~", 0, 1e-13))
					Expect(ai.X).To(Equal(bi.X), "positions move only in the drift")
				}
			}
		})

		It("conserves total momentum", func() {
			for i := 0; i < 1000; i++ {
				nb.Advance(0.01)
			}
			px, py, pz := nb.Momentum()
			Expect(px).To(BeNumerically("~", 0, 1e-12))
			Expect(py).To(BeNumerically("~", 0, 1e-12))
			Expect(pz).To(BeNumerically("~", 0, 1e-12))
		})

		It("drifts positions with the updated velocities", func() {
			ref := NewNBody()
			for i := 0; i < NumBodies; i++ {
				for j := i + 1; j < NumBodies; j++ {
					ref.interact(i, j, 0.01)
				}
			}

			nb.Advance(0.01)

			for i := range nb.Bodies {
				Expect(nb.Bodies[i].VX).To(Equal(ref.Bodies[i].VX))
				Expect(nb.Bodies[i].X).To(Equal(ref.Bodies[i].X + 0.01*ref.Bodies[i].VX))
			}
		})

		It("never changes masses", func() {
			masses := [NumBodies]float64{}
			for i := range nb.Bodies {
				masses[i] = nb.Bodies[i].Mass
			}
			for i := 0; i < 100; i++ {
				nb.Advance(0.01)
			}
			for i := range nb.Bodies {
				Expect(nb.Bodies[i].Mass).To(Equal(masses[i]))
			}
		})

		It("does not allocate", func() {
			allocs := testing.AllocsPerRun(100, func() {
				nb.Advance(0.01)
				_ = nb.Energy()
			})
			Expect(allocs).To(BeZero())
		})
	})
})

func BenchmarkAdvance(b *testing.B) {
	nb := NewNBody()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nb.Advance(0.01)
	}
}

func BenchmarkEnergy(b *testing.B) {
	nb := NewNBody()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = nb.Energy()
	}
}

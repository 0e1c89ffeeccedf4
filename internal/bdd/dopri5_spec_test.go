package bdd

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odeflow/internal/facade"
	"github.com/san-kum/odeflow/internal/integrators"
	"github.com/san-kum/odeflow/internal/stepctrl"
	"github.com/san-kum/odeflow/internal/stream"
	"github.com/san-kum/odeflow/internal/vecalg"
)

var _ = Describe("DOPRI5", func() {
	var solveExp = func(_ float64, _, y vecalg.Vector) vecalg.Vector { return y }

	When("integrating dy/dt = y from y(0) = 1", func() {
		It("matches e^t at a query landing on an accepted step", func() {
			d := integrators.NewDOPRI5(stepctrl.Default(), 0)
			xs := stream.Bottom[float64, vecalg.Vector]()
			ys := integrators.Values(d.Solve(solveExp, 0, xs, vecalg.Real(1)))

			Expect(ys.Get(1).At0()).To(BeNumerically("~", math.E, 1e-9))
		})

		It("does not corrupt a later query after a tiny query far inside the first step", func() {
			d := integrators.NewDOPRI5(stepctrl.Default(), 0)
			xs := stream.Bottom[float64, vecalg.Vector]()
			ys := integrators.Values(d.Solve(solveExp, 0, xs, vecalg.Real(1)))

			Expect(ys.Get(1e-8)).To(BeNumerically("~", 1, 1e-6))
			Expect(ys.Get(2.0)).To(BeNumerically("~", math.Exp(2), 1e-8))
		})

		It("propagates NaN once the query time itself is NaN", func() {
			d := integrators.NewDOPRI5(stepctrl.Default(), 0)
			xs := stream.Bottom[float64, vecalg.Vector]()
			ys := integrators.Values(d.Solve(solveExp, 0, xs, vecalg.Real(1)))

			Expect(ys.Get(math.NaN()).AnyNaN()).To(BeTrue())
		})
	})

	When("integrating the harmonic oscillator y''=-y from (y,y')=(0,1)", func() {
		It("recovers sin and cos at t=pi", func() {
			d := integrators.NewDOPRI5(stepctrl.Default(), 0)
			xs := stream.Bottom[float64, vecalg.Vector]()
			harmonic := func(_ float64, _, s vecalg.Vector) vecalg.Vector {
				y, z := s[0], s[1]
				return vecalg.FromComplex(z, -y)
			}
			ys := integrators.Values(d.Solve(harmonic, 0, xs, vecalg.FromComplex(0, 1)))

			got := ys.Get(math.Pi)
			Expect(real(got[0])).To(BeNumerically("~", 0, 1e-8))
			Expect(real(got[1])).To(BeNumerically("~", -1, 1e-8))
		})
	})

	Describe("via the facade's DSolvePrime", func() {
		It("agrees with dopri5 solved directly", func() {
			ys := facade.DSolvePrime(func(_ float64, y vecalg.Vector) vecalg.Vector { return y }, 0, vecalg.Real(1))
			Expect(ys.Get(1).At0()).To(BeNumerically("~", math.E, 1e-9))
		})
	})
})

package bdd

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/odeflow/internal/integrators"
	"github.com/san-kum/odeflow/internal/registry"
	"github.com/san-kum/odeflow/internal/special"
	"github.com/san-kum/odeflow/internal/stepctrl"
	"github.com/san-kum/odeflow/internal/stream"
	"github.com/san-kum/odeflow/internal/vecalg"
)

var _ = Describe("the special-function catalogue", func() {
	DescribeTable("elementary functions agree with their math stdlib analogues",
		func(fn func(float64) float64, x, want float64) {
			Expect(fn(x)).To(BeNumerically("~", want, 1e-6))
		},
		Entry("exp(1)", special.Exp, 1.0, math.E),
		Entry("log(e)", special.Log, math.E, 1.0),
		Entry("sin(pi/2)", special.Sin, math.Pi/2, 1.0),
		Entry("cos(pi)", special.Cos, math.Pi, -1.0),
		Entry("erf(1)", special.Erf, 1.0, math.Erf(1)),
		Entry("erfc(1)", special.Erfc, 1.0, math.Erfc(1)),
	)

	Describe("BesselJ2 at integer order", func() {
		It("reduces to the classical integral representation, matching math.J0", func() {
			Expect(special.BesselJ2(0, 1)).To(BeNumerically("~", math.J0(1), 1e-4))
		})

		It("reduces to the classical integral representation, matching math.J1", func() {
			Expect(special.BesselJ2(1, 2)).To(BeNumerically("~", math.J1(2), 1e-4))
		})
	})

	Describe("the Airy functions at t=0", func() {
		It("matches the closed-form initial value for Ai", func() {
			ai0 := 1 / (math.Pow(3, 2.0/3.0) * math.Gamma(2.0/3.0))
			Expect(special.AiryAi(0)).To(BeNumerically("~", ai0, 1e-6))
		})

		It("matches the closed-form initial value for Bi", func() {
			bi0 := 1 / (math.Pow(3, 1.0/6.0) * math.Gamma(2.0/3.0))
			Expect(special.AiryBi(0)).To(BeNumerically("~", bi0, 1e-6))
		})
	})

	Describe("the elliptic integrals at m=0", func() {
		It("anchors K(0) at pi/2", func() {
			Expect(special.EllipticK(0)).To(BeNumerically("~", math.Pi/2, 1e-6))
		})

		It("anchors E(0) at pi/2", func() {
			Expect(special.EllipticE(0)).To(BeNumerically("~", math.Pi/2, 1e-6))
		})
	})

	Describe("branch points fixed exactly by construction", func() {
		It("returns exactly 1 for sinc(0)", func() {
			Expect(special.Sinc(0)).To(Equal(1.0))
		})

		It("returns exactly 0 for the Fresnel integrals at 0", func() {
			Expect(special.FresnelC(0)).To(Equal(0.0))
			Expect(special.FresnelS(0)).To(Equal(0.0))
		})

		It("returns exactly 0 for Si, Ein, Cin, and Chin at 0", func() {
			Expect(special.Si(0)).To(Equal(0.0))
			Expect(special.Ein(0)).To(Equal(0.0))
			Expect(special.Cin(0)).To(Equal(0.0))
			Expect(special.Chin(0)).To(Equal(0.0))
		})
	})

	Describe("re-solving a catalogue recipe under every integrator", func() {
		It("agrees with the catalogue's own dopri5-backed value for exp", func() {
			r := registry.New()
			recipe, err := r.GetRecipe("exp")
			Expect(err).NotTo(HaveOccurred())

			integ, err := r.Integrator("dopri5", stepctrl.Default())
			Expect(err).NotTo(HaveOccurred())

			g := func(t float64, _, y vecalg.Vector) vecalg.Vector { return recipe.RHS(t, y) }
			xs := stream.Bottom[float64, vecalg.Vector]()
			ys := integrators.Values(integ.Solve(g, recipe.T0, xs, recipe.Y0))

			Expect(ys.Get(1).At0()).To(BeNumerically("~", special.Exp(1), 1e-6))
		})
	})
})

package special

import (
	"math"

	"github.com/san-kum/odeflow/internal/facade"
	"github.com/san-kum/odeflow/internal/integrators"
	"github.com/san-kum/odeflow/internal/vecalg"
)

const twoOverSqrtPi = 1.1283791670955126 // 2/sqrt(pi)

// erfsStream solves the three-component system that produces erf and
// erfc together: g = e^-t^2 carried as auxiliary state so it's
// computed once per step rather than twice.
func erfsStream() integrators.YStream {
	rhs := func(t float64, s vecalg.Vector) vecalg.Vector {
		g := s[2]
		dg := complex(-2*t, 0) * g
		derf := complex(twoOverSqrtPi, 0) * g
		return vecalg.FromComplex(derf, -derf, dg)
	}
	return facade.DSolvePrime(rhs, 0, vecalg.FromComplex(0, 1, 1))
}

// Erf evaluates the error function.
func Erf(t float64) float64 {
	v, _ := erfsStream().Query(t)
	return v.At0()
}

// Erfc evaluates the complementary error function.
func Erfc(t float64) float64 {
	v, _ := erfsStream().Query(t)
	return real(v[1])
}

// airyInitials returns the four standard Airy initial values at t=0,
// expressed via Gamma(1/3) and Gamma(2/3).
func airyInitials() (ai0, aip0, bi0, bip0 float64) {
	g13 := math.Gamma(1.0 / 3.0)
	g23 := math.Gamma(2.0 / 3.0)
	ai0 = 1 / (math.Pow(3, 2.0/3.0) * g23)
	aip0 = -1 / (math.Pow(3, 1.0/3.0) * g13)
	bi0 = 1 / (math.Pow(3, 1.0/6.0) * g23)
	bip0 = math.Pow(3, 1.0/6.0) / g13
	return
}

func airyRHS(t float64, s vecalg.Vector) vecalg.Vector {
	y, z := s[0], s[1]
	return vecalg.FromComplex(z, complex(t, 0)*y)
}

// AiryAi evaluates the Airy function of the first kind by solving
// y'' = t*y from its known initial value and slope at t=0.
func AiryAi(t float64) float64 {
	ai0, aip0, _, _ := airyInitials()
	ys := facade.DSolvePrime(airyRHS, 0, vecalg.FromComplex(complex(ai0, 0), complex(aip0, 0)))
	v, _ := ys.Query(t)
	return v.At0()
}

// AiryBi evaluates the Airy function of the second kind.
func AiryBi(t float64) float64 {
	_, _, bi0, bip0 := airyInitials()
	ys := facade.DSolvePrime(airyRHS, 0, vecalg.FromComplex(complex(bi0, 0), complex(bip0, 0)))
	v, _ := ys.Query(t)
	return v.At0()
}

package special

import (
	"math"

	"github.com/san-kum/odeflow/internal/facade"
	"github.com/san-kum/odeflow/internal/integrators"
	"github.com/san-kum/odeflow/internal/vecalg"
)

func fresnelStream() integrators.YStream {
	rhs := func(t float64, _ vecalg.Vector) vecalg.Vector {
		arg := math.Pi * t * t / 2
		return vecalg.FromComplex(complex(math.Cos(arg), 0), complex(math.Sin(arg), 0))
	}
	return facade.DSolvePrime(rhs, 0, vecalg.FromComplex(0, 0))
}

// FresnelC evaluates the Fresnel cosine integral C(t).
func FresnelC(t float64) float64 {
	v, _ := fresnelStream().Query(t)
	return v.At0()
}

// FresnelS evaluates the Fresnel sine integral S(t).
func FresnelS(t float64) float64 {
	v, _ := fresnelStream().Query(t)
	return real(v[1])
}

// Sinc evaluates sin(t)/t, branching to the analytic limit 1 exactly
// at t=0 rather than letting 0/0 through.
func Sinc(t float64) float64 {
	if t == 0.0 {
		return 1
	}
	return math.Sin(t) / t
}

func sincIntegrand(t float64) float64 {
	if t == 0.0 {
		return 1
	}
	return math.Sin(t) / t
}

// Si evaluates the sine integral Si(t) = integral of sinc from 0 to t.
func Si(t float64) float64 {
	return facade.IntegratePrime(sincIntegrand, 0, t)
}

func einIntegrand(t float64) float64 {
	if t == 0.0 {
		return 1
	}
	return (1 - math.Exp(-t)) / t
}

// Ein evaluates the entire exponential integral Ein(t).
func Ein(t float64) float64 {
	return facade.IntegratePrime(einIntegrand, 0, t)
}

func cinIntegrand(t float64) float64 {
	if t == 0.0 {
		return 0
	}
	return (1 - math.Cos(t)) / t
}

// Cin evaluates the cosine integral complement Cin(t).
func Cin(t float64) float64 {
	return facade.IntegratePrime(cinIntegrand, 0, t)
}

func chinIntegrand(t float64) float64 {
	if t == 0.0 {
		return 0
	}
	return (math.Cosh(t) - 1) / t
}

// Chin evaluates the hyperbolic cosine integral complement Chin(t).
func Chin(t float64) float64 {
	return facade.IntegratePrime(chinIntegrand, 0, t)
}

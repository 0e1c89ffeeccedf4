package special

import (
	"math"

	"github.com/san-kum/odeflow/internal/facade"
	"github.com/san-kum/odeflow/internal/integrators"
	"github.com/san-kum/odeflow/internal/limits"
	"github.com/san-kum/odeflow/internal/stream"
	"github.com/san-kum/odeflow/internal/vecalg"
)

// besselStream integrates the auxiliary system in s = -log(t) carrying
// (e, y, z) where e tracks t^2 = e^-2s, y is J_a(t), and z is
// dy/ds = -t*J_a'(t), then premaps the result back onto a t-keyed
// stream via the auxiliary substitution t -> -log t.
func besselStream(a, j1, dj1 float64) integrators.YStream {
	a2 := complex(a*a, 0)
	rhs := func(_ float64, state vecalg.Vector) vecalg.Vector {
		e, y, z := state[0], state[1], state[2]
		de := complex(-2, 0) * e
		dy := z
		dz := (a2 - e) * y
		return vecalg.FromComplex(de, dy, dz)
	}
	s0 := vecalg.FromComplex(1, complex(j1, 0), complex(-dj1, 0))
	ys := facade.DSolvePrime(rhs, 0, s0)
	return stream.Premap(ys, func(t float64) float64 { return -math.Log(t) })
}

// BesselPrime returns J_a as a function of t, given its value and
// derivative at t=1, by integrating outward through the t -> -log t
// substitution above.
func BesselPrime(a, j1, dj1 float64) func(t float64) float64 {
	ys := besselStream(a, j1, dj1)
	return func(t float64) float64 {
		v, _ := ys.Query(t)
		return real(v[1])
	}
}

// BesselJ2 evaluates J_a(x) via its integral representation on [0,pi]
// plus a semi-infinite correction for non-integer order, converged
// through a convergent improper-integral limit.
func BesselJ2(a, x float64) float64 {
	finite := facade.IntegratePrime(func(theta float64) float64 {
		return math.Cos(a*theta - x*math.Sin(theta))
	}, 0, math.Pi) / math.Pi

	tail := limits.IntegrateSeq(func(upper float64) float64 {
		return facade.IntegratePrime(func(t float64) float64 {
			return math.Exp(-x*math.Sinh(t) - a*t)
		}, 0, upper)
	}, limits.LimPInfty(0))

	return finite - math.Sin(a*math.Pi)/math.Pi*tail
}

// BesselY2 evaluates Y_a(x) via its integral representation on [0,pi]
// plus a semi-infinite correction.
func BesselY2(a, x float64) float64 {
	finite := facade.IntegratePrime(func(theta float64) float64 {
		return math.Sin(x*math.Sin(theta) - a*theta)
	}, 0, math.Pi) / math.Pi

	tail := limits.IntegrateSeq(func(upper float64) float64 {
		return facade.IntegratePrime(func(t float64) float64 {
			return (math.Exp(a*t) + math.Exp(-a*t)*math.Cos(a*math.Pi)) * math.Exp(-x*math.Sinh(t))
		}, 0, upper)
	}, limits.LimPInfty(0))

	return finite - tail/math.Pi
}

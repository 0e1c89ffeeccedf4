package special

import (
	"github.com/san-kum/odeflow/internal/facade"
	"github.com/san-kum/odeflow/internal/integrators"
	"github.com/san-kum/odeflow/internal/vecalg"
)

// Exp evaluates e^t by solving y' = y, y(0) = 1.
func Exp(t float64) float64 {
	ys := facade.DSolvePrime(func(_ float64, y vecalg.Vector) vecalg.Vector { return y }, 0, vecalg.Real(1))
	v, _ := ys.Query(t)
	return v.At0()
}

// Log evaluates the natural logarithm for t > 0 by solving
// y' = 1/t, y(1) = 0.
func Log(t float64) float64 {
	ys := facade.DSolvePrime(func(tt float64, _ vecalg.Vector) vecalg.Vector {
		return vecalg.Real(1 / tt)
	}, 1, vecalg.Real(0))
	v, _ := ys.Query(t)
	return v.At0()
}

// sinCosStream solves the coupled system y' = z, z' = -y anchored at
// (y,z)(0) = (0,1), which is (sin, cos) simultaneously.
func sinCosStream() integrators.YStream {
	return facade.DSolvePrime(func(_ float64, s vecalg.Vector) vecalg.Vector {
		y, z := s[0], s[1]
		return vecalg.FromComplex(z, -y)
	}, 0, vecalg.FromComplex(0, 1))
}

// Sin evaluates sin(t) via the coupled sin/cos ODE.
func Sin(t float64) float64 {
	v, _ := sinCosStream().Query(t)
	return v.At0()
}

// Cos evaluates cos(t) via the coupled sin/cos ODE.
func Cos(t float64) float64 {
	v, _ := sinCosStream().Query(t)
	return real(v[1])
}

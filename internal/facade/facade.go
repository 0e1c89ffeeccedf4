// Package facade assembles the integrators, vector algebra, and
// auxiliary streams into the small set of entry points a caller
// actually reaches for: solve an IVP, evaluate a definite integral, or
// walk a complex contour for a residue.
package facade

import (
	"math/cmplx"

	"github.com/san-kum/odeflow/internal/integrators"
	"github.com/san-kum/odeflow/internal/stepctrl"
	"github.com/san-kum/odeflow/internal/stream"
	"github.com/san-kum/odeflow/internal/vecalg"
)

// SimpleIntegrand is a right-hand side with no auxiliary driving
// signal: dy/dt = f(t, y).
type SimpleIntegrand func(t float64, y vecalg.Vector) vecalg.Vector

// DefaultControl is the library-wide default step-control policy:
// atol = rtol = 1e-16.
func DefaultControl() stepctrl.Control { return stepctrl.Default() }

// SimpleIntegrator lifts an Integrator that expects an auxiliary
// stream into one that doesn't, by supplying stream.Bottom as the
// auxiliary and requiring f to ignore its second argument (which it
// does by construction, since SimpleIntegrand never receives one).
func SimpleIntegrator(I integrators.Integrator) func(f SimpleIntegrand, t0 float64, y0 vecalg.Vector) integrators.YStream {
	return func(f SimpleIntegrand, t0 float64, y0 vecalg.Vector) integrators.YStream {
		g := func(t float64, _, y vecalg.Vector) vecalg.Vector { return f(t, y) }
		xs := stream.Bottom[float64, vecalg.Vector]()
		return integrators.Values(I.Solve(g, t0, xs, y0))
	}
}

// DSolve solves an IVP with an auxiliary driving stream under the
// default adaptive method and tolerances.
func DSolve(f integrators.Integrand, t0 float64, xs integrators.AuxStream, y0 vecalg.Vector) integrators.YStream {
	d := integrators.NewDOPRI5(DefaultControl(), 0)
	return integrators.Values(d.Solve(f, t0, xs, y0))
}

// DSolvePrime is DSolve without an auxiliary stream.
func DSolvePrime(f SimpleIntegrand, t0 float64, y0 vecalg.Vector) integrators.YStream {
	d := integrators.NewDOPRI5(DefaultControl(), 0)
	return SimpleIntegrator(d)(f, t0, y0)
}

// Integrate computes the definite integral of f(t, x(t)) from a to b
// by solving the accumulator ODE dy/dt = f(t, x(t)), y(a) = 0 and
// reading the value at b.
func Integrate(f func(t float64, x vecalg.Vector) float64, x integrators.AuxStream, a, b float64) float64 {
	g := func(t float64, xv, _ vecalg.Vector) vecalg.Vector {
		return vecalg.Real(f(t, xv))
	}
	ys := DSolve(g, a, x, vecalg.Real(0))
	v, _ := ys.Query(b)
	return v.At0()
}

// IntegratePrime is Integrate without an auxiliary stream.
func IntegratePrime(f func(t float64) float64, a, b float64) float64 {
	g := func(t float64, _ vecalg.Vector) vecalg.Vector {
		return vecalg.Real(f(t))
	}
	ys := DSolvePrime(g, a, vecalg.Real(0))
	v, _ := ys.Query(b)
	return v.At0()
}

// PathIntegral integrates f(u(t))*u'(t) over t in [a,b], where u
// itself is defined by du/dt = uPrime(t), u(a) = u0. The accumulator
// y and the position u are carried as a paired two-component complex
// state.
func PathIntegral(f func(u complex128) complex128, uPrime func(t float64) complex128, u0 complex128, a, b float64) complex128 {
	g := func(t float64, y vecalg.Vector) vecalg.Vector {
		u := y[1]
		du := uPrime(t)
		dy := f(u) * du
		return vecalg.FromComplex(dy, du)
	}
	y0 := vecalg.FromComplex(0, u0)
	ys := DSolvePrime(g, a, y0)
	v, _ := ys.Query(b)
	return v[0]
}

// LineIntegral integrates f along the straight segment from u0 to u1,
// parameterized by arc length: u'(t) is the constant unit direction
// and t runs from 0 to |u1-u0|.
func LineIntegral(f func(u complex128) complex128, u0, u1 complex128) complex128 {
	length := cmplx.Abs(u1 - u0)
	if length == 0 {
		return 0
	}
	dir := (u1 - u0) / complex(length, 0)
	uPrime := func(float64) complex128 { return dir }
	return PathIntegral(f, uPrime, u0, 0, length)
}

// LinesIntegral sums LineIntegral over consecutive pairs of an open
// polyline.
func LinesIntegral(f func(u complex128) complex128, us []complex128) complex128 {
	if len(us) == 0 {
		panic("facade: LinesIntegral on empty polyline")
	}
	var sum complex128
	for i := 0; i+1 < len(us); i++ {
		sum += LineIntegral(f, us[i], us[i+1])
	}
	return sum
}

// PolyIntegral is LinesIntegral over a closed polyline: it also
// integrates the closing edge from the last vertex back to the first.
func PolyIntegral(f func(u complex128) complex128, us []complex128) complex128 {
	if len(us) == 0 {
		panic("facade: PolyIntegral on empty polyline")
	}
	closed := append(append([]complex128{}, us...), us[0])
	return LinesIntegral(f, closed)
}

// ResidueSquare integrates f around the closed square loop of half-
// width r centered on z0, traversed corner to corner starting at the
// bottom-right.
func ResidueSquare(f func(complex128) complex128, z0 complex128, r float64) complex128 {
	rc := complex(r, 0)
	ic := complex(0, r)
	corners := []complex128{
		z0 + rc - ic,
		z0 + rc + ic,
		z0 - rc + ic,
		z0 - rc - ic,
	}
	return PolyIntegral(f, corners)
}

// ResidueCirc integrates f around the circle of radius r centered on
// z0, parameterized u(t) = z0 + r*e^(it), t in [0, 2*pi].
func ResidueCirc(f func(complex128) complex128, z0 complex128, r float64) complex128 {
	uPrime := func(t float64) complex128 {
		return complex(0, r) * cmplx.Exp(complex(0, t))
	}
	u0 := z0 + complex(r, 0)
	return PathIntegral(f, uPrime, u0, 0, 2*3.141592653589793)
}

// Residue is the default residue-calculus loop: the square, which
// empirically tolerates larger adaptive-step excursions than the
// circle.
func Residue(f func(complex128) complex128, z0 complex128, r float64) complex128 {
	return ResidueSquare(f, z0, r)
}

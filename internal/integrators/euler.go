package integrators

import (
	"math"

	"github.com/san-kum/odeflow/internal/stream"
	"github.com/san-kum/odeflow/internal/vecalg"
)

// Euler is the fixed-step forward-Euler method, generalized from a
// single caller-driven step into a self-advancing stream.
type Euler struct {
	H float64
}

// NewEuler builds a fixed-step-h Euler integrator.
func NewEuler(h float64) *Euler {
	return &Euler{H: h}
}

func (e *Euler) Solve(f Integrand, t0 float64, xs AuxStream, y0 vecalg.Vector) ResultStream {
	return eulerStream(e.H, f, t0, xs, y0, Statistics{})
}

func eulerStream(h float64, f Integrand, t0 float64, xs AuxStream, y0 vecalg.Vector, stats Statistics) ResultStream {
	return stream.New(Result{Y: y0, Stats: stats}, func(t1 float64) ResultStream {
		y1, xs1, s1, isNaN := eulerAdvance(h, f, t0, xs, y0, t1, stats)
		if isNaN {
			return nanResultForever(y1.Dim())
		}
		return eulerStream(h, f, t1, xs1, y1, s1)
	})
}

// eulerAdvance takes single/multiple sub-steps of size at most |h|
// until it reaches t1 exactly: full steps of h, then one final
// partial step.
func eulerAdvance(h float64, f Integrand, t0 float64, xs AuxStream, y0 vecalg.Vector, t1 float64, stats Statistics) (vecalg.Vector, AuxStream, Statistics, bool) {
	dt := t1 - t0
	if anyNaN(dt, h, y0.Norm1()) {
		return vecalg.NaNVector(y0.Dim()), xs, stats, true
	}

	x0 := xs.Head()
	k := f(t0, x0, y0)
	stats.EvaluationCount++

	if math.Abs(h) >= math.Abs(dt) {
		y1 := y0.Perturb(k, dt)
		stats.StepCount++
		stats.LastStepSize = dt
		return y1, xs.Seek(t1), stats, false
	}

	hPrime := math.Copysign(math.Abs(h), t1-t0)
	tNext := t0 + hPrime
	xsNext := xs.Seek(tNext)
	yNext := y0.Perturb(k, hPrime)
	stats.StepCount++
	stats.LastStepSize = hPrime
	return eulerAdvance(h, f, tNext, xsNext, yNext, t1, stats)
}

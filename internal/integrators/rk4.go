package integrators

import (
	"math"

	"github.com/san-kum/odeflow/internal/stream"
	"github.com/san-kum/odeflow/internal/vecalg"
)

// RK4 is the classical four-stage Runge-Kutta method as a fixed-step
// self-advancing stream, used both directly and as the DOPRI5
// small-step fallback.
type RK4 struct {
	H float64
}

// NewRK4 builds a fixed-step-h RK4 integrator.
func NewRK4(h float64) *RK4 {
	return &RK4{H: h}
}

func (r *RK4) Solve(f Integrand, t0 float64, xs AuxStream, y0 vecalg.Vector) ResultStream {
	return rk4Stream(r.H, f, t0, xs, y0, Statistics{})
}

func rk4Stream(h float64, f Integrand, t0 float64, xs AuxStream, y0 vecalg.Vector, stats Statistics) ResultStream {
	return stream.New(Result{Y: y0, Stats: stats}, func(t1 float64) ResultStream {
		y1, xs1, s1, isNaN := rk4Advance(h, f, t0, xs, y0, t1, stats)
		if isNaN {
			return nanResultForever(y1.Dim())
		}
		return rk4Stream(h, f, t1, xs1, y1, s1)
	})
}

func rk4Advance(h float64, f Integrand, t0 float64, xs AuxStream, y0 vecalg.Vector, t1 float64, stats Statistics) (vecalg.Vector, AuxStream, Statistics, bool) {
	dt := t1 - t0
	if anyNaN(dt, h, y0.Norm1()) {
		return vecalg.NaNVector(y0.Dim()), xs, stats, true
	}

	if math.Abs(h) >= math.Abs(dt) {
		y1, xs1, evals := RK4Step(f, t0, xs, y0, dt)
		stats.StepCount++
		stats.EvaluationCount += evals
		stats.LastStepSize = dt
		return y1, xs1, stats, false
	}

	hPrime := math.Copysign(math.Abs(h), t1-t0)
	y1, xs1, evals := RK4Step(f, t0, xs, y0, hPrime)
	stats.StepCount++
	stats.EvaluationCount += evals
	stats.LastStepSize = hPrime
	return rk4Advance(h, f, t0+hPrime, xs1, y1, t1, stats)
}

// RK4Step performs a single classical RK4 step of size h from
// (t0, y0), returning the advanced value and auxiliary stream. Exported
// so DOPRI5 can reuse it as its small-step fallback rather than
// duplicating the stage logic.
func RK4Step(f Integrand, t0 float64, xs AuxStream, y0 vecalg.Vector, h float64) (vecalg.Vector, AuxStream, int) {
	tm := t0 + h*0.5
	t2 := t0 + h

	x0 := xs.Head()
	k1 := f(t0, x0, y0).Scale(h)

	xm1, xs1 := xs.Query(tm)
	k2 := f(tm, xm1, y0.Perturb(k1, 0.5)).Scale(h)

	xm2, xs2 := xs1.Query(tm)
	k3 := f(tm, xm2, y0.Perturb(k2, 0.5)).Scale(h)

	xe, xs3 := xs2.Query(t2)
	k4 := f(t2, xe, y0.Add(k3)).Scale(h)

	sum := vecalg.LinearCombination([]float64{1, 2, 2, 1}, []vecalg.Vector{k1, k2, k3, k4})
	y2 := y0.Perturb(sum, 1.0/6.0)

	return y2, xs3, 4
}

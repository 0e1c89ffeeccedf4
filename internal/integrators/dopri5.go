package integrators

import (
	"math"

	"github.com/san-kum/odeflow/internal/stepctrl"
	"github.com/san-kum/odeflow/internal/stream"
	"github.com/san-kum/odeflow/internal/vecalg"
)

// Dormand-Prince 5(4) Butcher tableau, laid out as an explicit tableau
// with a separate error-weight row instead of hand-fused dc-terms so
// the accept/reject logic reads directly off it.
var (
	dopriC = [7]float64{0, 1.0 / 5.0, 3.0 / 10.0, 4.0 / 5.0, 8.0 / 9.0, 1.0, 1.0}

	dopriA = [7][6]float64{
		{},
		{1.0 / 5.0},
		{3.0 / 40.0, 9.0 / 40.0},
		{44.0 / 45.0, -56.0 / 15.0, 32.0 / 9.0},
		{19372.0 / 6561.0, -25360.0 / 2187.0, 64448.0 / 6561.0, -212.0 / 729.0},
		{9017.0 / 3168.0, -355.0 / 33.0, 46732.0 / 5247.0, 49.0 / 176.0, -5103.0 / 18656.0},
		{35.0 / 384.0, 0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0, 11.0 / 84.0},
	}

	dopriB = [7]float64{35.0 / 384.0, 0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0, 11.0 / 84.0, 0}

	dopriE = [7]float64{
		-71.0 / 57600.0,
		0,
		71.0 / 16695.0,
		-71.0 / 1920.0,
		17253.0 / 339200.0,
		-22.0 / 525.0,
		1.0 / 40.0,
	}
)

// maxRejections bounds how many times a single step may be shrunk and
// retried before the integration is declared divergent.
const maxRejections = 100

// DOPRI5 is the adaptive Dormand-Prince 5(4) integrator with PI step
// control, restructured around a driver/overshoot contract: the driver
// shortens each step to at most the distance left to the query, so a
// query normally ends on an accepted step and the successor is
// anchored there. A step that still passes the query (one lengthened
// by ClipStep's minimum-progress floor, or by rounding) is not
// committed: the query is answered by an RK4 extrapolation and the
// successor stays at the pre-step anchor.
type DOPRI5 struct {
	Control      stepctrl.Control
	InitialGuess float64 // if <= 0, computed via the Hairer heuristic
	fallback     *RK4
}

// NewDOPRI5 builds an adaptive integrator under the given step
// control. initialStep, if positive, seeds the first step size instead
// of the Hairer/Nørsett/Wanner estimate.
func NewDOPRI5(ctrl stepctrl.Control, initialStep float64) *DOPRI5 {
	return &DOPRI5{Control: ctrl, InitialGuess: initialStep, fallback: &RK4{}}
}

func (d *DOPRI5) Solve(f Integrand, t0 float64, xs AuxStream, y0 vecalg.Vector) ResultStream {
	h0 := d.InitialGuess
	if h0 <= 0 {
		x0 := xs.Head()
		h0 = initialStepGuess(f, d.Control, t0, x0, y0)
	}
	return dopri5Stream(d.Control, h0, f, t0, xs, y0, Statistics{})
}

func dopri5Stream(ctrl stepctrl.Control, h float64, f Integrand, t float64, xs AuxStream, y vecalg.Vector, stats Statistics) ResultStream {
	return stream.New(Result{Y: y, Stats: stats}, func(target float64) ResultStream {
		hNew, tNew, xsNew, yNew, sNew, diverged := dopri5Query(ctrl, h, f, t, xs, y, target, stats)
		if diverged {
			return nanResultForever(yNew.Dim())
		}
		return dopri5Stream(ctrl, hNew, f, tNew, xsNew, yNew, sNew)
	})
}

// dopri5Query implements the driver: it walks
// the adaptive integrator forward from (t, xs, y) toward target,
// taking whole accepted steps while they don't overshoot, and on the
// step that would overshoot, emits an RK4 extrapolation to target
// while leaving the returned (successor) state anchored at the
// pre-overshoot point.
func dopri5Query(ctrl stepctrl.Control, h float64, f Integrand, t float64, xs AuxStream, y vecalg.Vector, target float64, stats Statistics) (float64, float64, AuxStream, vecalg.Vector, Statistics, bool) {
	dt := target - t
	h = math.Copysign(math.Min(math.Abs(h), math.Abs(dt)), dt)
	hmin := ctrl.ClipStep(t, dt)

	if anyNaN(dt, hmin, y.Norm1()) {
		return 0, 0, xs, vecalg.NaNVector(y.Dim()), stats, true
	}

	if math.Abs(dt) < math.Abs(hmin) {
		// Already effectively at the target: emit an RK4 extrapolation
		// but do not advance the successor's anchor.
		yPrime, _, evals := RK4Step(f, t, xs, y, dt)
		stats.EvaluationCount += evals
		return h, t, xs, yPrime, stats, false
	}

	hNext, tNext, xsNext, yNext, accepted, rejects, evals, diverged := dopri5Step(ctrl, f, t, xs, y, h, 0)
	stats.EvaluationCount += evals
	stats.RejectedCount += rejects
	if diverged {
		return 0, 0, xs, vecalg.NaNVector(y.Dim()), stats, true
	}
	stats.StepCount++
	stats.LastStepSize = tNext - t
	_ = accepted

	direction := math.Copysign(1, dt)
	remaining := (target - tNext) * direction

	switch {
	case remaining > 0:
		// Have not reached target yet: keep going from the new anchor.
		return dopri5Query(ctrl, hNext, f, tNext, xsNext, yNext, target, stats)
	case remaining == 0:
		// Landed exactly on target.
		return hNext, tNext, xsNext, yNext, stats, false
	default:
		// Overshot: emit the RK4 small-step solution at target, but the
		// successor stays anchored at the pre-step state so a later,
		// larger query can still take the adaptive step whole.
		yPrime, _, evals := RK4Step(f, t, xs, y, dt)
		stats.EvaluationCount += evals
		return h, t, xs, yPrime, stats, false
	}
}

// dopri5Step performs one adaptive step attempt (with internal
// accept/reject retries) starting at (t1, xs, y1) with proposed size
// h0.
func dopri5Step(ctrl stepctrl.Control, f Integrand, t1 float64, xs AuxStream, y1 vecalg.Vector, h0 float64, retries int) (hNext, tNext float64, xsNext AuxStream, yNext vecalg.Vector, accepted bool, rejectedCount, evalCount int, diverged bool) {
	if retries >= maxRejections {
		return 0, 0, xs, vecalg.NaNVector(y1.Dim()), false, retries, 0, true
	}

	h := ctrl.ClipStep(t1, h0)

	x0 := xs.Head()
	x2, xs1 := xs.Query(t1 + h*dopriC[1])
	x3, xs2 := xs1.Query(t1 + h*dopriC[2])
	x4, xs3 := xs2.Query(t1 + h*dopriC[3])
	x5, xs4 := xs3.Query(t1 + h*dopriC[4])
	x6, xs5 := xs4.Query(t1 + h) // shared stage point for k6 and k7 (c6 = c7 = 1)

	k := make([]vecalg.Vector, 7)
	stageX := []vecalg.Vector{x0, x2, x3, x4, x5, x6}
	stageT := []float64{t1, t1 + h*dopriC[1], t1 + h*dopriC[2], t1 + h*dopriC[3], t1 + h*dopriC[4], t1 + h}

	for i := 0; i < 6; i++ {
		weights := dopriA[i][:i]
		ks := k[:i]
		yin := y1
		if i > 0 {
			sum := vecalg.LinearCombination(weights, ks)
			yin = y1.Add(sum)
		}
		k[i] = f(stageT[i], stageX[i], yin).Scale(h)
	}
	evalCount = 6

	y7 := y1.Add(vecalg.LinearCombination(dopriB[:6], k[:6]))
	k[6] = f(t1+h, x6, y7).Scale(h)
	evalCount++

	dy7 := vecalg.LinearCombination(dopriE[:], k)

	err := rknorm(dy7, y1, y7, ctrl)

	if err <= 1 {
		fac := math.Pow(0.38/err, 0.2)
		if math.IsInf(fac, 0) || math.IsNaN(fac) {
			fac = ctrl.ClipFac(5)
		}
		hOut := h * ctrl.ClipFac(fac)
		return hOut, t1 + h, xs5, y7, true, retries, evalCount, false
	}

	fac := math.Pow(0.38/err, 0.2)
	var shrink float64
	if retries == 0 {
		shrink = ctrl.ClipFac(fac)
	} else {
		shrink = ctrl.ClipFacRetry(fac)
	}
	hShrunk := h * shrink

	hN, tN, xsN, yN, acc, rej, ev, div := dopri5Step(ctrl, f, t1, xs, y1, hShrunk, retries+1)
	return hN, tN, xsN, yN, acc, rej + 1, evalCount + ev, div
}

// rknorm is the weighted RMS error norm used to accept or reject a step.
func rknorm(dy, y1, y7 vecalg.Vector, ctrl stepctrl.Control) float64 {
	n := dy.Dim()
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		var a, b float64
		if i < len(y1) {
			a = vecalg.AbsComponent(y1[i])
		}
		if i < len(y7) {
			b = vecalg.AbsComponent(y7[i])
		}
		sc := ctrl.Sc(a, b)
		d := vecalg.AbsComponent(dy[i]) / sc
		sum += d * d
	}
	return math.Sqrt(sum / float64(n))
}

// initialStepGuess follows Hairer, Nørsett & Wanner II.4: propose a
// starting step from the ratio of the solution's and derivative's
// weighted norms, refine it with one Euler probe, and take the more
// conservative of the two estimates.
func initialStepGuess(f Integrand, ctrl stepctrl.Control, t0 float64, x0, y0 vecalg.Vector) float64 {
	f0 := f(t0, x0, y0)
	d0 := weightedNorm(y0, y0, ctrl)
	d1 := weightedNorm(f0, y0, ctrl)

	var h0 float64
	if d0 < 1e-5 || d1 < 1e-5 {
		h0 = 1e-6
	} else {
		h0 = 0.01 * d0 / d1
	}

	y1 := y0.Perturb(f0, h0)
	f1 := f(t0+h0, x0, y1)
	d2 := weightedNorm(f1.Sub(f0), y0, ctrl) / h0

	maxD := math.Max(d1, d2)
	var h1 float64
	if maxD <= 1e-15 {
		h1 = math.Max(1e-6, h0*1e-3)
	} else {
		h1 = math.Pow(0.01/maxD, 0.2)
	}

	return math.Min(100*h0, h1)
}

func weightedNorm(v, ref vecalg.Vector, ctrl stepctrl.Control) float64 {
	n := v.Dim()
	if n == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		var r float64
		if i < len(ref) {
			r = vecalg.AbsComponent(ref[i])
		}
		sc := ctrl.Atol + ctrl.Rtol*r
		m := vecalg.AbsComponent(v[i]) / sc
		sum += m * m
	}
	return math.Sqrt(sum / float64(n))
}

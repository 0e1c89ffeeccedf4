// Package stepctrl carries the tolerance and step-clipping policy the
// adaptive integrators consult on every step: a step-size estimator
// plus clamps applied before a first-try step, after a rejected step,
// and against the current time value.
package stepctrl

import "math"

// Control bundles the tolerances plus clamps applied before a
// first-try step, after a rejected step, and against the current time
// value.
type Control struct {
	Atol, Rtol float64

	// ClipFac clamps the first-try step-size growth/shrink factor.
	ClipFac func(fac float64) float64

	// ClipFacRetry clamps the factor used on steps after a rejection;
	// tighter than ClipFac so retries shrink monotonically.
	ClipFacRetry func(fac float64) float64

	// ClipStep caps |h| relative to |t|, enforcing a minimum-progress
	// floor near t.
	ClipStep func(t, h float64) float64
}

func clamp(lo, hi float64) func(float64) float64 {
	return func(x float64) float64 {
		if x < lo {
			return lo
		}
		if x > hi {
			return hi
		}
		return x
	}
}

// minProgress returns the smallest step the integrator will take near
// t: at least 10 units in the last place of t.
func minProgress(t float64) float64 {
	ulp := math.Nextafter(math.Abs(t), math.Inf(1)) - math.Abs(t)
	if ulp == 0 {
		ulp = math.SmallestNonzeroFloat64
	}
	return 10 * ulp
}

// Default returns the library default policy: atol = rtol = 1e-16,
// first-try factor clamped to [0.1, 5], retry factor clamped to
// [0.1, 1], and a minimum-progress step floor of 10*ulp(t).
func Default() Control {
	return Control{
		Atol:         1e-16,
		Rtol:         1e-16,
		ClipFac:      clamp(0.1, 5),
		ClipFacRetry: clamp(0.1, 1),
		ClipStep: func(t, h float64) float64 {
			floor := minProgress(t)
			if math.Abs(h) < floor {
				if h < 0 {
					return -floor
				}
				return floor
			}
			return h
		},
	}
}

// Sc returns the per-component error-tolerance denominator used by the
// adaptive step's RMS error norm: atol + rtol*max(|y1|, |y2|).
func (c Control) Sc(y1, y2 float64) float64 {
	m := math.Abs(y1)
	if a := math.Abs(y2); a > m {
		m = a
	}
	return c.Atol + c.Rtol*m
}

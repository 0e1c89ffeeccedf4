// Package limits implements the one-sided limit sequences and the
// convergence scanner the special-function library uses to evaluate
// improper integrals and singular limits: a bounded scan that drops
// non-finite samples and stops on agreement between successive terms.
package limits

import "math"

// Sequence is a lazily-indexed real sequence: Sequence(k) is its k'th
// term, k = 0, 1, 2, ….
type Sequence func(k int) float64

// LimInf builds the sequence {x + x0*e^-k}, approaching x from above
// as k grows, per the lim_inf(x, x0) contract.
func LimInf(x, x0 float64) Sequence {
	return func(k int) float64 { return x + x0*math.Exp(-float64(k)) }
}

// LimSup builds the sequence {x - x0*e^-k}, approaching x from below.
func LimSup(x, x0 float64) Sequence {
	return func(k int) float64 { return x - x0*math.Exp(-float64(k)) }
}

// LimPInfty builds a sequence anchored near x0 and tending to +Inf.
func LimPInfty(x0 float64) Sequence {
	return func(k int) float64 { return x0 + math.Exp(float64(k)) }
}

// LimNInfty builds a sequence anchored near x0 and tending to -Inf.
func LimNInfty(x0 float64) Sequence {
	return func(k int) float64 { return x0 - math.Exp(float64(k)) }
}

// maxTerms bounds how far Converge (and so IntegrateSeq and
// IntegrateSeq2) will scan before giving up and returning the last
// finite sample.
const maxTerms = 100

// agree reports whether a and b match to machine precision.
func agree(a, b float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= 4*math.Nextafter(scale, math.Inf(1))-4*scale
}

// Converge scans at most 100 terms of xs, discarding NaNs, and returns
// the value at which two consecutive (finite) terms agree to machine
// precision. If the scan exhausts its budget without agreement, it
// returns the last finite value seen; if every term was NaN, it
// returns NaN.
func Converge(xs Sequence) float64 {
	prev := math.NaN()
	havePrev := false
	last := math.NaN()

	for k := 0; k < maxTerms; k++ {
		v := xs(k)
		if math.IsNaN(v) {
			continue
		}
		last = v
		if havePrev && agree(prev, v) {
			return v
		}
		prev, havePrev = v, true
	}
	return last
}

// IntegrateSeq drives an outward integration by sampling a caller-
// supplied evaluator at each term of a limit sequence and converging
// the resulting sequence of partial results. sample(t) is expected to
// integrate from the fixed lower endpoint out to t (typically by
// querying an already-anchored integrator stream); this package knows
// nothing about integrators, keeping the dependency direction from
// facade onto limits rather than the reverse.
func IntegrateSeq(sample func(t float64) float64, seq Sequence) float64 {
	return Converge(func(k int) float64 { return sample(seq(k)) })
}

// IntegrateSeq2 handles an integral improper at both endpoints,
// per lim2_integrate: sample(lo, hi) is expected to integrate between
// the two given endpoints, and the two sequences are scanned together,
// term by term, converging the resulting sequence of partial results.
func IntegrateSeq2(sample func(lo, hi float64) float64, lo, hi Sequence) float64 {
	return Converge(func(k int) float64 { return sample(lo(k), hi(k)) })
}

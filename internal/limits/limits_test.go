package limits

import (
	"math"
	"testing"
)

func TestLimInfApproachesFromAbove(t *testing.T) {
	seq := LimInf(1, 1)
	if seq(0) <= 1 {
		t.Errorf("expected the first term to sit strictly above 1, got %g", seq(0))
	}
	if seq(20) <= 1 {
		t.Errorf("expected later terms to stay above 1, got %g", seq(20))
	}
	if math.Abs(seq(50)-1) > 1e-15 {
		t.Errorf("expected the sequence to have converged to 1 by k=50, got %g", seq(50))
	}
}

func TestLimSupApproachesFromBelow(t *testing.T) {
	seq := LimSup(1, 1)
	if seq(0) >= 1 {
		t.Errorf("expected the first term to sit strictly below 1, got %g", seq(0))
	}
}

func TestLimPInftyGrowsUnbounded(t *testing.T) {
	seq := LimPInfty(0)
	if seq(10) <= seq(5) {
		t.Error("expected LimPInfty to be increasing")
	}
}

func TestLimNInftyShrinksUnbounded(t *testing.T) {
	seq := LimNInfty(0)
	if seq(10) >= seq(5) {
		t.Error("expected LimNInfty to be decreasing")
	}
}

func TestConvergeReturnsFixedPoint(t *testing.T) {
	got := Converge(func(k int) float64 { return 42 })
	if got != 42 {
		t.Errorf("expected immediate agreement on a constant sequence, got %g", got)
	}
}

func TestConvergeSkipsNaN(t *testing.T) {
	got := Converge(func(k int) float64 {
		if k < 3 {
			return math.NaN()
		}
		return 7
	})
	if got != 7 {
		t.Errorf("expected NaN terms to be skipped, got %g", got)
	}
}

func TestConvergeAllNaNReturnsNaN(t *testing.T) {
	got := Converge(func(k int) float64 { return math.NaN() })
	if !math.IsNaN(got) {
		t.Errorf("expected NaN when every term is NaN, got %g", got)
	}
}

func TestConvergeExhaustsBudgetReturnsLastFinite(t *testing.T) {
	got := Converge(func(k int) float64 { return float64(k) })
	if got != 99 {
		t.Errorf("expected the last of 100 non-agreeing terms (99), got %g", got)
	}
}

func TestIntegrateSeq(t *testing.T) {
	// sample(t) returns its endpoint unchanged and the sequence is the
	// constant 5, so the first two terms already agree.
	sample := func(t float64) float64 { return t }
	seq := func(k int) float64 { return 5.0 }
	got := IntegrateSeq(sample, seq)
	if got != 5 {
		t.Errorf("expected a constant sequence to converge immediately to 5, got %g", got)
	}
}

func TestIntegrateSeq2(t *testing.T) {
	sample := func(lo, hi float64) float64 { return hi - lo }
	lo := LimNInfty(0)
	hi := LimPInfty(0)
	got := IntegrateSeq2(sample, lo, hi)
	if math.IsNaN(got) {
		t.Fatal("expected a finite result from a diverging-but-well-defined difference sequence")
	}
}

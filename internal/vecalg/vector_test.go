package vecalg

import (
	"math"
	"testing"
)

func TestAddSub(t *testing.T) {
	a := FromReals(1, 2, 3)
	b := FromReals(4, 5, 6)

	sum := a.Add(b)
	if got := sum.Re(); got[0] != 5 || got[1] != 7 || got[2] != 9 {
		t.Errorf("Add: got %v", got)
	}

	diff := b.Sub(a)
	if got := diff.Re(); got[0] != 3 || got[1] != 3 || got[2] != 3 {
		t.Errorf("Sub: got %v", got)
	}
}

func TestAddToleratesMismatchedLength(t *testing.T) {
	a := FromReals(1, 2)
	b := FromReals(1, 2, 3)
	sum := a.Add(b)
	if sum.Dim() != 3 {
		t.Fatalf("expected zero-padded dimension 3, got %d", sum.Dim())
	}
	if got := sum.Re(); got[2] != 3 {
		t.Errorf("expected last component 3, got %f", got[2])
	}
}

func TestPerturb(t *testing.T) {
	y := FromReals(1, 1)
	dy := FromReals(2, -2)
	out := y.Perturb(dy, 0.5)
	if got := out.Re(); got[0] != 2 || got[1] != 0 {
		t.Errorf("Perturb: got %v", got)
	}
}

func TestScale(t *testing.T) {
	v := FromReals(1, -2, 3)
	out := v.Scale(2)
	if got := out.Re(); got[0] != 2 || got[1] != -4 || got[2] != 6 {
		t.Errorf("Scale: got %v", got)
	}
}

func TestLinearCombination(t *testing.T) {
	vs := []Vector{FromReals(1, 0), FromReals(0, 1), FromReals(1, 1)}
	out := LinearCombination([]float64{2, 3, 1}, vs)
	if got := out.Re(); got[0] != 3 || got[1] != 4 {
		t.Errorf("LinearCombination: got %v", got)
	}
}

func TestLinearCombinationEmpty(t *testing.T) {
	out := LinearCombination(nil, nil)
	if out.Dim() != 0 {
		t.Errorf("expected empty vector, got dim %d", out.Dim())
	}
}

func TestNorm1(t *testing.T) {
	v := FromComplex(complex(3, 4), complex(0, 0))
	if got := v.Norm1(); got != 5 {
		t.Errorf("expected norm 5, got %f", got)
	}
}

func TestIsFiniteAndAnyNaN(t *testing.T) {
	finite := FromReals(1, 2, 3)
	if !finite.IsFinite() {
		t.Error("expected finite vector to be finite")
	}
	if finite.AnyNaN() {
		t.Error("expected finite vector to have no NaN")
	}

	nanVec := NaNVector(2)
	if nanVec.IsFinite() {
		t.Error("expected NaN vector to be non-finite")
	}
	if !nanVec.AnyNaN() {
		t.Error("expected NaN vector to carry NaN")
	}
}

func TestInfIsNotNaN(t *testing.T) {
	v := Vector{complex(math.Inf(1), 0)}
	if v.AnyNaN() {
		t.Error("Inf should not trip AnyNaN, only IsFinite")
	}
	if v.IsFinite() {
		t.Error("Inf should trip IsFinite")
	}
}

func TestAt0(t *testing.T) {
	if Real(7).At0() != 7 {
		t.Error("expected At0 to read the first real component")
	}
	if (Vector{}).At0() != 0 {
		t.Error("expected At0 on empty vector to be 0")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	v := FromReals(1, 2)
	c := v.Clone()
	c[0] = complex(99, 0)
	if real(v[0]) == 99 {
		t.Error("Clone should not alias the original backing array")
	}
}

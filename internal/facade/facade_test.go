package facade

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/san-kum/odeflow/internal/vecalg"
)

func TestDSolvePrimeExponential(t *testing.T) {
	ys := DSolvePrime(func(_ float64, y vecalg.Vector) vecalg.Vector { return y }, 0, vecalg.Real(1))
	got := ys.Get(1).At0()
	if math.Abs(got-math.E) > 1e-9 {
		t.Errorf("expected e^1, got %.12f", got)
	}
}

func TestIntegratePrimeConstant(t *testing.T) {
	got := IntegratePrime(func(t float64) float64 { return 1 }, 0, 5)
	if math.Abs(got-5) > 1e-9 {
		t.Errorf("integral of 1 from 0 to 5 should be 5, got %.9f", got)
	}
}

func TestIntegratePrimeLinear(t *testing.T) {
	got := IntegratePrime(func(t float64) float64 { return t }, 0, 2)
	if math.Abs(got-2) > 1e-6 {
		t.Errorf("integral of t from 0 to 2 should be 2, got %.9f", got)
	}
}

func TestLineIntegralConstantFunction(t *testing.T) {
	got := LineIntegral(func(u complex128) complex128 { return 1 }, 0, complex(1, 0))
	if cmplx.Abs(got-1) > 1e-6 {
		t.Errorf("line integral of 1 over [0,1] should be 1, got %v", got)
	}
}

func TestLineIntegralZeroLengthIsZero(t *testing.T) {
	got := LineIntegral(func(u complex128) complex128 { return 1 }, complex(1, 1), complex(1, 1))
	if got != 0 {
		t.Errorf("expected zero-length line integral to be exactly 0, got %v", got)
	}
}

func TestResidueCircOfInverse(t *testing.T) {
	// integral of 1/(z-z0) around a circle centered at z0 is 2*pi*i.
	z0 := complex(1.0, 2.0)
	got := ResidueCirc(func(z complex128) complex128 { return 1 / (z - z0) }, z0, 0.5)
	want := complex(0, 2*math.Pi)
	if cmplx.Abs(got-want) > 1e-4 {
		t.Errorf("residue of 1/(z-z0): got %v, want %v", got, want)
	}
}

func TestResidueSquareOfInverse(t *testing.T) {
	z0 := complex(0.0, 0.0)
	got := ResidueSquare(func(z complex128) complex128 { return 1 / (z - z0) }, z0, 1.0)
	want := complex(0, 2*math.Pi)
	if cmplx.Abs(got-want) > 1e-3 {
		t.Errorf("residue of 1/z around a unit square: got %v, want %v", got, want)
	}
}

func TestLinesIntegralPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected LinesIntegral to panic on an empty polyline")
		}
	}()
	LinesIntegral(func(complex128) complex128 { return 0 }, nil)
}

func TestPolyIntegralPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected PolyIntegral to panic on an empty polyline")
		}
	}()
	PolyIntegral(func(complex128) complex128 { return 0 }, nil)
}

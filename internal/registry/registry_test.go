package registry

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/odeflow/internal/odeerr"
	"github.com/san-kum/odeflow/internal/stepctrl"
)

func TestFunctionLookup(t *testing.T) {
	r := New()
	fn, err := r.Function("exp", Params{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fn(1); math.Abs(got-math.E) > 1e-6 {
		t.Errorf("exp(1): got %g, want %g", got, math.E)
	}
}

func TestFunctionUnknownName(t *testing.T) {
	r := New()
	_, err := r.Function("nope", Params{})
	if !errors.Is(err, odeerr.ErrUnknownFunction) {
		t.Errorf("expected ErrUnknownFunction, got %v", err)
	}
}

func TestBesselJ2TakesOrderFromParams(t *testing.T) {
	r := New()
	fn, err := r.Function("besselJ2", Params{A: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := fn(1); math.Abs(got-math.J0(1)) > 1e-4 {
		t.Errorf("besselJ2(0,1): got %g, want %g", got, math.J0(1))
	}
}

func TestIntegratorLookup(t *testing.T) {
	r := New()
	integ, err := r.Integrator("dopri5", stepctrl.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if integ == nil {
		t.Fatal("expected a non-nil integrator")
	}
}

func TestIntegratorUnknownName(t *testing.T) {
	r := New()
	_, err := r.Integrator("nope", stepctrl.Default())
	if !errors.Is(err, odeerr.ErrUnknownIntegrator) {
		t.Errorf("expected ErrUnknownIntegrator, got %v", err)
	}
}

func TestGetRecipeKnown(t *testing.T) {
	r := New()
	recipe, err := r.GetRecipe("exp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if recipe.T0 != 0 {
		t.Errorf("expected exp recipe anchored at t0=0, got %g", recipe.T0)
	}
	got := recipe.RHS(0, recipe.Y0)
	if got.At0() != 1 {
		t.Errorf("expected exp recipe RHS(y)=y at anchor, got %g", got.At0())
	}
}

func TestGetRecipeUnknown(t *testing.T) {
	r := New()
	_, err := r.GetRecipe("erf")
	if !errors.Is(err, odeerr.ErrUnknownFunction) {
		t.Errorf("expected ErrUnknownFunction for a catalogue entry with no recipe, got %v", err)
	}
}

func TestListFunctionsIncludesCoreEntries(t *testing.T) {
	r := New()
	names := make(map[string]bool)
	for _, n := range r.ListFunctions() {
		names[n] = true
	}
	for _, want := range []string{"exp", "log", "sin", "cos", "erf", "besselJ2"} {
		if !names[want] {
			t.Errorf("expected %q in ListFunctions()", want)
		}
	}
}

func TestListIntegratorsIncludesAllThree(t *testing.T) {
	r := New()
	names := make(map[string]bool)
	for _, n := range r.ListIntegrators() {
		names[n] = true
	}
	for _, want := range []string{"euler", "rk4", "dopri5"} {
		if !names[want] {
			t.Errorf("expected %q in ListIntegrators()", want)
		}
	}
}

func TestListRecipesMatchesRegisteredRecipes(t *testing.T) {
	r := New()
	names := make(map[string]bool)
	for _, n := range r.ListRecipes() {
		names[n] = true
	}
	for _, want := range []string{"exp", "log", "sin"} {
		if !names[want] {
			t.Errorf("expected %q in ListRecipes()", want)
		}
	}
	if len(names) != 3 {
		t.Errorf("expected exactly 3 recipes, got %d", len(names))
	}
}

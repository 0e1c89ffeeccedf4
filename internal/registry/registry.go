// Package registry catalogues the special functions and integrator
// constructors this library exposes by name: a map-of-constructors
// keyed by name, with GetX/ListX lookups over scalar special functions
// and ODE integrators.
package registry

import (
	"fmt"

	"github.com/san-kum/odeflow/internal/facade"
	"github.com/san-kum/odeflow/internal/integrators"
	"github.com/san-kum/odeflow/internal/odeerr"
	"github.com/san-kum/odeflow/internal/special"
	"github.com/san-kum/odeflow/internal/stepctrl"
	"github.com/san-kum/odeflow/internal/vecalg"
)

// Recipe is the raw IVP behind a catalogue entry: the right-hand side,
// anchor time, and anchor value, exposed separately from ScalarFunc so
// a caller can re-solve it under a different integrator (see
// internal/concurrent.CompareIntegrators).
type Recipe struct {
	RHS facade.SimpleIntegrand
	T0  float64
	Y0  vecalg.Vector
}

// ScalarFunc is the uniform shape every catalogue entry is exposed as:
// a real-valued function of one real variable.
type ScalarFunc func(t float64) float64

// Params bundles the extra scalar arguments a handful of catalogue
// entries need (order, elliptic parameter, fixed point), mirroring
// config.ParamsConfig.
type Params struct {
	A, M, Z, R float64
}

// Registry is the name -> constructor catalogue.
type Registry struct {
	functions   map[string]func(Params) ScalarFunc
	integrators map[string]func(stepctrl.Control) integrators.Integrator
	recipes     map[string]Recipe
}

// New builds the catalogue with every function from internal/special
// and every integrator from internal/integrators registered.
func New() *Registry {
	r := &Registry{
		functions:   make(map[string]func(Params) ScalarFunc),
		integrators: make(map[string]func(stepctrl.Control) integrators.Integrator),
		recipes:     make(map[string]Recipe),
	}

	r.functions["exp"] = func(Params) ScalarFunc { return special.Exp }
	r.functions["log"] = func(Params) ScalarFunc { return special.Log }
	r.functions["sin"] = func(Params) ScalarFunc { return special.Sin }
	r.functions["cos"] = func(Params) ScalarFunc { return special.Cos }
	r.functions["erf"] = func(Params) ScalarFunc { return special.Erf }
	r.functions["erfc"] = func(Params) ScalarFunc { return special.Erfc }
	r.functions["airyAi"] = func(Params) ScalarFunc { return special.AiryAi }
	r.functions["airyBi"] = func(Params) ScalarFunc { return special.AiryBi }
	r.functions["fresnelC"] = func(Params) ScalarFunc { return special.FresnelC }
	r.functions["fresnelS"] = func(Params) ScalarFunc { return special.FresnelS }
	r.functions["sinc"] = func(Params) ScalarFunc { return special.Sinc }
	r.functions["si"] = func(Params) ScalarFunc { return special.Si }
	r.functions["ein"] = func(Params) ScalarFunc { return special.Ein }
	r.functions["cin"] = func(Params) ScalarFunc { return special.Cin }
	r.functions["chin"] = func(Params) ScalarFunc { return special.Chin }
	r.functions["ellipticK"] = func(Params) ScalarFunc { return special.EllipticK }
	r.functions["ellipticE"] = func(Params) ScalarFunc { return special.EllipticE }
	r.functions["besselJ2"] = func(p Params) ScalarFunc {
		return func(x float64) float64 { return special.BesselJ2(p.A, x) }
	}
	r.functions["besselY2"] = func(p Params) ScalarFunc {
		return func(x float64) float64 { return special.BesselY2(p.A, x) }
	}
	r.functions["polygamma2"] = func(p Params) ScalarFunc {
		m := int(p.A)
		return func(z float64) float64 { return special.Polygamma2(m, z) }
	}

	r.recipes["exp"] = Recipe{
		RHS: func(_ float64, y vecalg.Vector) vecalg.Vector { return y },
		T0:  0,
		Y0:  vecalg.Real(1),
	}
	r.recipes["log"] = Recipe{
		RHS: func(t float64, _ vecalg.Vector) vecalg.Vector { return vecalg.Real(1 / t) },
		T0:  1,
		Y0:  vecalg.Real(0),
	}
	r.recipes["sin"] = Recipe{
		RHS: func(_ float64, s vecalg.Vector) vecalg.Vector {
			y, z := s[0], s[1]
			return vecalg.FromComplex(z, -y)
		},
		T0: 0,
		Y0: vecalg.FromComplex(0, 1),
	}

	r.integrators["euler"] = func(stepctrl.Control) integrators.Integrator {
		return integrators.NewEuler(0.01)
	}
	r.integrators["rk4"] = func(stepctrl.Control) integrators.Integrator {
		return integrators.NewRK4(0.01)
	}
	r.integrators["dopri5"] = func(ctrl stepctrl.Control) integrators.Integrator {
		return integrators.NewDOPRI5(ctrl, 0)
	}

	return r
}

// Function looks up a catalogue entry by name, binding it against p.
func (r *Registry) Function(name string, p Params) (ScalarFunc, error) {
	fn, ok := r.functions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", odeerr.ErrUnknownFunction, name)
	}
	return fn(p), nil
}

// Integrator looks up an integrator constructor by name.
func (r *Registry) Integrator(name string, ctrl stepctrl.Control) (integrators.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", odeerr.ErrUnknownIntegrator, name)
	}
	return fn(ctrl), nil
}

// ListFunctions lists every registered function name.
func (r *Registry) ListFunctions() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	return names
}

// GetRecipe looks up a raw IVP by name, for callers that need to
// re-solve a catalogue entry's recipe under a chosen integrator rather
// than the fixed DOPRI5 baked into its ScalarFunc.
func (r *Registry) GetRecipe(name string) (Recipe, error) {
	recipe, ok := r.recipes[name]
	if !ok {
		return Recipe{}, fmt.Errorf("%w: %q has no re-solvable recipe", odeerr.ErrUnknownFunction, name)
	}
	return recipe, nil
}

// ListRecipes lists the catalogue entries that expose a re-solvable
// recipe.
func (r *Registry) ListRecipes() []string {
	names := make([]string, 0, len(r.recipes))
	for name := range r.recipes {
		names = append(names, name)
	}
	return names
}

// ListIntegrators lists every registered integrator name.
func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	return names
}

package config

// Presets are named starting points grouped by catalogue function, a
// two-level Presets[function][name] map keyed on the function being
// queried.
var Presets = map[string]map[string]*Config{
	"exp": {
		"unit": {Function: "exp", Integrator: "dopri5", T0: 0, T1: 5, Samples: 200},
		"decay": {
			Function: "exp", Integrator: "dopri5", T0: 0, T1: -5, Samples: 200,
		},
	},
	"log": {
		"unit": {Function: "log", Integrator: "dopri5", T0: 1, T1: 20, Samples: 200},
	},
	"sin": {
		"cycle":  {Function: "sin", Integrator: "dopri5", T0: 0, T1: 6.283185307179586, Samples: 400},
		"cycles": {Function: "sin", Integrator: "rk4", T0: 0, T1: 62.83185307179586, Samples: 4000},
	},
	"erf": {
		"transition": {Function: "erf", Integrator: "dopri5", T0: -4, T1: 4, Samples: 400},
	},
	"airyAi": {
		"transition": {Function: "airyAi", Integrator: "dopri5", T0: -10, T1: 5, Samples: 600},
	},
	"airyBi": {
		"transition": {Function: "airyBi", Integrator: "dopri5", T0: -10, T1: 3, Samples: 600},
	},
	"besselJ2": {
		"order0": {Function: "besselJ2", Integrator: "dopri5", T0: 0.1, T1: 20, Samples: 400, Params: ParamsConfig{A: 0}},
		"order1": {Function: "besselJ2", Integrator: "dopri5", T0: 0.1, T1: 20, Samples: 400, Params: ParamsConfig{A: 1}},
	},
	"ellipticK": {
		"approach": {Function: "ellipticK", Integrator: "dopri5", T0: 0, T1: 0.99, Samples: 200},
	},
	"fresnelC": {
		"spiral": {Function: "fresnelC", Integrator: "dopri5", T0: -6, T1: 6, Samples: 600},
	},
}

// GetPreset looks up a named preset within a function's group.
func GetPreset(function, name string) *Config {
	group, ok := Presets[function]
	if !ok {
		return nil
	}
	cfg, ok := group[name]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets lists the preset names available for a function.
func ListPresets(function string) []string {
	group, ok := Presets[function]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}

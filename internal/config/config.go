// Package config loads and saves the YAML query configuration the CLI
// and TUI build integrator streams from: a function/integrator/
// tolerance query config over gopkg.in/yaml.v3.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/odeflow/internal/stepctrl"
)

const (
	DefaultAtol    = 1e-16
	DefaultRtol    = 1e-16
	DefaultT0      = 0.0
	DefaultT1      = 10.0
	DefaultSamples = 200
)

// Config describes one query against the special-function catalogue:
// which function, which integrator, over what tolerance and time
// range, sampled how finely.
type Config struct {
	Function   string       `yaml:"function"`
	Integrator string       `yaml:"integrator"`
	Atol       float64      `yaml:"atol"`
	Rtol       float64      `yaml:"rtol"`
	T0         float64      `yaml:"t0"`
	T1         float64      `yaml:"t1"`
	Samples    int          `yaml:"samples"`
	Params     ParamsConfig `yaml:"params"`
}

// ParamsConfig carries the handful of extra scalar parameters some
// catalogue entries need (Bessel/polygamma order, elliptic parameter,
// a fixed evaluation point, residue-loop radius).
type ParamsConfig struct {
	A float64 `yaml:"a"` // order: bessel, polygamma
	M float64 `yaml:"m"` // elliptic parameter
	Z float64 `yaml:"z"` // polygamma argument
	R float64 `yaml:"r"` // residue loop radius
}

func DefaultConfig() *Config {
	return &Config{
		Function:   "exp",
		Integrator: "dopri5",
		Atol:       DefaultAtol,
		Rtol:       DefaultRtol,
		T0:         DefaultT0,
		T1:         DefaultT1,
		Samples:    DefaultSamples,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// StepControl builds the adaptive step-control policy this config
// describes, falling back to the library defaults when Atol/Rtol are
// left at the YAML zero value rather than set explicitly. A negative
// tolerance is a programmer error, not a query to reject gracefully,
// so it panics rather than silently substituting the default.
func (c *Config) StepControl() stepctrl.Control {
	if c.Atol < 0 {
		panic("config: negative Atol")
	}
	if c.Rtol < 0 {
		panic("config: negative Rtol")
	}
	ctrl := stepctrl.Default()
	if c.Atol > 0 {
		ctrl.Atol = c.Atol
	}
	if c.Rtol > 0 {
		ctrl.Rtol = c.Rtol
	}
	return ctrl
}

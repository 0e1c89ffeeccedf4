// Package odeerr collects the sentinel errors the ambient layers
// (config, storage, registry lookups, the CLI) report: a flat block
// of wrapped sentinels plus one context-carrying wrapper type. The
// numeric core itself never returns these; per the library's
// NaN-propagation contract, a failed query yields a NaN vector, not
// an error.
package odeerr

import "errors"

var (
	// ErrUnknownFunction indicates a catalogue lookup for a function
	// name the registry doesn't have.
	ErrUnknownFunction = errors.New("odeflow: unknown function")

	// ErrUnknownIntegrator indicates a catalogue lookup for an
	// integrator name the registry doesn't have.
	ErrUnknownIntegrator = errors.New("odeflow: unknown integrator")

	// ErrUnknownPreset indicates a preset lookup that found no match.
	ErrUnknownPreset = errors.New("odeflow: unknown preset")

	// ErrInvalidConfig indicates a query configuration with an
	// out-of-domain sample count or time range.
	ErrInvalidConfig = errors.New("odeflow: invalid query configuration")

	// ErrDivergent indicates a sampled query returned a NaN vector,
	// i.e. the underlying stream switched to NaN-propagation.
	ErrDivergent = errors.New("odeflow: query diverged (NaN propagation)")
)

// QueryError wraps an error with the query context that produced it.
type QueryError struct {
	Function string
	T        float64
	Wrapped  error
}

func (e *QueryError) Error() string {
	return e.Wrapped.Error() + " (function=" + e.Function + ")"
}

func (e *QueryError) Unwrap() error {
	return e.Wrapped
}

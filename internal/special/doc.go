// Package special is the mathematical function catalogue: each entry
// is specified as an ODE recipe with an initial condition and
// evaluated through the facade/integrators machinery rather than a
// closed-form series, per the library's central conceit that a
// special function is just a query against a solved IVP.
//
// Every exported function builds a fresh stream on each call; nothing
// here is cached across calls, matching the pure-evaluator contract
// the stream package requires (a stream must not depend on hidden
// state shared between callers).
package special

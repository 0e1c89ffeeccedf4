package integrators

import (
	"math"

	"github.com/san-kum/odeflow/internal/stream"
	"github.com/san-kum/odeflow/internal/vecalg"
)

// Result pairs a stream's emitted value with bookkeeping about the
// integration work done to reach it, so Statistics travels immutably
// with each successor instead of living behind a shared mutable
// pointer (which would break the independence two differently-queried
// branches of the same stream are required to keep).
type Result struct {
	Y     vecalg.Vector
	Stats Statistics
}

// ResultStream is what every integrator in this package constructs.
type ResultStream = stream.Stream[float64, Result]

// Values projects a ResultStream down to a plain YStream, discarding
// statistics, for callers (the façade, the math-function library) that
// only care about y(t).
func Values(s ResultStream) YStream {
	return stream.Map(func(r Result) vecalg.Vector { return r.Y }, s)
}

// Integrator is the common interface every fixed-step or adaptive
// method in this package satisfies.
type Integrator interface {
	Solve(f Integrand, t0 float64, xs AuxStream, y0 vecalg.Vector) ResultStream
}

func nanResultForever(dim int) ResultStream {
	v := vecalg.NaNVector(dim)
	var self ResultStream
	self = stream.NewLazy(
		func() Result { return Result{Y: v, Stats: Statistics{}} },
		func(float64) ResultStream { return self },
	)
	return self
}

func anyNaN(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}

// Package concurrent runs independent whole integrations side by
// side: one goroutine per independent run, joined, with each run's
// error recorded on its own Run, for parallel sampling of one function
// under several integrators. Nothing here ever parallelizes a single stream's own
// evaluation - each goroutine owns an independent stream from its own
// anchor.
package concurrent

import (
	"sync"

	"github.com/san-kum/odeflow/internal/integrators"
	"github.com/san-kum/odeflow/internal/stream"
	"github.com/san-kum/odeflow/internal/vecalg"
)

// Run is one integrator's sampled trace over a shared set of query
// points, plus the bookkeeping the final query point's step left
// behind.
type Run struct {
	Name   string
	Values []vecalg.Vector
	Stats  integrators.Statistics
	Err    error
}

// CompareIntegrators samples f under each named integrator at every
// point in ts concurrently and returns one Run per integrator, in the
// same order as names was given.
func CompareIntegrators(f integrators.Integrand, t0 float64, xs integrators.AuxStream, y0 vecalg.Vector, ts []float64, names []string, build func(name string) (integrators.Integrator, error)) []Run {
	runs := make([]Run, len(names))

	var wg sync.WaitGroup
	wg.Add(len(names))
	for i, name := range names {
		go func(idx int, n string) {
			defer wg.Done()
			runs[idx] = sampleOne(f, t0, xs, y0, ts, n, build)
		}(i, name)
	}
	wg.Wait()

	return runs
}

// CompareSimple is CompareIntegrators for a recipe with no auxiliary
// driving stream, the common case for the special-function catalogue:
// it supplies stream.Bottom as the auxiliary and lifts f to ignore it,
// the same lifting facade.SimpleIntegrator does for a single
// integrator.
func CompareSimple(f func(t float64, y vecalg.Vector) vecalg.Vector, t0 float64, y0 vecalg.Vector, ts []float64, names []string, build func(name string) (integrators.Integrator, error)) []Run {
	g := func(t float64, _, y vecalg.Vector) vecalg.Vector { return f(t, y) }
	xs := stream.Bottom[float64, vecalg.Vector]()
	return CompareIntegrators(g, t0, xs, y0, ts, names, build)
}

func sampleOne(f integrators.Integrand, t0 float64, xs integrators.AuxStream, y0 vecalg.Vector, ts []float64, name string, build func(name string) (integrators.Integrator, error)) Run {
	integ, err := build(name)
	if err != nil {
		return Run{Name: name, Err: err}
	}

	results := integ.Solve(f, t0, xs, y0)
	values, tail := stream.QueryMany(results, ts)

	run := Run{Name: name, Values: make([]vecalg.Vector, len(values))}
	for i, r := range values {
		run.Values[i] = r.Y
	}
	run.Stats = tail.Head().Stats
	return run
}

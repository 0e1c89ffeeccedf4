// Package integrators implements the fixed-step Euler and RK4
// integrators and the adaptive Dormand-Prince 5(4) integrator, each
// exposed as a constructor of a lazy stream.Stream[float64, Result]
// (projected to a YStream by Values) that carries its own state
// between queries instead of relying on a caller-driven simulation
// loop.
package integrators

import (
	"github.com/san-kum/odeflow/internal/stream"
	"github.com/san-kum/odeflow/internal/vecalg"
)

// Integrand is a pure right-hand side dy/dt = f(t, x(t), y(t)). x is
// the auxiliary driving signal's current value; integrands that don't
// use one are expected to ignore it (see stream.Bottom).
type Integrand func(t float64, x, y vecalg.Vector) vecalg.Vector

// AuxStream is the auxiliary signal stream threaded alongside y.
type AuxStream = stream.Stream[float64, vecalg.Vector]

// YStream is the plain solution stream Values projects an integrator's
// ResultStream onto.
type YStream = stream.Stream[float64, vecalg.Vector]

// Statistics reports bookkeeping about an adaptive integration: how
// many steps were taken, how many rejected, and the size of the last
// accepted step.
type Statistics struct {
	StepCount, RejectedCount, EvaluationCount int
	LastStepSize                              float64
}

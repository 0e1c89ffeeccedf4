// Package stream implements the lazy query stream abstraction: a
// memoized evaluator T -> (A, Stream[T, A]) that carries integrator
// state across successive queries at advancing keys, built as an
// opaque handle holding state plus a function pointer to its advance
// routine, since Go has no native lazy evaluation to build on.
package stream

// Stream is a pair of a (possibly deferred) head value and a tail
// function producing a new stream anchored at the given key.
type Stream[T any, A any] struct {
	head func() A
	tail func(T) Stream[T, A]
}

// New builds a stream from an eager head value and a tail function.
func New[T any, A any](head A, tail func(T) Stream[T, A]) Stream[T, A] {
	return Stream[T, A]{head: func() A { return head }, tail: tail}
}

// NewLazy builds a stream whose head is computed when it is read (again
// on every read; the result is not cached), used by Bottom to defer
// (and ultimately reject) the read.
func NewLazy[T any, A any](head func() A, tail func(T) Stream[T, A]) Stream[T, A] {
	return Stream[T, A]{head: head, tail: tail}
}

// Head returns the stream's current anchor value.
func (s Stream[T, A]) Head() A { return s.head() }

// Query returns the value at t and a successor stream anchored at t.
func (s Stream[T, A]) Query(t T) (A, Stream[T, A]) {
	next := s.tail(t)
	return next.Head(), next
}

// Seek discards the value at t, keeping only the successor.
func (s Stream[T, A]) Seek(t T) Stream[T, A] {
	return s.tail(t)
}

// Get keeps the value at t, discarding the successor.
func (s Stream[T, A]) Get(t T) A {
	return s.tail(t).Head()
}

// QueryMany scans across ts in order, threading state through each
// query and collecting the emitted values.
func QueryMany[T any, A any](s Stream[T, A], ts []T) ([]A, Stream[T, A]) {
	out := make([]A, len(ts))
	cur := s
	for i, t := range ts {
		var v A
		v, cur = cur.Query(t)
		out[i] = v
	}
	return out, cur
}

// Map post-composes g onto every value a stream emits.
func Map[T any, A any, B any](g func(A) B, s Stream[T, A]) Stream[T, B] {
	return NewLazy(
		func() B { return g(s.Head()) },
		func(t T) Stream[T, B] { return Map(g, s.tail(t)) },
	)
}

// Premap pre-composes h onto every incoming key before it reaches s.
func Premap[T any, U any, A any](s Stream[U, A], h func(T) U) Stream[T, A] {
	return NewLazy(
		s.head,
		func(t T) Stream[T, A] { return Premap(s.tail(h(t)), h) },
	)
}

// Compose builds f ∘ g: g consumes T and produces U, which feeds f
// (a stream keyed on U) to produce V.
func Compose[T any, U any, V any](f Stream[U, V], g Stream[T, U]) Stream[T, V] {
	return NewLazy(
		f.head,
		func(t T) Stream[T, V] {
			u, gNext := g.Query(t)
			return Compose(f.Seek(u), gNext)
		},
	)
}

// Pure builds a stream anchored at t0 that re-derives its value from
// each key via k, with no carried state beyond the current anchor.
func Pure[T any, A any](t0 T, k func(T) A) Stream[T, A] {
	var self func(t T) Stream[T, A]
	self = func(t T) Stream[T, A] {
		return NewLazy(
			func() A { return k(t) },
			self,
		)
	}
	return self(t0)
}

// Const builds a stream that emits a forever, ignoring every key.
func Const[T any, A any](a A) Stream[T, A] {
	var self Stream[T, A]
	self = NewLazy(
		func() A { return a },
		func(T) Stream[T, A] { return self },
	)
	return self
}

// Bottom builds a stream whose head must never be read: reading it is
// a programmer error and panics, matching the contract for auxiliary
// streams an integrand declares it will ignore.
func Bottom[T any, A any]() Stream[T, A] {
	var self Stream[T, A]
	self = NewLazy(
		func() A { panic("stream: read of bottom value") },
		func(T) Stream[T, A] { return self },
	)
	return self
}

// Seq sequences a slice of streams element-wise into a stream of
// slices: querying the result at t queries every input stream at t.
func Seq[T any, A any](ss []Stream[T, A]) Stream[T, []A] {
	heads := make([]A, len(ss))
	for i, s := range ss {
		heads[i] = s.Head()
	}
	return New(heads, func(t T) Stream[T, []A] {
		next := make([]Stream[T, A], len(ss))
		for i, s := range ss {
			next[i] = s.tail(t)
		}
		return Seq(next)
	})
}

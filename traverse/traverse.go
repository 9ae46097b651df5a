// Package traverse provides convenience Traceable compositions for user
// element types built out of the standard containers named in spec §6:
// ordered sequences, optional singletons, tuples and boxed values. None of
// this is part of the collector's core; it is pure glue a user's Trace
// method can delegate to instead of hand-rolling the same iteration every
// time.
package traverse

import "github.com/jasoncarr0/moving-gc-arena/arena"

// Tracer is a fragment of a Trace implementation: given a yield callback, it
// invokes yield once per Ix it owns. A user type's own Trace method is
// itself a Tracer; these combinators build bigger ones out of smaller ones.
type Tracer[T any] func(yield func(*arena.Ix[T]))

// Self treats ix itself as the single owned index — the identity
// composition, for a user type whose only internal reference is itself.
func Self[T any](ix *arena.Ix[T]) Tracer[T] {
	return func(yield func(*arena.Ix[T])) { yield(ix) }
}

// Slice traces every element of an ordered sequence of indices.
func Slice[T any](s []arena.Ix[T]) Tracer[T] {
	return func(yield func(*arena.Ix[T])) {
		for i := range s {
			yield(&s[i])
		}
	}
}

// Option is an optional Ix, traced zero or one times. It is a plain struct
// rather than a pointer so that an absent index costs no extra allocation
// and no indirection, matching the arena's own dense-storage discipline.
type Option[T any] struct {
	Value   arena.Ix[T]
	Present bool
}

// Some returns a present Option wrapping ix.
func Some[T any](ix arena.Ix[T]) Option[T] {
	return Option[T]{Value: ix, Present: true}
}

// Optional traces o's value iff it is present.
func Optional[T any](o *Option[T]) Tracer[T] {
	return func(yield func(*arena.Ix[T])) {
		if o.Present {
			yield(&o.Value)
		}
	}
}

// Box delegates to an already-built Tracer for a boxed (singly-indirected)
// sub-value. It exists for symmetry with the other combinators: wrapping a
// nested value's own Trace-derived Tracer makes the delegation explicit at
// the call site.
func Box[T any](inner Tracer[T]) Tracer[T] { return inner }

// Tuple2 traces two components of a tuple in order.
func Tuple2[T any](a, b Tracer[T]) Tracer[T] {
	return func(yield func(*arena.Ix[T])) {
		a(yield)
		b(yield)
	}
}

// Tuple3 traces three components of a tuple in order.
func Tuple3[T any](a, b, c Tracer[T]) Tracer[T] {
	return func(yield func(*arena.Ix[T])) {
		a(yield)
		b(yield)
		c(yield)
	}
}

// All concatenates an arbitrary number of Tracers, for tuples wider than
// three or for types that would rather build their Trace as a list.
func All[T any](parts ...Tracer[T]) Tracer[T] {
	return func(yield func(*arena.Ix[T])) {
		for _, p := range parts {
			p(yield)
		}
	}
}

package arena

// Traceable is the capability a user element type T must implement so the
// collector can discover and rewrite every internal index T owns. Trace
// must invoke yield exactly once per owned Ix, passing a pointer so the
// collector can overwrite it in place with the forwarded index.
//
// Trace needs exclusive access to the real, in-place value (so the
// collector's rewrite sticks), which means it is naturally implemented with
// a pointer receiver on the user's type — e.g. func (n *Node) Trace(yield
// func(*Ix[Node])). Region is therefore parameterised over both the value
// type T it stores densely and the pointer type PT = *T that actually
// carries the Trace method, the same self-referencing-pointer pattern used
// anywhere Go generics need a value type whose pointer implements an
// interface (see DESIGN.md).
//
// Implementations of Traceable for compound types built from slices,
// optional pointers, tuples and boxed values live in the sibling traverse
// package; they are conveniences, not part of this contract.
type Traceable[T any] interface {
	Trace(yield func(ix *Ix[T]))
}

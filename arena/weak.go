package arena

// Weak is a non-owning external handle: it observes an anchor cell without
// keeping the object alive. Its target may be reclaimed by any subsequent
// collection, after which the Weak reports itself expired.
type Weak[T any] struct {
	cell *anchor[T]
}

// Ix returns the anchor's current index if the target is still live, or
// false if it has expired.
func (w Weak[T]) Ix() (Ix[T], bool) {
	if w.cell == nil || !w.cell.alive() {
		return Ix[T]{}, false
	}
	return w.cell.ix, true
}

// WeakGet, WeakGetMut, WeakTryGet and WeakTryGetMut are free functions for
// the same reason the Root and Ix accessors are: only a type carrying the
// PT parameter can reach into Region.
func WeakGet[T any, PT interface {
	*T
	Traceable[T]
}](w Weak[T], r *Region[T, PT]) *T {
	v, err := WeakTryGet(w, r)
	if err != nil {
		panic(err)
	}
	return v
}

func WeakGetMut[T any, PT interface {
	*T
	Traceable[T]
}](w Weak[T], r *Region[T, PT]) *T {
	return WeakGet(w, r)
}

func WeakTryGet[T any, PT interface {
	*T
	Traceable[T]
}](w Weak[T], r *Region[T, PT]) (*T, error) {
	ix, ok := w.Ix()
	if !ok {
		return nil, ErrEntryExpired
	}
	return r.TryGet(ix)
}

func WeakTryGetMut[T any, PT interface {
	*T
	Traceable[T]
}](w Weak[T], r *Region[T, PT]) (*T, error) {
	return WeakTryGet(w, r)
}

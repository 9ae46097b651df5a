package arena

// Disposer is an optional capability a user element type T may implement to
// observe reclamation. The collector calls Dispose on every value it leaves
// behind in the source store once a collection's copy phase has finished,
// giving Go code an explicit "dropped" hook (Go's own GC gives no such
// signal, and spec requires dead values be dropped exactly once, not
// eventually).
type Disposer interface {
	Dispose()
}

type spotKind uint8

const (
	spotPresent spotKind = iota
	spotBrokenHeart
)

// spot is a slot in a Region's backing store: either Present (holds a live
// Entry) or a BrokenHeart (a forwarding index left behind by a relocation
// already in progress).
type spot[T any] struct {
	kind  spotKind
	entry entry[T]
	heart Ix[T]
}

func presentSpot[T any](e entry[T]) spot[T] {
	return spot[T]{kind: spotPresent, entry: e}
}

// moveTo forwards this spot: if it held an anchor, the anchor's observed
// index is updated to newIx first, so any external handle that inspects it
// mid-collection already sees the destination address. The spot itself
// becomes a BrokenHeart(newIx) and the original Present contents are
// returned so the caller can install them at the destination.
func (s *spot[T]) moveTo(newIx Ix[T]) entry[T] {
	if s.kind != spotPresent {
		internalPanic("moveTo called on a non-present spot")
	}
	old := s.entry
	old.moveTo(newIx)
	s.entry = entry[T]{}
	s.kind = spotBrokenHeart
	s.heart = newIx
	return old
}

// dispose drops the contained value if the spot is still Present, invoking
// Disposer.Dispose when the value implements it. A BrokenHeart disposes of
// nothing: its value already moved to the destination store.
//
// A Present spot reaching dispose is, by construction, one the root-forward
// and scan passes never reached, so any anchor it holds has no live Root
// share left (see anchor.hasLiveRoot). Clearing entryHeld here is what
// makes that anchor's death observable to a Weak immediately, rather than
// leaving alive() reporting true forever because nothing ever called
// checkClearRC for it.
func (s *spot[T]) dispose() {
	if s.kind != spotPresent {
		return
	}
	if s.entry.anchor != nil {
		s.entry.anchor.entryHeld = false
	}
	if d, ok := any(&s.entry.value).(Disposer); ok {
		d.Dispose()
	}
	s.entry = entry[T]{}
}

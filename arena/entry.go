package arena

// entry is the Present variant's payload: the user value plus an anchor
// that is created lazily, the first time some external handle is requested
// for this slot.
type entry[T any] struct {
	value  T
	anchor *anchor[T]
}

// weak returns a non-owning observer of this entry's anchor, creating the
// anchor (and the Entry's own strong share of it) on first use.
func (e *entry[T]) weak(selfIndex Ix[T]) Weak[T] {
	if e.anchor == nil {
		e.anchor = &anchor[T]{ix: selfIndex, entryHeld: true}
	}
	return Weak[T]{cell: e.anchor}
}

// root returns an owning handle sharing this entry's anchor, creating it if
// necessary, exactly like weak.
func (e *entry[T]) root(selfIndex Ix[T]) Root[T] {
	if e.anchor == nil {
		e.anchor = &anchor[T]{ix: selfIndex, entryHeld: true}
	}
	e.anchor.addRootStrong()
	return Root[T]{cell: e.anchor}
}

// moveTo updates the anchor (if any) to reflect this entry's new location.
func (e *entry[T]) moveTo(newIndex Ix[T]) {
	if e.anchor != nil {
		e.anchor.ix = newIndex
	}
}

// checkClearRC lets the entry give up its own strong share of the anchor
// once no Root observes it anymore, so the anchor can be reported as dead
// (and Weak handles report expired) without waiting for a further
// collection to physically sweep the slot. Purely an optimization: nothing
// breaks if this is skipped for a cycle, per spec §4.5.
func (e *entry[T]) checkClearRC() {
	if e.anchor != nil && e.anchor.entryHeld && e.anchor.rootStrong == 0 {
		e.anchor.entryHeld = false
	}
}

func (e *entry[T]) get() *T    { return &e.value }
func (e *entry[T]) getMut() *T { return &e.value }

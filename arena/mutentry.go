package arena

// MutEntry is the temporary handle returned by Region.Alloc. It exclusively
// borrows the Region for its lifetime (the type system does not enforce
// this in Go, but nothing in this package's API lets you obtain a second
// mutable view of the same Region while a MutEntry exists — do not stash
// one across a call that might collect).
type MutEntry[T any, PT interface {
	*T
	Traceable[T]
}] struct {
	region *Region[T, PT]
	ix     Ix[T]
	cell   *anchor[T] // cached once Root or Weak first creates it
	rooted bool       // whether cell has already been registered in region.roots
}

// Ix returns the new element's index.
func (m MutEntry[T, PT]) Ix() Ix[T] { return m.ix }

// Get returns a reference to the new element's value.
func (m MutEntry[T, PT]) Get() *T { return m.region.Get(m.ix) }

// GetMut is Get, kept distinct to mirror &T / &mut T.
func (m MutEntry[T, PT]) GetMut() *T { return m.region.GetMut(m.ix) }

func (m *MutEntry[T, PT]) spotEntry() *entry[T] {
	return &m.region.spots[m.ix.offsetValue()].entry
}

// Weak creates a Weak observer of the new element, allocating its anchor on
// first use (shared with a later or earlier call to Root).
func (m *MutEntry[T, PT]) Weak() Weak[T] {
	w := m.spotEntry().weak(m.ix)
	m.cell = w.cell
	return w
}

// Root returns an owning handle to the new element, registering it in the
// Region's root set on first use. Repeated calls, including ones after a
// prior Weak() call already forced the anchor into existence, return
// further shares of the same anchor without re-registering a second
// root-set entry.
func (m *MutEntry[T, PT]) Root() Root[T] {
	if m.cell == nil {
		m.cell = m.spotEntry().weak(m.ix).cell
	}
	m.cell.addRootStrong()
	if !m.rooted {
		m.region.roots = append(m.region.roots, m.cell)
		m.rooted = true
	}
	return Root[T]{cell: m.cell}
}

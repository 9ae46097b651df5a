//go:build !arenadiag

package arena

// Ix identifies a spot within a Region at one moment. This is the default,
// non-diagnostic build: a bare offset, word-sized, no region or generation
// bookkeeping. Using an Ix against the wrong Region or after it has gone
// stale is safe but unspecified, per spec.
type Ix[T any] struct {
	offset uint32
}

func newIx[T any](offset uint32, nonce uint64, generation uint32) Ix[T] {
	return Ix[T]{offset: offset}
}

func (ix Ix[T]) offsetValue() uint32 { return ix.offset }

func (ix *Ix[T]) setOffset(o uint32) { ix.offset = o }

func (ix *Ix[T]) stampGeneration(nonce uint64, generation uint32) {}

func (ix Ix[T]) checkAgainst(nonce uint64, generation uint32) error { return nil }

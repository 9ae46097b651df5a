//go:build arenadiag

package arena

// Ix identifies a spot within a Region at one moment. Under the arenadiag
// build it additionally carries the Region's nonce and the generation it
// was last forwarded in, so that CheckRegion can distinguish a wrong-region
// index from a stale one.
type Ix[T any] struct {
	offset      uint32
	regionNonce uint64
	generation  uint32
}

func newIx[T any](offset uint32, nonce uint64, generation uint32) Ix[T] {
	return Ix[T]{offset: offset, regionNonce: nonce, generation: generation}
}

func (ix Ix[T]) offsetValue() uint32 { return ix.offset }

func (ix *Ix[T]) setOffset(o uint32) { ix.offset = o }

func (ix *Ix[T]) stampGeneration(nonce uint64, generation uint32) {
	ix.regionNonce = nonce
	ix.generation = generation
}

// checkAgainst implements the diagnostic checks described in spec §4.1:
// IncorrectRegion on nonce mismatch, EntryExpired when the index predates
// the Region's current generation, UnexpectedInternalState if it is somehow
// ahead of it (which would mean the Region rolled back, never expected).
func (ix Ix[T]) checkAgainst(nonce uint64, generation uint32) error {
	if ix.regionNonce != nonce {
		return wrapf(ErrIncorrectRegion, "index nonce %d, region nonce %d", ix.regionNonce, nonce)
	}
	if ix.generation < generation {
		return wrapf(ErrEntryExpired, "index generation %d, region generation %d", ix.generation, generation)
	}
	if ix.generation > generation {
		return wrapf(ErrUnexpectedInternalState, "index generation %d ahead of region generation %d", ix.generation, generation)
	}
	return nil
}

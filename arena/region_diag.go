//go:build arenadiag

package arena

// regionMeta carries the diagnostic-only identity of a Region: a nonce
// drawn once from the process-wide counter, and a generation bumped once
// per collection.
type regionMeta struct {
	nonce      uint64
	generation uint32
}

func newRegionMeta() regionMeta {
	return regionMeta{nonce: nextRegionNonce()}
}

func (m *regionMeta) nonceValue() uint64     { return m.nonce }
func (m *regionMeta) generationValue() uint32 { return m.generation }

// bumpGeneration advances the generation counter, panicking with
// UnexpectedInternalState semantics on overflow per spec §7.
func (m *regionMeta) bumpGeneration() {
	if m.generation == ^uint32(0) {
		internalPanic("region generation counter overflowed")
	}
	m.generation++
}

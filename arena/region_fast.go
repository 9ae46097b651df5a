//go:build !arenadiag

package arena

// regionMeta is empty in the non-diagnostic build: no nonce, no generation.
type regionMeta struct{}

func newRegionMeta() regionMeta { return regionMeta{} }

func (m *regionMeta) nonceValue() uint64       { return 0 }
func (m *regionMeta) generationValue() uint32  { return 0 }
func (m *regionMeta) bumpGeneration()          {}

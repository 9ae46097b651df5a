package arena

import log "github.com/sirupsen/logrus"

// Region owns a densely packed backing store of Spots ("the arena") plus the
// root registry the collector uses to discover external handles. T is the
// element type stored; PT must be *T and must implement Traceable[T] — the
// standard Go pattern for pairing value storage with a pointer-receiver
// interface method (see Traceable's doc comment).
type Region[T any, PT interface {
	*T
	Traceable[T]
}] struct {
	spots []spot[T]
	roots []*anchor[T]
	meta  regionMeta
}

// New returns an empty Region.
func New[T any, PT interface {
	*T
	Traceable[T]
}]() *Region[T, PT] {
	return &Region[T, PT]{meta: newRegionMeta()}
}

func (r *Region[T, PT]) Len() int      { return len(r.spots) }
func (r *Region[T, PT]) Capacity() int { return cap(r.spots) }
func (r *Region[T, PT]) IsEmpty() bool { return len(r.spots) == 0 }

func (r *Region[T, PT]) mintIx(offset uint32) Ix[T] {
	return newIx[T](offset, r.meta.nonceValue(), r.meta.generationValue())
}

// Get returns a reference to the value ix identifies, panicking on failure.
func (r *Region[T, PT]) Get(ix Ix[T]) *T {
	v, err := r.TryGet(ix)
	if err != nil {
		panic(err)
	}
	return v
}

// GetMut is Get with a mutable result; kept distinct from Get to mirror the
// &T / &mut T split in the contract this type implements.
func (r *Region[T, PT]) GetMut(ix Ix[T]) *T { return r.Get(ix) }

// TryGet is the fallible form of Get.
func (r *Region[T, PT]) TryGet(ix Ix[T]) (*T, error) {
	if err := ix.checkAgainst(r.meta.nonceValue(), r.meta.generationValue()); err != nil {
		return nil, err
	}
	off := ix.offsetValue()
	if int(off) >= len(r.spots) {
		return nil, wrapf(ErrIndeterminable, "offset %d out of range (len %d)", off, len(r.spots))
	}
	sp := &r.spots[off]
	switch sp.kind {
	case spotPresent:
		return sp.entry.get(), nil
	case spotBrokenHeart:
		return nil, wrapf(ErrIndeterminable, "offset %d observed a broken heart outside collection", off)
	default:
		return nil, wrapf(ErrUnexpectedInternalState, "offset %d has unknown spot kind %d", off, sp.kind)
	}
}

// TryGetMut is the fallible form of GetMut.
func (r *Region[T, PT]) TryGetMut(ix Ix[T]) (*T, error) { return r.TryGet(ix) }

// CheckRegion validates, under the diagnostic build, that ix was minted by
// r and is not older than r's current generation. It is a no-op returning
// nil in the non-diagnostic build.
func (r *Region[T, PT]) CheckRegion(ix Ix[T]) error {
	return ix.checkAgainst(r.meta.nonceValue(), r.meta.generationValue())
}

// Alloc ensures capacity for one more element (collecting first if the
// store is full), invokes factory with the post-collection Region, and
// appends a Present spot holding the result. The returned MutEntry
// exclusively borrows the Region for its lifetime.
func (r *Region[T, PT]) Alloc(factory func(*Region[T, PT]) T) MutEntry[T, PT] {
	if len(r.spots) >= cap(r.spots) {
		r.Ensure(1)
	}
	v := factory(r)
	r.spots = append(r.spots, presentSpot(entry[T]{value: v}))
	ix := r.mintIx(uint32(len(r.spots) - 1))
	return MutEntry[T, PT]{region: r, ix: ix}
}

// Ensure guarantees space for additional more allocations without a further
// capacity-driven collection. When it must grow, the destination capacity
// is len + max(len, additional): at least a doubling.
func (r *Region[T, PT]) Ensure(additional int) {
	if additional <= 0 {
		return
	}
	curLen := len(r.spots)
	if curLen+additional <= cap(r.spots) {
		return
	}
	target := curLen
	if additional > target {
		target = additional
	}
	r.collect(curLen + target)
}

// Gc runs an explicit full collection. The implementation is free to shrink
// capacity; this one shrinks to exactly the number of survivors.
func (r *Region[T, PT]) Gc() {
	r.collect(0)
}

// GcInto consumes this Region's live objects and appends them to the end of
// other, preserving every external handle: Roots and Weaks created against
// this Region now denote locations in other.
func (r *Region[T, PT]) GcInto(other *Region[T, PT]) {
	log.WithFields(log.Fields{"src_len": len(r.spots), "dst_len": len(other.spots)}).Debug("region: gc_into start")
	moved := other.transferFrom(r)
	log.WithFields(log.Fields{"moved": moved, "dst_len": len(other.spots)}).Debug("region: gc_into done")
	r.spots = nil
	r.roots = nil
	r.meta = newRegionMeta()
}

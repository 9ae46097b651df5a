package arena

import log "github.com/sirupsen/logrus"

// forwardRegion is the core Cheney copy shared by Region.collect (gc) and
// Region.transferFrom (gc_into): it forwards every object reachable from
// src's root set into *dst (which may already hold unrelated live objects
// — the gc_into case — or be empty — the gc case), rewriting every index
// the traversal capability exposes along the way.
//
// Roots are forwarded before the scan begins (spec §4.5, "critical
// ordering"), so the scan's worklist starts from a known-good set. dst must
// already have enough spare capacity to hold everything that might be
// forwarded (an upper bound of len(src.spots) more entries): the append
// calls below must never trigger a reallocation while a *Ix[T] obtained
// from an earlier dst entry is still being rewritten by the caller's own
// append bookkeeping.
func forwardRegion[T any, PT interface {
	*T
	Traceable[T]
}](src *Region[T, PT], dst *[]spot[T], dstNonce uint64, dstGeneration uint32) (liveRoots []*anchor[T], forwarded int) {
	scanStart := len(*dst)

	forward := func(srcOffset uint32) Ix[T] {
		sp := &src.spots[srcOffset]
		switch sp.kind {
		case spotBrokenHeart:
			return sp.heart
		case spotPresent:
			sp.entry.checkClearRC()
			newIx := newIx[T](uint32(len(*dst)), dstNonce, dstGeneration)
			e := sp.moveTo(newIx)
			*dst = append(*dst, presentSpot(e))
			forwarded++
			return newIx
		default:
			internalPanic("forwarding offset %d: spot is neither present nor a broken heart", srcOffset)
			panic("unreachable")
		}
	}

	for _, a := range src.roots {
		if !a.hasLiveRoot() {
			continue // prune root-set entries with no remaining Root share
		}
		off := a.ix.offsetValue()
		if int(off) >= len(src.spots) {
			internalPanic("root index %d out of range of source store (len %d)", off, len(src.spots))
		}
		forward(off)
		liveRoots = append(liveRoots, a)
	}

	cursor := scanStart
	for cursor < len(*dst) {
		val := &(*dst)[cursor].entry.value
		PT(val).Trace(func(p *Ix[T]) {
			off := p.offsetValue()
			if int(off) >= len(src.spots) {
				internalPanic("traced index %d out of range of source store (len %d): stale index reachable from a live object", off, len(src.spots))
			}
			*p = forward(off)
		})
		cursor++
	}

	return liveRoots, forwarded
}

// collect performs a full Cheney copy of the Region into itself: the
// destination starts empty, sized to the safe upper bound len(r.spots)
// while the scan is in progress, then is resized exactly once at the end
// to max(minCapacity, survivor count). Passing minCapacity 0 asks for a
// shrink-to-fit; Ensure passes its growth target instead.
func (r *Region[T, PT]) collect(minCapacity int) {
	srcLen := len(r.spots)
	log.WithFields(log.Fields{"len": srcLen, "cap": cap(r.spots)}).Debug("region: gc start")

	r.meta.bumpGeneration()
	dst := make([]spot[T], 0, srcLen)
	liveRoots, forwarded := forwardRegion[T, PT](r, &dst, r.meta.nonceValue(), r.meta.generationValue())

	for i := range r.spots {
		r.spots[i].dispose()
	}

	target := minCapacity
	if len(dst) > target {
		target = len(dst)
	}
	final := make([]spot[T], len(dst), target)
	copy(final, dst)

	r.spots = final
	r.roots = liveRoots

	log.WithFields(log.Fields{"forwarded": forwarded, "freed": srcLen - forwarded, "new_cap": cap(r.spots)}).Debug("region: gc done")
}

// transferFrom drains src into r, appending src's survivors after r's
// existing objects and adopting their Roots and Weaks (now pointing at r).
func (r *Region[T, PT]) transferFrom(src *Region[T, PT]) int {
	needed := len(r.spots) + len(src.spots)
	if cap(r.spots) < needed {
		grown := make([]spot[T], len(r.spots), needed)
		copy(grown, r.spots)
		r.spots = grown
	}

	liveRoots, forwarded := forwardRegion[T, PT](src, &r.spots, r.meta.nonceValue(), r.meta.generationValue())

	for i := range src.spots {
		src.spots[i].dispose()
	}

	r.roots = append(r.roots, liveRoots...)
	return forwarded
}

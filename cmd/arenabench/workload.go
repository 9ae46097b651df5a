package main

import (
	"math/rand"

	"github.com/jasoncarr0/moving-gc-arena/arena"
	"github.com/jasoncarr0/moving-gc-arena/config"
	"github.com/jasoncarr0/moving-gc-arena/inspect"
	log "github.com/sirupsen/logrus"
)

// runWorkload exercises spec §8 scenario 7 (capacity growth under
// interleaved weak/rooted allocation) and scenario 4 (mutual-edge
// cycles) at the scale given by cfg, logging progress via
// logrus the way the teacher's long-running commands do.
func runWorkload(cfg *config.C) {
	region := arena.New[node, *node]()
	region.Ensure(cfg.InitialCapacity)

	var roots []arena.Root[node]
	for round := 0; round < cfg.Rounds; round++ {
		roundRoots := allocateRound(region, cfg, round)
		roots = append(roots, roundRoots...)

		region.Gc()
		log.WithFields(log.Fields{
			"round": round,
			"len":   region.Len(),
			"cap":   region.Capacity(),
			"roots": len(roots),
		}).Info("arenabench: round complete")
	}

	for _, r := range roots {
		r.Release()
	}
}

func allocateRound(region *arena.Region[node, *node], cfg *config.C, round int) []arena.Root[node] {
	var roots []arena.Root[node]
	ids := make([]arena.Ix[node], 0, cfg.ObjectCount)

	for i := 0; i < cfg.ObjectCount; i++ {
		id := round*cfg.ObjectCount + i
		m := region.Alloc(func(*arena.Region[node, *node]) node {
			return node{id: id, opened: true}
		})
		ids = append(ids, m.Ix())
		if rand.Intn(100) < cfg.RootFraction {
			roots = append(roots, m.Root())
		} else {
			m.Weak()
		}
	}

	// Wire up a handful of mutual-edge cycles among this round's objects
	// (spec §8 scenario 4): each pass links two consecutive objects both
	// ways. Whether those objects were rooted is not considered, so a cycle
	// is garbage for the caller's next Gc only when no member holds a Root.
	for c := 0; c < cfg.CyclesPerRound && len(ids) >= 2; c++ {
		a, b := ids[c%len(ids)], ids[(c+1)%len(ids)]
		region.Get(a).edges = append(region.Get(a).edges, b)
		region.Get(b).edges = append(region.Get(b).edges, a)
	}

	return roots
}

// verifyIdempotence runs one small workload, gc()s twice, and diffs the
// surviving roots' content to confirm the second collection changed
// nothing — spec §8's idempotence property.
func verifyIdempotence(cfg *config.C) (string, error) {
	region := arena.New[node, *node]()
	region.Ensure(cfg.InitialCapacity)
	roots := allocateRound(region, cfg, 0)

	region.Gc()
	before := snapshot(region, roots)
	lenBefore := region.Len()

	region.Gc()
	after := snapshot(region, roots)
	lenAfter := region.Len()

	if lenBefore != lenAfter {
		return "", errIdempotenceLenMismatch(lenBefore, lenAfter)
	}
	return inspect.Diff(before, after), nil
}

func snapshot(region *arena.Region[node, *node], roots []arena.Root[node]) []inspect.Snapshot {
	snaps := make([]inspect.Snapshot, 0, len(roots))
	for _, r := range roots {
		v := arena.RootGet(r, region)
		snaps = append(snaps, inspect.Snapshot{Label: r.Ix().String(), Content: v.String()})
	}
	return snaps
}

package main

import (
	"fmt"

	"github.com/jasoncarr0/moving-gc-arena/arena"
	"github.com/jasoncarr0/moving-gc-arena/traverse"
)

// node is the harness's own stand-in user type: an id for readable output
// plus a handful of owned edges to other nodes in the same Region. It only
// exists to give arenabench something to allocate and trace; it is not part
// of the library's public surface.
type node struct {
	id     int
	edges  []arena.Ix[node]
	opened bool // simulates a resource Dispose should release
}

func (n *node) Trace(yield func(ix *arena.Ix[node])) {
	traverse.Slice[node](n.edges)(yield)
}

// Dispose implements arena.Disposer: it clears opened, standing in for
// releasing a resource when the collector sweeps the node. The workload
// keeps no count of these calls.
func (n *node) Dispose() {
	n.opened = false
}

func (n *node) String() string {
	return fmt.Sprintf("node{id:%d, edges:%d}", n.id, len(n.edges))
}

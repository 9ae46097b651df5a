package arena

// testNode is the element type exercised by this package's own tests: a
// name for readable assertions, an optional self-reference and a slice of
// further owned edges — enough to build self-cycles, mutual cycles and
// indirect liveness chains without pulling in the traverse package (which
// itself depends on this one, so using it here would be an import cycle).
type testNode struct {
	name     string
	self     *Ix[testNode]
	edges    []Ix[testNode]
	disposed *int
}

func (n *testNode) Trace(yield func(*Ix[testNode])) {
	if n.self != nil {
		yield(n.self)
	}
	for i := range n.edges {
		yield(&n.edges[i])
	}
}

func (n *testNode) Dispose() {
	if n.disposed != nil {
		*n.disposed++
	}
}

func newTestRegion() *Region[testNode, *testNode] {
	return New[testNode, *testNode]()
}

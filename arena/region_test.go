package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allocLeaf(t *testing.T, r *Region[testNode, *testNode], name string, disposed *int) MutEntry[testNode, *testNode] {
	t.Helper()
	return r.Alloc(func(*Region[testNode, *testNode]) testNode {
		return testNode{name: name, disposed: disposed}
	})
}

func TestSimpleReclamation(t *testing.T) {
	r := newTestRegion()
	var disposed int
	allocLeaf(t, r, "gone", &disposed)
	require.Equal(t, 1, r.Len())

	r.Gc()

	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 1, disposed, "unrooted value must be dropped exactly once")
}

func TestRootKeepsAlive(t *testing.T) {
	r := newTestRegion()
	var disposed int
	m := allocLeaf(t, r, "kept", &disposed)
	root := m.Root()

	r.Gc()

	require.Equal(t, 1, r.Len())
	assert.Equal(t, 0, disposed)
	v := RootGet[testNode, *testNode](root, r)
	assert.Equal(t, "kept", v.name)

	root.Release()
	r.Gc()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 1, disposed)
}

func TestWeakExpiresWhileRootLivesOnSibling(t *testing.T) {
	r := newTestRegion()
	var disposedA, disposedB int

	a := allocLeaf(t, r, "a", &disposedA)
	weakA := a.Weak()

	b := allocLeaf(t, r, "b", &disposedB)
	rootB := b.Root()

	r.Gc()

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, 1, disposedA)
	assert.Equal(t, 0, disposedB)

	_, ok := weakA.Ix()
	assert.False(t, ok, "weak handle to a reclaimed object must report expired")

	v := RootGet[testNode, *testNode](rootB, r)
	assert.Equal(t, "b", v.name)
}

func TestSelfReferenceIsCollectable(t *testing.T) {
	r := newTestRegion()
	var disposed int
	m := r.Alloc(func(*Region[testNode, *testNode]) testNode {
		return testNode{name: "self", disposed: &disposed}
	})
	ix := m.Ix()
	self := m.Get()
	self.self = &Ix[testNode]{}
	*self.self = ix

	r.Gc()

	assert.Equal(t, 0, r.Len(), "a self-cycle with no external root must still be collected")
	assert.Equal(t, 1, disposed)
}

func TestMutualCycleIsCollectable(t *testing.T) {
	r := newTestRegion()
	var disposedA, disposedB int

	ma := r.Alloc(func(*Region[testNode, *testNode]) testNode {
		return testNode{name: "a", disposed: &disposedA}
	})
	ixA := ma.Ix()

	mb := r.Alloc(func(*Region[testNode, *testNode]) testNode {
		return testNode{name: "b", disposed: &disposedB}
	})
	ixB := mb.Ix()

	a := r.GetMut(ixA)
	a.self = &Ix[testNode]{}
	*a.self = ixB
	b := r.GetMut(ixB)
	b.self = &Ix[testNode]{}
	*b.self = ixA

	r.Gc()

	assert.Equal(t, 0, r.Len(), "a mutual cycle with no external root must still be collected")
	assert.Equal(t, 1, disposedA)
	assert.Equal(t, 1, disposedB)
}

func TestIndirectLiveness(t *testing.T) {
	r := newTestRegion()
	var disposedParent, disposedChild int

	mc := r.Alloc(func(*Region[testNode, *testNode]) testNode {
		return testNode{name: "child", disposed: &disposedChild}
	})
	ixChild := mc.Ix()

	mp := r.Alloc(func(*Region[testNode, *testNode]) testNode {
		return testNode{name: "parent", edges: []Ix[testNode]{ixChild}, disposed: &disposedParent}
	})
	rootParent := mp.Root()

	r.Gc()

	require.Equal(t, 2, r.Len(), "child reachable only through the rooted parent must survive")
	assert.Equal(t, 0, disposedParent)
	assert.Equal(t, 0, disposedChild)

	parent := RootGet[testNode, *testNode](rootParent, r)
	require.Len(t, parent.edges, 1)
	child := r.Get(parent.edges[0])
	assert.Equal(t, "child", child.name)
}

func TestCrossRegionTransfer(t *testing.T) {
	src := newTestRegion()
	dst := newTestRegion()
	var disposed int

	m := src.Alloc(func(*Region[testNode, *testNode]) testNode {
		return testNode{name: "migrant", disposed: &disposed}
	})
	root := m.Root()

	src.GcInto(dst)

	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 0, disposed, "transferred object must not be disposed, only relocated")
	require.Equal(t, 1, dst.Len())

	v := RootGet[testNode, *testNode](root, dst)
	assert.Equal(t, "migrant", v.name)
}

func TestCapacityGrowthTriggersCollection(t *testing.T) {
	r := newTestRegion()
	r.Ensure(4)
	initialCap := r.Capacity()
	require.GreaterOrEqual(t, initialCap, 4)

	var disposed int
	for i := 0; i < initialCap; i++ {
		allocLeaf(t, r, "filler", &disposed)
	}
	require.Equal(t, initialCap, r.Len())
	require.Equal(t, initialCap, r.Capacity())

	// the store is exactly full: the next Alloc must collect (freeing
	// everything, since none of the fillers are rooted) rather than fail.
	var rootedDisposed int
	m := allocLeaf(t, r, "survivor", &rootedDisposed)
	root := m.Root()

	assert.Equal(t, 1, r.Len())
	assert.Equal(t, initialCap, disposed, "every unrooted filler must be collected on the capacity-driven gc")

	root.Release()
}

func TestWeakAndRootShareOneAnchor(t *testing.T) {
	r := newTestRegion()
	var disposed int
	m := allocLeaf(t, r, "shared", &disposed)

	w := m.Weak()
	root := m.Root()

	r.Gc()
	require.Equal(t, 1, r.Len())

	ix, ok := w.Ix()
	require.True(t, ok, "weak handle sharing a rooted anchor must not report expired")
	assert.Equal(t, root.Ix(), ix)

	root.Release()
}

func TestRootCloneAddsIndependentShare(t *testing.T) {
	r := newTestRegion()
	var disposed int
	m := allocLeaf(t, r, "cloned", &disposed)
	first := m.Root()
	second := first.Clone()

	first.Release()
	r.Gc()
	require.Equal(t, 1, r.Len(), "one remaining share must keep the object alive")

	second.Release()
	r.Gc()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 1, disposed)
}

func TestMutEntryRootIsIdempotentAboutRegistration(t *testing.T) {
	r := newTestRegion()
	var disposed int
	m := allocLeaf(t, r, "x", &disposed)

	first := m.Root()
	second := m.Root()

	first.Release()
	r.Gc()
	require.Equal(t, 1, r.Len(), "second Root() share must still hold the object alive")

	second.Release()
	r.Gc()
	assert.Equal(t, 0, r.Len())
}

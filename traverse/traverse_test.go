package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasoncarr0/moving-gc-arena/arena"
	"github.com/jasoncarr0/moving-gc-arena/traverse"
)

func ixAt(offset uint32) arena.Ix[int] {
	// Ix has no exported constructor; a round trip through a Region is the
	// only supported way to mint one. These tests compare the yielded
	// *pointers* (assert.Same), never the values, so every Ix here is the
	// zero Ix and offset is ignored.
	var zero arena.Ix[int]
	return zero
}

func collect(t func(yield func(*arena.Ix[int]))) []*arena.Ix[int] {
	var got []*arena.Ix[int]
	t(func(p *arena.Ix[int]) { got = append(got, p) })
	return got
}

func TestSelfYieldsExactlyOnce(t *testing.T) {
	ix := ixAt(0)
	got := collect(traverse.Self[int](&ix))
	require.Len(t, got, 1)
	assert.Same(t, &ix, got[0])
}

func TestSliceYieldsEveryElementInOrder(t *testing.T) {
	s := make([]arena.Ix[int], 3)
	got := collect(traverse.Slice[int](s))
	require.Len(t, got, 3)
	for i := range s {
		assert.Same(t, &s[i], got[i])
	}
}

func TestSliceOfEmptyYieldsNothing(t *testing.T) {
	var s []arena.Ix[int]
	got := collect(traverse.Slice[int](s))
	assert.Empty(t, got)
}

func TestOptionalYieldsOnlyWhenPresent(t *testing.T) {
	absent := traverse.Option[int]{}
	assert.Empty(t, collect(traverse.Optional[int](&absent)))

	present := traverse.Some(ixAt(1))
	got := collect(traverse.Optional[int](&present))
	require.Len(t, got, 1)
	assert.Same(t, &present.Value, got[0])
}

func TestTuple2PreservesOrder(t *testing.T) {
	var a, b arena.Ix[int]
	got := collect(traverse.Tuple2[int](traverse.Self(&a), traverse.Self(&b)))
	require.Len(t, got, 2)
	assert.Same(t, &a, got[0])
	assert.Same(t, &b, got[1])
}

func TestTuple3PreservesOrder(t *testing.T) {
	var a, b, c arena.Ix[int]
	got := collect(traverse.Tuple3[int](traverse.Self(&a), traverse.Self(&b), traverse.Self(&c)))
	require.Len(t, got, 3)
	assert.Same(t, &a, got[0])
	assert.Same(t, &b, got[1])
	assert.Same(t, &c, got[2])
}

func TestAllConcatenatesArbitraryTracers(t *testing.T) {
	var a, b arena.Ix[int]
	s := make([]arena.Ix[int], 2)
	got := collect(traverse.All[int](traverse.Self(&a), traverse.Slice[int](s), traverse.Self(&b)))
	require.Len(t, got, 4)
	assert.Same(t, &a, got[0])
	assert.Same(t, &s[0], got[1])
	assert.Same(t, &s[1], got[2])
	assert.Same(t, &b, got[3])
}

func TestBoxDelegatesWithoutAlteringBehaviour(t *testing.T) {
	var a arena.Ix[int]
	inner := traverse.Self(&a)
	got := collect(traverse.Box[int](inner))
	require.Len(t, got, 1)
	assert.Same(t, &a, got[0])
}

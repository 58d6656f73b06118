package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quaddro/stargraph/core"
)

// mustEdge builds an edge that is known to be valid, failing the test otherwise.
func mustEdge(t *testing.T, orig, dest core.VertexID) core.Edge {
	t.Helper()
	e, err := core.NewEdge(orig, dest)
	require.NoError(t, err)

	return e
}

// collect drains the bag's iterator into a slice.
func collect(b *core.EdgeBag) []core.Edge {
	out := make([]core.Edge, 0, b.Len())
	for e := range b.Edges() {
		out = append(out, e)
	}

	return out
}

func TestNewEdge_RejectsZeroOrigin(t *testing.T) {
	_, err := core.NewEdge(0, 3)
	assert.ErrorIs(t, err, core.ErrZeroVertex)
}

func TestNewEdge_RejectsZeroDest(t *testing.T) {
	_, err := core.NewEdge(3, 0)
	assert.ErrorIs(t, err, core.ErrZeroVertex)
}

func TestNewEdge_Valid(t *testing.T) {
	e, err := core.NewEdge(2, 7)
	assert.NoError(t, err)
	assert.Equal(t, core.VertexID(2), e.Orig)
	assert.Equal(t, core.VertexID(7), e.Dest)
}

func TestEdgeBag_AddRejectsHandAssembledZero(t *testing.T) {
	bag := core.NewEdgeBag(1)
	err := bag.Add(core.Edge{Orig: 0, Dest: 1})
	assert.ErrorIs(t, err, core.ErrZeroVertex)
	assert.Equal(t, 0, bag.Len(), "invalid edge must not enter the bag")
}

func TestEdgeBag_InsertionOrderAndLen(t *testing.T) {
	bag := core.NewEdgeBag(3)
	edges := []core.Edge{
		mustEdge(t, 3, 1),
		mustEdge(t, 1, 2),
		mustEdge(t, 2, 2),
	}
	for _, e := range edges {
		require.NoError(t, bag.Add(e))
	}

	assert.Equal(t, 3, bag.Len())
	assert.Equal(t, edges, collect(bag), "bag must preserve insertion order before sorting")
}

func TestEdgeBag_SortByOrigWithTieBreak(t *testing.T) {
	bag := core.NewEdgeBag(4)
	for _, p := range [][2]core.VertexID{{2, 3}, {1, 9}, {2, 1}, {1, 2}} {
		require.NoError(t, bag.Add(mustEdge(t, p[0], p[1])))
	}

	bag.SortByOrig()

	want := []core.Edge{{Orig: 1, Dest: 2}, {Orig: 1, Dest: 9}, {Orig: 2, Dest: 1}, {Orig: 2, Dest: 3}}
	assert.Equal(t, want, collect(bag))
}

func TestEdgeBag_SortByDestWithTieBreak(t *testing.T) {
	bag := core.NewEdgeBag(4)
	for _, p := range [][2]core.VertexID{{2, 3}, {1, 9}, {2, 1}, {1, 2}} {
		require.NoError(t, bag.Add(mustEdge(t, p[0], p[1])))
	}

	bag.SortByDest()

	want := []core.Edge{{Orig: 2, Dest: 1}, {Orig: 1, Dest: 2}, {Orig: 2, Dest: 3}, {Orig: 1, Dest: 9}}
	assert.Equal(t, want, collect(bag))
}

func TestEdgeBag_ReSortIsDestructive(t *testing.T) {
	bag := core.NewEdgeBag(2)
	require.NoError(t, bag.Add(mustEdge(t, 2, 1)))
	require.NoError(t, bag.Add(mustEdge(t, 1, 2)))

	bag.SortByOrig()
	byOrig := collect(bag)
	bag.SortByDest()
	byDest := collect(bag)

	assert.Equal(t, []core.Edge{{Orig: 1, Dest: 2}, {Orig: 2, Dest: 1}}, byOrig)
	assert.Equal(t, []core.Edge{{Orig: 2, Dest: 1}, {Orig: 1, Dest: 2}}, byDest)
}

func TestEdgeBag_DuplicatesPermitted(t *testing.T) {
	bag := core.NewEdgeBag(2)
	require.NoError(t, bag.Add(mustEdge(t, 1, 2)))
	require.NoError(t, bag.Add(mustEdge(t, 1, 2)))

	assert.Equal(t, 2, bag.Len())
}

func TestEdgeBag_MaxVertex(t *testing.T) {
	bag := core.NewEdgeBag(0)
	assert.Equal(t, core.VertexID(0), bag.MaxVertex(), "empty bag has no vertices")

	require.NoError(t, bag.Add(mustEdge(t, 3, 9)))
	require.NoError(t, bag.Add(mustEdge(t, 4, 1)))
	assert.Equal(t, core.VertexID(9), bag.MaxVertex())
}

func TestEdgeBag_EdgesIsRestartable(t *testing.T) {
	bag := core.NewEdgeBag(2)
	require.NoError(t, bag.Add(mustEdge(t, 1, 2)))
	require.NoError(t, bag.Add(mustEdge(t, 2, 3)))

	first := collect(bag)
	second := collect(bag)
	assert.Equal(t, first, second, "ranging twice must restart the sequence")
}

func TestNewEdgeBag_NegativeHint(t *testing.T) {
	bag := core.NewEdgeBag(-5)
	require.NoError(t, bag.Add(mustEdge(t, 1, 2)))
	assert.Equal(t, 1, bag.Len())
}

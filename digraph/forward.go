package digraph

import (
	"iter"

	"github.com/quaddro/stargraph/core"
)

// ForwardStar is the compressed forward view of a directed graph: per
// vertex, a contiguous run of successor ids. It is immutable after
// construction and safe for concurrent read-only use.
type ForwardStar struct {
	star
}

// NewForward builds the forward view for vertices 1..vertexCount from bag.
// It stable-sorts the bag by (Orig, Dest) in place — destroying any other
// ordering the bag held — and then derives offsets and targets in one pass.
// Edges with zero endpoints cannot occur: the bag rejects them on Add.
func NewForward(vertexCount core.VertexID, bag *core.EdgeBag) (*ForwardStar, error) {
	if bag == nil {
		return nil, ErrNilEdgeBag
	}
	bag.SortByOrig()

	g := &ForwardStar{
		star: buildStar(vertexCount, bag,
			func(e core.Edge) core.VertexID { return e.Orig },
			func(e core.Edge) core.VertexID { return e.Dest },
		),
	}

	return g, nil
}

// VertexCount reports the number of addressable vertices.
func (g *ForwardStar) VertexCount() int {
	return g.vertexCount()
}

// Vertexes returns a lazy, restartable ascending sequence of all vertex ids
// 1..VertexCount. The DFS engine's restart loop depends on this id order.
func (g *ForwardStar) Vertexes() iter.Seq[core.VertexID] {
	return g.vertexes()
}

// Successors returns the (possibly empty) ordered run of v's successors.
// Zero-outdegree vertices yield an empty slice, not an error; ids outside
// the addressable range yield ErrVertexOutOfRange. The returned slice
// aliases the graph's storage and must be treated as read-only.
func (g *ForwardStar) Successors(v core.VertexID) ([]core.VertexID, error) {
	return g.run(v)
}

// Outdegree reports the number of successors of v.
func (g *ForwardStar) Outdegree(v core.VertexID) (int, error) {
	return g.degree(v)
}

// MaxOutdegree returns the first vertex (by ascending id) achieving the
// maximum outdegree, paired with that degree.
func (g *ForwardStar) MaxOutdegree() VertexDegree {
	return g.maxDegree()
}

package digraph

import (
	"iter"

	"github.com/quaddro/stargraph/core"
)

// ReverseStar is the compressed reverse view of a directed graph: per
// vertex, a contiguous run of predecessor ids. It is the exact dual of
// ForwardStar with origin and destination swapped, and shares its builder.
type ReverseStar struct {
	star
}

// NewReverse builds the reverse view for vertices 1..vertexCount from bag.
// It stable-sorts the bag by (Dest, Orig) in place; building a forward view
// from the same bag afterwards requires the forward constructor's re-sort.
func NewReverse(vertexCount core.VertexID, bag *core.EdgeBag) (*ReverseStar, error) {
	if bag == nil {
		return nil, ErrNilEdgeBag
	}
	bag.SortByDest()

	g := &ReverseStar{
		star: buildStar(vertexCount, bag,
			func(e core.Edge) core.VertexID { return e.Dest },
			func(e core.Edge) core.VertexID { return e.Orig },
		),
	}

	return g, nil
}

// VertexCount reports the number of addressable vertices.
func (g *ReverseStar) VertexCount() int {
	return g.vertexCount()
}

// Vertexes returns a lazy, restartable ascending sequence of all vertex ids
// 1..VertexCount.
func (g *ReverseStar) Vertexes() iter.Seq[core.VertexID] {
	return g.vertexes()
}

// Predecessors returns the (possibly empty) ordered run of v's predecessors.
// Zero-indegree vertices yield an empty slice, not an error; ids outside the
// addressable range yield ErrVertexOutOfRange.
func (g *ReverseStar) Predecessors(v core.VertexID) ([]core.VertexID, error) {
	return g.run(v)
}

// Indegree reports the number of predecessors of v.
func (g *ReverseStar) Indegree(v core.VertexID) (int, error) {
	return g.degree(v)
}

// MaxIndegree returns the first vertex (by ascending id) achieving the
// maximum indegree, paired with that degree.
func (g *ReverseStar) MaxIndegree() VertexDegree {
	return g.maxDegree()
}

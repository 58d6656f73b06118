// This file declares the package's sentinel errors and the VertexDegree
// report type shared by the degree queries.
package digraph

import (
	"errors"

	"github.com/quaddro/stargraph/core"
)

// VertexID aliases core.VertexID so call sites reading degrees and runs do
// not need to import core separately.
type VertexID = core.VertexID

var (
	// ErrNilEdgeBag indicates that a nil *core.EdgeBag was passed to a
	// star constructor.
	ErrNilEdgeBag = errors.New("digraph: edge bag is nil")

	// ErrVertexOutOfRange indicates that a vertex id passed to a run or
	// degree query falls outside the addressable range. This signals a
	// caller bug; it is never produced by traversal over the graph's own
	// vertex sequence.
	ErrVertexOutOfRange = errors.New("digraph: vertex out of range")
)

// VertexDegree pairs a vertex with one of its degrees, as reported by
// MaxOutdegree and MaxIndegree. Ties resolve to the lowest vertex id; an
// edgeless graph reports {Vertex: 0, Degree: 0}, where 0 is the reserved
// "no vertex" id.
type VertexDegree struct {
	// Vertex is the first vertex (by ascending id) achieving Degree.
	Vertex VertexID

	// Degree is the maximum out- or indegree observed.
	Degree int
}

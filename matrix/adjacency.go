package matrix

import (
	"errors"

	"github.com/quaddro/stargraph/core"
)

var (
	// ErrNilEdgeBag indicates that a nil *core.EdgeBag was passed to NewAdjacency.
	ErrNilEdgeBag = errors.New("matrix: edge bag is nil")

	// ErrVertexOutOfRange indicates an index outside [1, vertexCount].
	ErrVertexOutOfRange = errors.New("matrix: vertex out of range")

	// ErrEdgeOutOfRange indicates an edge endpoint beyond the declared
	// vertex count at build time.
	ErrEdgeOutOfRange = errors.New("matrix: edge endpoint out of range")
)

// Adjacency is a dense boolean V×V adjacency matrix, row-major, with row
// and column 0 unused. Immutable after construction.
type Adjacency struct {
	n     int
	cells []bool
}

// NewAdjacency builds the matrix for vertices 1..vertexCount from bag.
// Unlike the star builders it needs no ordering, so the bag's current sort
// is left untouched. Parallel edges collapse into a single cell.
func NewAdjacency(vertexCount core.VertexID, bag *core.EdgeBag) (*Adjacency, error) {
	if bag == nil {
		return nil, ErrNilEdgeBag
	}

	n := int(vertexCount)
	m := &Adjacency{
		n:     n,
		cells: make([]bool, (n+1)*(n+1)),
	}
	for e := range bag.Edges() {
		if int(e.Orig) > n || int(e.Dest) > n {
			return nil, ErrEdgeOutOfRange
		}
		m.cells[int(e.Orig)*(n+1)+int(e.Dest)] = true
	}

	return m, nil
}

// VertexCount reports the number of addressable vertices.
func (m *Adjacency) VertexCount() int {
	return m.n
}

// HasEdge reports whether at least one (orig, dest) edge exists.
func (m *Adjacency) HasEdge(orig, dest core.VertexID) (bool, error) {
	if err := m.check(orig); err != nil {
		return false, err
	}
	if err := m.check(dest); err != nil {
		return false, err
	}

	return m.cells[int(orig)*(m.n+1)+int(dest)], nil
}

// Outdegree counts the distinct successors of v — a full row scan, versus
// the star view's O(1) run length.
func (m *Adjacency) Outdegree(v core.VertexID) (int, error) {
	if err := m.check(v); err != nil {
		return 0, err
	}

	deg := 0
	row := int(v) * (m.n + 1)
	for dest := 1; dest <= m.n; dest++ {
		if m.cells[row+dest] {
			deg++
		}
	}

	return deg, nil
}

// Indegree counts the distinct predecessors of v — a full column scan.
func (m *Adjacency) Indegree(v core.VertexID) (int, error) {
	if err := m.check(v); err != nil {
		return 0, err
	}

	deg := 0
	for orig := 1; orig <= m.n; orig++ {
		if m.cells[orig*(m.n+1)+int(v)] {
			deg++
		}
	}

	return deg, nil
}

func (m *Adjacency) check(v core.VertexID) error {
	if v == 0 || int(v) > m.n {
		return ErrVertexOutOfRange
	}

	return nil
}

package digraph

import (
	"iter"

	"github.com/quaddro/stargraph/core"
)

// star is the compressed skeleton shared by ForwardStar and ReverseStar.
// offsets[v] is the start index into targets of vertex v's run and
// offsets[v+1] its exclusive end; offsets[0] is an unused guard and the
// final entry is a sentinel equal to len(targets), so the last vertex's
// run needs no bounds special case. targets[0] is likewise unused, keeping
// real data aligned with the 1-based vertex space.
type star struct {
	offsets []uint32
	targets []core.VertexID
}

// buildStar groups the bag's current edge order by the key endpoint and
// appends the other endpoint per edge. The caller must have sorted the bag
// by the key endpoint first; the gap-filling loop then assigns an explicit
// empty run to every vertex strictly between consecutive key values, and
// the trailing pad covers zero-degree vertices past the last key as well
// as installing the sentinel.
func buildStar(vertexCount core.VertexID, bag *core.EdgeBag, key, value func(core.Edge) core.VertexID) star {
	offsetsLen := int(vertexCount) + 2

	s := star{
		offsets: make([]uint32, 1, offsetsLen),
		targets: make([]core.VertexID, 1, bag.Len()+1),
	}

	var lastKey core.VertexID
	for e := range bag.Edges() {
		// Push the run start for every vertex up to and including this
		// edge's key; intermediate vertices receive empty runs.
		for lastKey < key(e) {
			lastKey++
			s.offsets = append(s.offsets, uint32(len(s.targets)))
		}
		s.targets = append(s.targets, value(e))
	}
	// Trailing zero-degree vertices, plus the end sentinel.
	for len(s.offsets) < offsetsLen {
		s.offsets = append(s.offsets, uint32(len(s.targets)))
	}

	return s
}

// vertexCount derives the addressable vertex count from the offsets length,
// discounting the guard slot and the sentinel.
func (s *star) vertexCount() int {
	return len(s.offsets) - 2
}

// vertexes yields all vertex ids 1..vertexCount in ascending order. The
// sequence is lazy and restartable; ranging over it again starts over.
func (s *star) vertexes() iter.Seq[core.VertexID] {
	last := core.VertexID(s.vertexCount())

	return func(yield func(core.VertexID) bool) {
		for v := core.VertexID(1); v <= last; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// run returns vertex v's slice of targets, bounds-checking the two offsets
// accesses. The slice aliases the backing array and must not be mutated.
func (s *star) run(v core.VertexID) ([]core.VertexID, error) {
	if int(v)+1 >= len(s.offsets) {
		return nil, ErrVertexOutOfRange
	}

	return s.targets[s.offsets[v]:s.offsets[v+1]], nil
}

// degree reports the length of v's run.
func (s *star) degree(v core.VertexID) (int, error) {
	r, err := s.run(v)
	if err != nil {
		return 0, err
	}

	return len(r), nil
}

// maxDegree scans all vertices in ascending id order and returns the first
// vertex achieving the maximum run length. The strict comparison makes the
// lowest id win ties, which keeps output deterministic.
func (s *star) maxDegree() VertexDegree {
	var best VertexDegree
	for v := range s.vertexes() {
		// v comes from the graph's own range, so run cannot fail.
		r, _ := s.run(v)
		if len(r) > best.Degree {
			best.Vertex = v
			best.Degree = len(r)
		}
	}

	return best
}

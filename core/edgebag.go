package core

import (
	"iter"
	"sort"
)

// EdgeBag is an append-only, insertion-ordered collection of edges with two
// total orderings it can impose on itself destructively.
//
// A bag carries no ordering guarantee after Add: callers must re-sort before
// relying on either ordering. Sorting is single-threaded and destructive —
// the prior ordering is lost. Building both a forward and a reverse star view
// from one bag therefore requires a re-sort between the two builds.
type EdgeBag struct {
	edges []Edge
}

// NewEdgeBag returns an empty bag pre-allocated for sizeHint edges.
// The hint is an optimization only; the bag grows past it as needed.
func NewEdgeBag(sizeHint int) *EdgeBag {
	if sizeHint < 0 {
		sizeHint = 0
	}

	return &EdgeBag{edges: make([]Edge, 0, sizeHint)}
}

// Add appends e to the bag. It returns ErrZeroVertex if e was assembled by
// hand with a zero endpoint, so that invalid edges never enter the bag even
// when NewEdge was bypassed.
func (b *EdgeBag) Add(e Edge) error {
	if e.Orig == 0 || e.Dest == 0 {
		return ErrZeroVertex
	}
	b.edges = append(b.edges, e)

	return nil
}

// Len reports the number of edges currently in the bag. Collaborators use it
// to cross-check an externally declared edge count before building views.
func (b *EdgeBag) Len() int {
	return len(b.edges)
}

// SortByOrig stable-sorts the bag in place by (Orig, Dest).
// Successor runs derived from this ordering are themselves ascending.
func (b *EdgeBag) SortByOrig() {
	sort.SliceStable(b.edges, func(i, j int) bool {
		return b.edges[i].lessByOrig(b.edges[j])
	})
}

// SortByDest stable-sorts the bag in place by (Dest, Orig).
// Predecessor runs derived from this ordering are themselves ascending.
func (b *EdgeBag) SortByDest() {
	sort.SliceStable(b.edges, func(i, j int) bool {
		return b.edges[i].lessByDest(b.edges[j])
	})
}

// Edges returns a lazy, restartable iterator over the edges in their current
// order. The sequence reflects the ordering in effect at iteration time.
func (b *EdgeBag) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range b.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// MaxVertex returns the largest vertex id referenced by any edge in the bag,
// or 0 when the bag is empty. Useful as a vertex-count hint for star builds
// when no external count was declared.
func (b *EdgeBag) MaxVertex() VertexID {
	var maxV VertexID
	for _, e := range b.edges {
		if e.Orig > maxV {
			maxV = e.Orig
		}
		if e.Dest > maxV {
			maxV = e.Dest
		}
	}

	return maxV
}

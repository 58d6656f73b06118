package dfs

import (
	"iter"

	"github.com/quaddro/stargraph/core"
)

// Entry is the per-vertex bookkeeping of one traversal. Timestamps are
// 1-based and strictly increasing across the whole run; 0 means
// undiscovered (Discovery) or not yet finished (Finish). Parent is the
// tree-parent id, or 0 for DFS roots and undiscovered vertices.
type Entry struct {
	// Discovery is the timestamp at which the vertex was first visited.
	Discovery uint64

	// Finish is the timestamp at which the vertex's subtree completed.
	Finish uint64

	// Parent is the vertex from which this one was discovered.
	Parent core.VertexID
}

// Result holds the complete forest bookkeeping of one traversal. It is
// mutated only by the engine during Run and is frozen once Run returns.
type Result struct {
	entries []Entry
}

// newResult allocates undiscovered entries for vertices 1..n.
func newResult(n int) *Result {
	return &Result{entries: make([]Entry, n)}
}

// at maps the 1-based vertex space onto the entry slice. Callers inside the
// engine pass ids produced by the graph itself, which are always in range.
func (r *Result) at(v core.VertexID) *Entry {
	return &r.entries[v-1]
}

// Len reports the number of per-vertex entries.
func (r *Result) Len() int {
	return len(r.entries)
}

// Entry returns the bookkeeping for vertex v, or ErrVertexOutOfRange if v
// is not in 1..Len.
func (r *Result) Entry(v core.VertexID) (Entry, error) {
	if v == 0 || int(v) > len(r.entries) {
		return Entry{}, ErrVertexOutOfRange
	}

	return *r.at(v), nil
}

// Entries yields (vertex, entry) pairs in ascending vertex order.
func (r *Result) Entries() iter.Seq2[core.VertexID, Entry] {
	return func(yield func(core.VertexID, Entry) bool) {
		for i := range r.entries {
			if !yield(core.VertexID(i+1), r.entries[i]) {
				return
			}
		}
	}
}

// ClassifyEdge classifies (orig, dest) from final timestamps alone, usable
// any time after Run completes and independent of the live hooks.
//
// The rule is three-way by construction: cross edges cannot be told apart
// from timestamps as this query is structured, so edges a live hook would
// report as cross come back as back or forward here. The live hooks remain
// the authoritative four-way path; both behaviors are contractual.
func (r *Result) ClassifyEdge(orig, dest core.VertexID) (EdgeClass, error) {
	origE, err := r.Entry(orig)
	if err != nil {
		return Tree, err
	}
	destE, err := r.Entry(dest)
	if err != nil {
		return Tree, err
	}

	// Origin discovered first: its direct child via this edge is a tree
	// edge, any other later-discovered destination is forward.
	if origE.Discovery < destE.Discovery {
		if destE.Parent == orig {
			return Tree, nil
		}

		return Forward, nil
	}

	// Destination's whole subtree finished strictly before the origin was
	// discovered.
	if destE.Finish < origE.Discovery {
		return Forward, nil
	}

	return Back, nil
}

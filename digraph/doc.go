// Package digraph implements the compressed forward- and reverse-star
// representations of a directed graph.
//
// What:
//
//   - ForwardStar: per-vertex contiguous runs of successor ids.
//   - ReverseStar: the dual — per-vertex runs of predecessor ids.
//   - Both are two flat arrays built in one pass over a sorted core.EdgeBag:
//     `offsets` (length vertexCount+2: index 0 is an unused guard, the last
//     entry is a sentinel equal to the total edge count) and `targets`
//     (length edgeCount+1: index 0 unused so real data starts at index 1,
//     matching the 1-based vertex space).
//   - Debug writers: DumpDebug prints both internal arrays; DOT emits a
//     Graphviz digraph block.
//
// Why:
//   - Sorting the edge bag groups each vertex's arcs contiguously, so the
//     whole adjacency structure needs no hash maps and no lists-of-lists —
//     runs are plain subslices of one backing array, cache-friendly and
//     zero-copy to hand out.
//   - Vertices with no outgoing (or incoming) arcs get an explicit empty run:
//     the builder fills every gap offset rather than skipping it, so a
//     zero-degree vertex never inherits its neighbor's range.
//
// Invariants (checked by the test suite):
//
//   - offsets[0] == 0; offsets is non-decreasing; offsets[len-1] == edge count.
//   - targets[offsets[v]:offsets[v+1]] is exactly v's run, in ascending order
//     (the bag's composite sort key orders each run internally).
//
// Lifecycle: built once, immutable thereafter; safe to share across
// concurrent read-only queries, never mutated after construction.
//
// Complexity:
//
//   - Build:                O(E log E) (dominated by the bag sort)
//   - Successors/Outdegree: O(1)
//   - MaxOutdegree:         O(V)
//
// Errors:
//
//   - ErrNilEdgeBag       — nil bag passed to a constructor.
//   - ErrVertexOutOfRange — queried vertex outside the addressable range
//     (a caller bug, not a data problem).
package digraph

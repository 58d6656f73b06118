// Package core defines the primitive edge types shared by every stargraph
// representation: VertexID, Edge, and the append-only EdgeBag with its two
// destructive orderings.
//
// What:
//
//   - VertexID: a 1-based vertex identifier; 0 is reserved and never valid.
//   - Edge: an immutable (Orig, Dest) pair. NewEdge rejects endpoint 0.
//   - EdgeBag: an insertion-ordered, capacity-hinted sequence of edges.
//     SortByOrig / SortByDest stable-sort it in place by a composite key
//     (primary endpoint, tie-break by the other endpoint). Only one ordering
//     is valid at a time; re-sort before building another star view.
//
// Why:
//   - The star builders in package digraph derive compressed adjacency purely
//     from a sorted edge sequence — no hash maps, no per-vertex lists.
//   - The composite tie-break keeps successor and predecessor runs internally
//     ordered, which makes traversal output reproducible across runs.
//
// Complexity:
//
//   - Add:                    amortized O(1)
//   - SortByOrig/SortByDest:  O(E log E)
//   - Edges iteration:        O(E), zero-copy
//
// Errors:
//
//   - ErrZeroVertex — an edge endpoint is 0; rejected before entering the bag.
package core

// Package matrix provides a dense boolean adjacency matrix over the same
// 1-based vertex space as the star views. It exists for side-by-side
// comparison with the compressed representation and shares no code with it.
//
// The matrix keeps row and column 0 unused, mirroring the star views' guard
// slots, so all accesses stay in the conceptual 1-based space. Being a
// boolean cell per (orig, dest), it cannot represent parallel edges: adding
// the same edge twice is idempotent here, unlike the star runs which keep
// duplicates.
//
// Complexity: Build O(V² + E), HasEdge O(1), Outdegree O(V),
// memory O(V²) — the trade the compressed form exists to avoid.
//
// Errors:
//
//   - ErrNilEdgeBag       — nil bag passed to the constructor.
//   - ErrVertexOutOfRange — queried vertex outside [1, vertexCount].
package matrix

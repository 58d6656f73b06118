// Package stargraph is a compact toolkit for directed graphs stored in
// forward/reverse star (CSR) form, plus a depth-first search engine that
// classifies every edge against the DFS forest.
//
// 🚀 What is stargraph?
//
//	A small, deterministic library that brings together:
//		• Edge primitives: value-type edges over 1-based vertex ids, with a
//		  capacity-hinted bag and two destructive stable orderings
//		• Star views: ForwardStar (successors) and ReverseStar (predecessors)
//		  built by one sort-based pass — no hash maps, no lists-of-lists
//		• Traversal: full-forest iterative DFS with discovery/finish
//		  timestamps, parent links, and tree/back/forward/cross edge events
//		• A dense adjacency matrix for side-by-side comparison
//		• Text edge-list ingestion and a cobra CLI over all of the above
//
// ✨ Why choose stargraph?
//
//   - Cache-friendly – adjacency lives in two flat arrays, runs are subslices
//   - Stack-safe – DFS simulates recursion explicitly; depth is never bounded
//     by call-stack growth
//   - Deterministic – stable sorts, ascending-id tie-breaks, reproducible
//     timestamps on every run
//
// Everything is organized under five subpackages:
//
//	core/    — VertexID, Edge, EdgeBag and its orderings
//	digraph/ — ForwardStar & ReverseStar compressed views + debug/DOT output
//	dfs/     — classifying depth-first search engine and its Result
//	matrix/  — dense boolean adjacency (comparison representation)
//	edgeio/  — edge-list text format reader
//
// Quick ASCII example:
//
//	    1──▶2
//	    ▲   │
//	    │   ▼
//	    4◀──3
//
//	a 4-cycle: DFS from 1 yields three tree edges and one back edge (4→1).
//
// Dive into each package's doc.go for contracts, complexity and examples.
package stargraph

// Package dfs implements a full-forest depth-first search over a
// digraph.ForwardStar that classifies every edge it scans against the DFS
// forest (tree, back, forward, cross) — without recursion, so traversal
// depth is never bounded by call-stack size.
//
// What:
//
//   - Run(g, opts...): one complete traversal covering every vertex, restarting
//     at each undiscovered vertex in ascending id order. Produces a Result.
//   - Visitor hooks (functional options): OnVertex fires at discovery;
//     OnTreeEdge/OnBackEdge/OnForwardEdge/OnCrossEdge fire as each successor
//     is scanned. Each hook independently defaults to a no-op.
//   - Result: per-vertex Entry{Discovery, Finish, Parent} plus ClassifyEdge,
//     a post-hoc query over final timestamps.
//
// Why:
//   - The natural algorithm is recursive; simulating the recursion with an
//     explicit vertex stack reproduces exact recursive semantics (discovery
//     order, finish order, parents) while keeping memory explicit and flat.
//   - The engine peeks (does not pop) the stack top, so a vertex stays on the
//     stack while its successors are explored — the stack slot stands in for
//     a live call frame. On re-entry the successor list is rescanned from the
//     start: already-classified successors are cheaply re-classified and
//     re-emitted to the edge hooks rather than skipped. This matches the
//     recursive traversal's final timestamps exactly; only the hook event
//     stream sees the repeats.
//
// Classification during the scan of v's successor s:
//
//   - s undiscovered                      → tree (parent[s] = v, push s)
//   - s discovered, unfinished            → back (s is a live ancestor)
//   - s finished, discovered after v      → forward
//   - s finished, discovered before v     → cross (different subtree)
//
// The post-hoc Result.ClassifyEdge works from final timestamps alone and is
// deliberately coarser: it reports only tree, forward, and back. Cross edges
// are not distinguishable from timestamps as this query is structured; use
// the live hooks when the four-way split matters. Both paths are part of the
// observable contract and agree on tree and back edges.
//
// Complexity:
//
//   - Time:   O(V + E) discoveries and finishes; rescans make worst-case
//     per-vertex work O(degree × depth). Memory: O(V).
//
// Errors:
//
//   - ErrGraphNil         — nil graph passed to Run.
//   - ErrVertexOutOfRange — Result queried with a vertex id outside 1..V.
//
// The engine itself has no failure modes: given a valid ForwardStar it
// always completes. There is no cancellation and none is needed — the
// traversal terminates unconditionally in O(V+E).
package dfs

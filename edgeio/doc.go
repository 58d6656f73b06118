// Package edgeio reads the plain-text edge-list format consumed by the
// stargraph CLI:
//
//	vertex_count edge_count
//	orig dest
//	orig dest
//	...
//
// Tokens are whitespace-separated; line breaks carry no meaning. Read
// cross-checks the number of edge pairs against the declared edge_count and
// rejects any edge referencing the reserved vertex 0 (propagated from
// package core). Parsing is a collaborator concern: nothing in the star or
// DFS packages depends on this format.
package edgeio

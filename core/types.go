// This file declares VertexID, Edge, the NewEdge constructor, and the
// package's sentinel errors.
package core

import "errors"

// Sentinel errors for edge construction.
var (
	// ErrZeroVertex indicates an edge endpoint equal to the reserved id 0.
	// Invalid edges are rejected at construction and never enter an EdgeBag.
	ErrZeroVertex = errors.New("core: vertex 0 is not valid")
)

// VertexID identifies a vertex. Ids are 1-based: 0 is a reserved sentinel
// used by the star representations (guard slots, "no vertex", "no parent")
// and is never a valid endpoint.
//
// Ids need not be contiguous in the input; representations allocate storage
// for the whole range [1, vertexCount] regardless of which ids appear.
type VertexID = uint32

// Edge is an ordered pair of non-zero vertex ids. Edges are value types;
// duplicates are permitted and produce parallel entries in adjacency runs.
type Edge struct {
	// Orig is the origin (tail) vertex id.
	Orig VertexID

	// Dest is the destination (head) vertex id.
	Dest VertexID
}

// NewEdge builds an Edge, returning ErrZeroVertex if either endpoint is 0.
func NewEdge(orig, dest VertexID) (Edge, error) {
	if orig == 0 || dest == 0 {
		return Edge{}, ErrZeroVertex
	}

	return Edge{Orig: orig, Dest: dest}, nil
}

// lessByOrig orders edges by (Orig, Dest).
func (e Edge) lessByOrig(other Edge) bool {
	if e.Orig != other.Orig {
		return e.Orig < other.Orig
	}

	return e.Dest < other.Dest
}

// lessByDest orders edges by (Dest, Orig).
func (e Edge) lessByDest(other Edge) bool {
	if e.Dest != other.Dest {
		return e.Dest < other.Dest
	}

	return e.Orig < other.Orig
}

// Package dfs: option machinery, visitor hook types, edge classes, and
// sentinel errors.
package dfs

import (
	"errors"

	"github.com/quaddro/stargraph/core"
)

var (
	// ErrGraphNil is returned when a nil *digraph.ForwardStar is passed to Run.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexOutOfRange indicates a Result query with a vertex id outside
	// the range the traversal covered.
	ErrVertexOutOfRange = errors.New("dfs: vertex out of range")
)

// EdgeClass is the relationship of an edge to the DFS forest.
type EdgeClass uint8

const (
	// Tree marks an edge along which a vertex was first discovered.
	Tree EdgeClass = iota
	// Back marks an edge to a live ancestor in the current recursion.
	Back
	// Forward marks an edge to an already-finished descendant.
	Forward
	// Cross marks an edge into a different, earlier-discovered subtree.
	Cross
)

// String renders the class as its lowercase name.
func (c EdgeClass) String() string {
	switch c {
	case Tree:
		return "tree"
	case Back:
		return "back"
	case Forward:
		return "forward"
	case Cross:
		return "cross"
	default:
		return "unknown"
	}
}

// VertexVisitor observes a vertex the moment it is discovered.
// Visitors are pure side-effect hooks: they must not mutate engine-owned
// state and have no way to abort the traversal.
type VertexVisitor func(v core.VertexID)

// EdgeVisitor observes an edge (orig, dest) as the engine classifies it.
// On stack-frame re-entry an already-classified edge is re-emitted; hooks
// that count edges should deduplicate if that matters to them.
type EdgeVisitor func(orig, dest core.VertexID)

// Option configures optional behavior of Run.
type Option func(*Options)

// Options holds the visitor hooks for one traversal. A nil hook is a no-op.
type Options struct {
	// OnVertex fires when a vertex is stamped with its discovery time.
	OnVertex VertexVisitor

	// OnTreeEdge fires for each edge along which a vertex is discovered.
	OnTreeEdge EdgeVisitor

	// OnBackEdge fires for each edge into a live (unfinished) ancestor.
	OnBackEdge EdgeVisitor

	// OnForwardEdge fires for each edge into a finished, later-discovered
	// vertex.
	OnForwardEdge EdgeVisitor

	// OnCrossEdge fires for each edge into a finished, earlier-discovered
	// vertex in another subtree.
	OnCrossEdge EdgeVisitor
}

// DefaultOptions returns an Options with every hook unset (no-op).
func DefaultOptions() Options {
	return Options{}
}

// WithOnVertex installs fn as the discovery hook.
func WithOnVertex(fn VertexVisitor) Option {
	return func(o *Options) { o.OnVertex = fn }
}

// WithOnTreeEdge installs fn as the tree-edge hook.
func WithOnTreeEdge(fn EdgeVisitor) Option {
	return func(o *Options) { o.OnTreeEdge = fn }
}

// WithOnBackEdge installs fn as the back-edge hook.
func WithOnBackEdge(fn EdgeVisitor) Option {
	return func(o *Options) { o.OnBackEdge = fn }
}

// WithOnForwardEdge installs fn as the forward-edge hook.
func WithOnForwardEdge(fn EdgeVisitor) Option {
	return func(o *Options) { o.OnForwardEdge = fn }
}

// WithOnCrossEdge installs fn as the cross-edge hook.
func WithOnCrossEdge(fn EdgeVisitor) Option {
	return func(o *Options) { o.OnCrossEdge = fn }
}

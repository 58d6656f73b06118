package digraph

import "github.com/quaddro/stargraph/core"

// Test-only accessors over the packed arrays, so the suite can assert the
// structural invariants (guard slot, monotonicity, end sentinel) directly.

// RawOffsets exposes the offsets array of a forward view.
func (g *ForwardStar) RawOffsets() []uint32 { return g.offsets }

// RawTargets exposes the targets array of a forward view.
func (g *ForwardStar) RawTargets() []core.VertexID { return g.targets }

// RawOffsets exposes the offsets array of a reverse view.
func (g *ReverseStar) RawOffsets() []uint32 { return g.offsets }

// RawTargets exposes the targets array of a reverse view.
func (g *ReverseStar) RawTargets() []core.VertexID { return g.targets }

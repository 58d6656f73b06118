// Diagnostic writers: DumpDebug prints the raw offsets/targets arrays and
// DOT emits a Graphviz block. Both are collaborator surfaces — nothing in
// the core queries depends on them.
package digraph

import (
	"fmt"
	"io"
	"strings"

	"github.com/quaddro/stargraph/core"
)

// dump writes both internal arrays, one line each, space-separated. The
// leading space in the targets label keeps the two columns aligned.
func (s *star) dump(w io.Writer, offsetsLabel, targetsLabel string) error {
	var b strings.Builder

	b.WriteString(offsetsLabel)
	b.WriteString(": ")
	for _, off := range s.offsets {
		fmt.Fprintf(&b, "%d ", off)
	}
	b.WriteByte('\n')

	b.WriteString(targetsLabel)
	b.WriteString(": ")
	for _, t := range s.targets {
		fmt.Fprintf(&b, "%d ", t)
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())

	return err
}

// dot writes a Graphviz digraph block, grouping lines by the star's key
// vertex and leaving a blank line after each group. The arc callback maps a
// (group, target) pair back to display order (origin first).
func (s *star) dot(w io.Writer, arc func(group, target core.VertexID) (orig, dest core.VertexID)) error {
	var b strings.Builder

	b.WriteString("digraph G {\n")
	for v := range s.vertexes() {
		r, _ := s.run(v)
		for _, t := range r {
			orig, dest := arc(v, t)
			fmt.Fprintf(&b, "    %d -> %d\n", orig, dest)
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// DumpDebug writes the forward view's raw arrays to w.
func (g *ForwardStar) DumpDebug(w io.Writer) error {
	return g.dump(w, "orig_ptrs", " arc_dest")
}

// DOT writes the forward view as a Graphviz digraph, edges grouped by origin.
func (g *ForwardStar) DOT(w io.Writer) error {
	return g.dot(w, func(group, target core.VertexID) (core.VertexID, core.VertexID) {
		return group, target
	})
}

// DumpDebug writes the reverse view's raw arrays to w.
func (g *ReverseStar) DumpDebug(w io.Writer) error {
	return g.dump(w, "dest_ptrs", " arc_orig")
}

// DOT writes the reverse view as a Graphviz digraph, edges grouped by
// destination; lines still read origin -> destination.
func (g *ReverseStar) DOT(w io.Writer) error {
	return g.dot(w, func(group, target core.VertexID) (core.VertexID, core.VertexID) {
		return target, group
	})
}

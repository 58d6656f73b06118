package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/quaddro/stargraph/core"
	"github.com/quaddro/stargraph/dfs"
	"github.com/quaddro/stargraph/digraph"
)

// classifyAll selects classification of every vertex's outgoing edges.
const classifyAll = "ALL"

// newClassifyCmd runs a full DFS over the graph in FILE, prints the tree
// edges as they are discovered, then classifies outgoing edges of the given
// vertex (or of every vertex with ALL) via the post-hoc timestamp query.
func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify FILE VERTEX|" + classifyAll,
		Short: "Classify edges against the DFS forest of the graph in FILE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, bag, err := loadBag(args[0])
			if err != nil {
				return err
			}

			var target core.VertexID
			all := args[1] == classifyAll
			if !all {
				v, err := strconv.ParseUint(args[1], 10, 32)
				if err != nil {
					return fmt.Errorf("invalid vertex %q: %w", args[1], err)
				}
				target = core.VertexID(v)
			}

			g, err := digraph.NewForward(h.VertexCount, bag)
			if err != nil {
				return err
			}
			if err = dumpView(g.DumpDebug, g.DOT); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "tree edges:")
			res, err := dfs.Run(g, dfs.WithOnTreeEdge(func(orig, dest core.VertexID) {
				fmt.Fprintf(out, "  (%d -> %d)\n", orig, dest)
			}))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "------------------------------------")

			if all {
				for v := range g.Vertexes() {
					if err = classifyOutgoing(out, g, res, v); err != nil {
						return err
					}
				}

				return nil
			}

			return classifyOutgoing(out, g, res, target)
		},
	}
}

// classifyOutgoing prints the post-hoc classification of every outgoing
// edge of v.
func classifyOutgoing(out io.Writer, g *digraph.ForwardStar, res *dfs.Result, v core.VertexID) error {
	fmt.Fprintf(out, "classification of the outgoing edges of vertex (%d)\n", v)
	succs, err := g.Successors(v)
	if err != nil {
		return err
	}
	for _, dest := range succs {
		class, err := res.ClassifyEdge(v, dest)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  (%d -> %d) is a %s edge\n", v, dest, class)
	}

	return nil
}

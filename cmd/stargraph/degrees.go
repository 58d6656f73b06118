package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quaddro/stargraph/digraph"
)

const separator = "----------------"

// newDegreesCmd reports the first vertex with the greatest outdegree and the
// first with the greatest indegree, with their successor/predecessor runs.
func newDegreesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "degrees FILE",
		Short: "Report maximum out- and indegree of the graph in FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, bag, err := loadBag(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, separator)

			fwd, err := digraph.NewForward(h.VertexCount, bag)
			if err != nil {
				return err
			}
			if err = dumpView(fwd.DumpDebug, fwd.DOT); err != nil {
				return err
			}
			maxOut := fwd.MaxOutdegree()
			fmt.Fprintf(out, "maximum outdegree is (%d), first for vertex (%d)\n", maxOut.Degree, maxOut.Vertex)
			fmt.Fprintln(out, "its successors are:")
			succs, err := fwd.Successors(maxOut.Vertex)
			if err != nil {
				return err
			}
			printRun(out, succs)

			fmt.Fprintln(out, separator)

			rev, err := digraph.NewReverse(h.VertexCount, bag)
			if err != nil {
				return err
			}
			if err = dumpView(rev.DumpDebug, rev.DOT); err != nil {
				return err
			}
			maxIn := rev.MaxIndegree()
			fmt.Fprintf(out, "maximum indegree is (%d), first for vertex (%d)\n", maxIn.Degree, maxIn.Vertex)
			fmt.Fprintln(out, "its predecessors are:")
			preds, err := rev.Predecessors(maxIn.Vertex)
			if err != nil {
				return err
			}
			printRun(out, preds)

			fmt.Fprintln(out, separator)

			return nil
		},
	}
}

// dumpView emits the diagnostic writers selected by the persistent flags.
func dumpView(dump, dot func(io.Writer) error) error {
	if debugMode {
		if err := dump(os.Stderr); err != nil {
			return err
		}
	}
	if dotMode {
		if err := dot(os.Stderr); err != nil {
			return err
		}
	}

	return nil
}

// printRun prints a successor/predecessor run in the original
// comma-separated shape.
func printRun(out io.Writer, run []digraph.VertexID) {
	for _, v := range run {
		fmt.Fprintf(out, "%d, ", v)
	}
	fmt.Fprintln(out)
}

// Command stargraph inspects directed graphs stored in the edge-list text
// format: degree reports over the forward/reverse star views, and DFS edge
// classification.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/quaddro/stargraph/core"
	"github.com/quaddro/stargraph/edgeio"
)

var (
	debugMode bool
	dotMode   bool
)

// addOutputFlags binds the persistent diagnostic flags shared by every
// subcommand.
func addOutputFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&debugMode, "debug", false, "dump internal arrays and enable debug logging")
	fs.BoolVar(&dotMode, "dot", false, "emit the graph as Graphviz DOT to stderr")
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "stargraph",
		Short:         "Inspect directed graphs in forward/reverse star form",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debugMode {
				log.SetLevel(log.DebugLevel)
				log.Debug("debug mode is on")
			}
			if dotMode {
				log.Info("dot mode is on")
			}
		},
	}
	addOutputFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newDegreesCmd(), newClassifyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadBag reads and validates the edge-list file at path.
func loadBag(path string) (edgeio.Header, *core.EdgeBag, error) {
	f, err := os.Open(path)
	if err != nil {
		return edgeio.Header{}, nil, err
	}
	defer f.Close()

	h, bag, err := edgeio.Read(f)
	if err != nil {
		return h, nil, err
	}
	log.Debugf("got (vertex_count %d) and (edge_count %d)", h.VertexCount, h.EdgeCount)

	return h, bag, nil
}

// Command lexgraph runs the interactive graph shell: it reads the numeric
// line protocol from stdin (or a script file), mutates a single in-memory
// graph, and writes each operation's deterministic output to stdout.
// Diagnostics go to stderr through logrus and never mix into the protocol
// stream.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lexgraph/lexgraph/shell"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "lexgraph:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		inputPath string
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "lexgraph",
		Short: "Deterministic undirected weighted graph shell",
		Long: `lexgraph maintains an in-memory undirected weighted graph and executes
numeric commands against it, one per line:

  1 <name>            add vertex
  2 <u> <v> <weight>  add or update edge (weight 1-100)
  3 <name>            degree of a vertex
  4 <u> <v>           edge existence (1/0)
  5 <start>           breadth-first traversal
  6 <start>           depth-first traversal
  7 <src> <dst>       path existence (1/0)
  8                   minimum spanning tree (Prim)
  9 <src> <dst>       shortest path (Dijkstra)
  10                  print the graph
  11                  exit

All output is deterministic: every ordering ties back to ascending
lexicographic order of vertex names.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logrus.New()
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			log.SetLevel(lvl)

			in := cmd.InOrStdin()
			if inputPath != "" {
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("opening script: %w", err)
				}
				defer f.Close()
				in = f
			}

			sh := shell.New(cmd.OutOrStdout(), shell.WithLogger(log))

			return sh.Run(cmd.Context(), in)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "read commands from a script file instead of stdin")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "diagnostic verbosity: trace, debug, info, warn, error")

	return cmd
}

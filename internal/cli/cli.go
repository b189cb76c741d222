// Package cli implements the incgraph bench-driver command line.
//
// The driver loads a TOML scenario describing a graph topology, a
// mutation workload, and traversal sweeps, then runs it against the
// storage engine and prints a styled summary. It lives outside the
// library packages: the engine itself stays log-free.
//
// All commands support --verbose (-v) for debug-level logging.
// Loggers are passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version,
// typically injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the incgraph CLI and returns an error if any command
// fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "incgraph",
		Short:        "incgraph exercises the incidence-list graph engine",
		Long:         `incgraph is a bench driver for the incidence-list graph storage engine: it builds a scenario graph, runs a mutation workload (add/remove/deactivate/bundle), and sweeps it with BFS and DFS.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("incgraph %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBenchCmd())

	return root.ExecuteContext(context.Background())
}

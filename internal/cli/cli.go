// Package cli implements the lvtrace command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out io.Writer // command output; logs go to Logger
}

// New creates a CLI writing command output to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "lvtrace",
		Short:        "lvtrace narrates Kruskal, Prim and Dijkstra step by step",
		Long:         `lvtrace runs minimum-spanning-tree and shortest-path algorithms on small weighted graphs and records every state transition, for printing, interactive replay or serving over HTTP.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(versionTemplate())
	root.SetOut(c.out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.kruskalCommand())
	root.AddCommand(c.primCommand())
	root.AddCommand(c.dijkstraCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.sampleCommand())

	return root
}

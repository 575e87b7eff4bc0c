package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/graphio"
)

// sampleCommand creates the sample command.
func (c *CLI) sampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Print the built-in sample graph as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return graphio.WriteJSON(c.out, core.SampleGraph())
		},
	}
}

package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/dijkstra"
	"github.com/katalvlaran/lvtrace/prim_kruskal"
)

// replayCommand creates the replay command.
func (c *CLI) replayCommand() *cobra.Command {
	var (
		in                    graphInput
		start, source, target string
	)

	cmd := &cobra.Command{
		Use:       "replay <kruskal|prim|dijkstra>",
		Short:     "Step through a trace interactively",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"kruskal", "prim", "dijkstra"},
		RunE: func(cmd *cobra.Command, args []string) error {
			title, frames, err := c.replayFrames(cmd.Context(), args[0], &in, start, source, target)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newReplayModel(title, frames),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(c.out),
			)
			_, err = p.Run()
			return err
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&start, "start", "s", "", "Prim start node")
	cmd.Flags().StringVar(&source, "source", "", "Dijkstra source node")
	cmd.Flags().StringVar(&target, "target", "", "Dijkstra target node")

	return cmd
}

// replayFrames runs the named algorithm and returns its viewer title and frames.
func (c *CLI) replayFrames(ctx context.Context, algorithm string, in *graphInput, start, source, target string) (string, []frame, error) {
	g, err := in.load(ctx)
	if err != nil {
		return "", nil, err
	}

	switch algorithm {
	case "kruskal":
		res, err := prim_kruskal.Kruskal(&g)
		if err != nil {
			return "", nil, fmt.Errorf("kruskal: %w", err)
		}
		return "Kruskal", kruskalFrames(res), nil
	case "prim":
		res, err := prim_kruskal.Prim(&g, start)
		if err != nil {
			return "", nil, fmt.Errorf("prim: %w", err)
		}
		return "Prim from " + res.Start, primFrames(res), nil
	case "dijkstra":
		res, err := dijkstra.Dijkstra(&g, dijkstra.Source(source), dijkstra.WithTarget(target))
		if err != nil {
			return "", nil, fmt.Errorf("dijkstra: %w", err)
		}
		return "Dijkstra from " + source, dijkstraFrames(res, g.NodeIDs()), nil
	default:
		return "", nil, fmt.Errorf("unknown algorithm %q (want kruskal, prim or dijkstra)", algorithm)
	}
}

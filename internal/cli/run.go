package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/dijkstra"
	"github.com/katalvlaran/lvtrace/prim_kruskal"
	"github.com/katalvlaran/lvtrace/server"
)

// kruskalCommand creates the kruskal command.
func (c *CLI) kruskalCommand() *cobra.Command {
	var (
		in     graphInput
		format string
	)

	cmd := &cobra.Command{
		Use:   "kruskal",
		Short: "Trace Kruskal's minimum spanning tree construction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runKruskal(cmd.Context(), &in, format)
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json")

	return cmd
}

// primCommand creates the prim command.
func (c *CLI) primCommand() *cobra.Command {
	var (
		in     graphInput
		start  string
		format string
	)

	cmd := &cobra.Command{
		Use:   "prim",
		Short: "Trace Prim's minimum spanning tree construction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPrim(cmd.Context(), &in, start, format)
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&start, "start", "s", "", "start node (default: first node)")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json")

	return cmd
}

// dijkstraCommand creates the dijkstra command.
func (c *CLI) dijkstraCommand() *cobra.Command {
	var (
		in             graphInput
		source, target string
		format         string
	)

	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Trace Dijkstra's shortest-path search",
		Long: `Trace Dijkstra's shortest-path search from --source.

With --target the search stops as soon as the target is finalized and the
final step narrates the path. An unreachable target is reported, not an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDijkstra(cmd.Context(), &in, source, target, format)
		},
	}
	in.register(cmd)
	cmd.Flags().StringVar(&source, "source", "", "source node (required)")
	cmd.Flags().StringVar(&target, "target", "", "target node")
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json")

	return cmd
}

func (c *CLI) runKruskal(ctx context.Context, in *graphInput, format string) error {
	if err := validFormat(format); err != nil {
		return err
	}
	g, err := in.load(ctx)
	if err != nil {
		return err
	}

	p := newProgress(loggerFromContext(ctx))
	res, err := prim_kruskal.Kruskal(&g)
	if err != nil {
		return fmt.Errorf("kruskal: %w", err)
	}
	p.done("traced", "algorithm", server.AlgorithmKruskal, "steps", len(res.Steps))

	if format == formatJSON {
		return c.writeRun(server.KruskalResponse(res))
	}

	c.printFrames(kruskalFrames(res))
	c.printNewline()
	c.printMSTSummary(res.MSTEdges, res.TotalCost, res.Complete)
	return nil
}

func (c *CLI) runPrim(ctx context.Context, in *graphInput, start, format string) error {
	if err := validFormat(format); err != nil {
		return err
	}
	g, err := in.load(ctx)
	if err != nil {
		return err
	}

	p := newProgress(loggerFromContext(ctx))
	res, err := prim_kruskal.Prim(&g, start)
	if err != nil {
		return fmt.Errorf("prim: %w", err)
	}
	p.done("traced", "algorithm", server.AlgorithmPrim, "steps", len(res.Steps))

	if format == formatJSON {
		return c.writeRun(server.PrimResponse(res))
	}

	c.printFrames(primFrames(res))
	c.printNewline()
	c.printKeyValue("Start", res.Start)
	c.printMSTSummary(res.MSTEdges, res.TotalCost, res.Complete)
	return nil
}

func (c *CLI) runDijkstra(ctx context.Context, in *graphInput, source, target, format string) error {
	if err := validFormat(format); err != nil {
		return err
	}
	g, err := in.load(ctx)
	if err != nil {
		return err
	}

	p := newProgress(loggerFromContext(ctx))
	res, err := dijkstra.Dijkstra(&g, dijkstra.Source(source), dijkstra.WithTarget(target))
	if err != nil {
		return fmt.Errorf("dijkstra: %w", err)
	}
	p.done("traced", "algorithm", server.AlgorithmDijkstra, "steps", len(res.Steps))

	if format == formatJSON {
		return c.writeRun(server.DijkstraResponse(res))
	}

	c.printFrames(dijkstraFrames(res, g.NodeIDs()))
	c.printNewline()
	c.printDijkstraSummary(&g, res)
	return nil
}

// writeRun prints the same envelope the HTTP API returns.
func (c *CLI) writeRun(resp server.RunResponse) error {
	resp.RunID = uuid.NewString()
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func (c *CLI) printFrames(frames []frame) {
	for _, f := range frames {
		c.printStep(f.step, f.action, f.description)
	}
}

func (c *CLI) printMSTSummary(edges []prim_kruskal.TraceEdge, cost float64, complete bool) {
	c.printKeyValue("Tree", edgeList(edges))
	c.printKeyValue("Cost", num(cost))
	if complete {
		c.printSuccess("Spanning tree complete (%d edges)", len(edges))
	} else {
		c.printWarning("Graph is disconnected; showing a partial forest (%d edges)", len(edges))
	}
}

func (c *CLI) printDijkstraSummary(g *core.Graph, res *dijkstra.Result) {
	if res.Target != "" {
		if !res.PathExists {
			c.printWarning("No path from %s to %s", res.Source, res.Target)
			return
		}
		c.printKeyValue("Path", pathString(res.Path))
		c.printKeyValue("Distance", res.Distances[res.Target].String())
		return
	}

	for _, id := range g.NodeIDs() {
		p, ok := res.ShortestPaths[id]
		if !ok {
			c.printKeyValue(id, "unreachable")
			continue
		}
		c.printKeyValue(id, fmt.Sprintf("%s  %s", p.Distance, pathString(p.Nodes)))
	}
}

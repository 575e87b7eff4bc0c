package cli

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvtrace/prim_kruskal"
)

// errCostMismatch reports a connected graph whose Kruskal and Prim costs differ.
var errCostMismatch = errors.New("kruskal and prim disagree on the spanning tree cost")

// compareCommand creates the compare command.
func (c *CLI) compareCommand() *cobra.Command {
	var (
		in    graphInput
		start string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run Kruskal and Prim concurrently and compare their trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompare(cmd.Context(), &in, start)
		},
	}
	in.register(cmd)
	cmd.Flags().StringVarP(&start, "start", "s", "", "Prim start node (default: first node)")

	return cmd
}

func (c *CLI) runCompare(ctx context.Context, in *graphInput, start string) error {
	g, err := in.load(ctx)
	if err != nil {
		return err
	}

	// Each run owns its state; the graph is only read.
	var kruskal, prim prim_kruskal.Summary
	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s, err := prim_kruskal.Compute(&g, prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
		kruskal = s
		return err
	})
	eg.Go(func() error {
		s, err := prim_kruskal.Compute(&g, prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(start))
		prim = s
		return err
	})
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("compare: %w", err)
	}

	for _, s := range []prim_kruskal.Summary{kruskal, prim} {
		c.printKeyValue(s.Method, fmt.Sprintf("cost %s, %d edges, %d steps", num(s.TotalCost), len(s.MSTEdges), s.StepCount))
	}

	if !kruskal.Complete || !prim.Complete {
		c.printWarning("Graph is disconnected; costs are not comparable")
		return nil
	}
	if !sameCost(kruskal.TotalCost, prim.TotalCost) {
		return fmt.Errorf("%w: %s vs %s", errCostMismatch, num(kruskal.TotalCost), num(prim.TotalCost))
	}
	c.printSuccess("Both algorithms agree: cost %s", num(kruskal.TotalCost))

	return nil
}

// sameCost reports whether two spanning tree costs are equal up to float
// rounding. Kruskal and Prim sum the same weights in different orders.
func sameCost(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

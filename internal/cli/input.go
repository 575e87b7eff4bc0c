package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvtrace/core"
	"github.com/katalvlaran/lvtrace/graphio"
)

var (
	errNoGraph       = errors.New("no graph: pass --graph FILE or --sample")
	errGraphConflict = errors.New("--graph and --sample are mutually exclusive")
)

// graphInput holds the flags that select the input graph.
type graphInput struct {
	path   string
	sample bool
}

func (in *graphInput) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&in.path, "graph", "g", "", "graph file (.json or .hcl)")
	cmd.Flags().BoolVar(&in.sample, "sample", false, "use the built-in six-node sample graph")
}

// load returns the selected graph.
func (in *graphInput) load(ctx context.Context) (core.Graph, error) {
	logger := loggerFromContext(ctx)
	switch {
	case in.path != "" && in.sample:
		return core.Graph{}, errGraphConflict
	case in.sample:
		logger.Debug("using sample graph")
		return core.SampleGraph(), nil
	case in.path == "":
		return core.Graph{}, errNoGraph
	}

	g, err := graphio.LoadFile(in.path)
	if err != nil {
		return core.Graph{}, fmt.Errorf("load graph %s: %w", in.path, err)
	}
	logger.Debug("loaded graph", "path", in.path, "nodes", len(g.Nodes), "edges", len(g.Edges))

	return g, nil
}

// validFormat checks a --format value.
func validFormat(f string) error {
	if f != formatText && f != formatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", f, formatText, formatJSON)
	}
	return nil
}

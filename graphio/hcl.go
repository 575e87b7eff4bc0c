package graphio

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/lvtrace/core"
)

// hclGraphFile is the top-level structure of a graph file:
//
//	node "A" {
//	  label = "Depot"
//	  x     = 100
//	  y     = 100
//	}
//
//	edge {
//	  from   = "A"
//	  to     = "B"
//	  weight = 4
//	}
type hclGraphFile struct {
	Nodes []*hclNode `hcl:"node,block"`
	Edges []*hclEdge `hcl:"edge,block"`
}

type hclNode struct {
	ID    string  `hcl:"id,label"`
	Label string  `hcl:"label,optional"`
	X     float64 `hcl:"x,optional"`
	Y     float64 `hcl:"y,optional"`
}

type hclEdge struct {
	ID       string  `hcl:"id,optional"`
	From     string  `hcl:"from"`
	To       string  `hcl:"to"`
	Weight   float64 `hcl:"weight"`
	Directed bool    `hcl:"directed,optional"`
}

// LoadHCL parses the graph file at path.
func LoadHCL(path string) (core.Graph, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return core.Graph{}, fmt.Errorf("%w: %s: %w", ErrSyntax, path, diags)
	}

	return decodeHCL(file, path)
}

// ParseHCL parses src as a graph file; filename is used in diagnostics only.
func ParseHCL(src []byte, filename string) (core.Graph, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return core.Graph{}, fmt.Errorf("%w: %s: %w", ErrSyntax, filename, diags)
	}

	return decodeHCL(file, filename)
}

// decodeHCL maps the parsed body onto core.Graph. Missing required attributes
// (from, to, weight) are schema violations and wrap core.ErrInvalidGraph.
func decodeHCL(file *hcl.File, filename string) (core.Graph, error) {
	var parsed hclGraphFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return core.Graph{}, fmt.Errorf("%w: %s: %w", core.ErrInvalidGraph, filename, diags)
	}

	g := core.Graph{
		Nodes: make([]core.Node, 0, len(parsed.Nodes)),
		Edges: make([]core.Edge, 0, len(parsed.Edges)),
	}
	for _, n := range parsed.Nodes {
		g.Nodes = append(g.Nodes, core.Node{ID: n.ID, Label: n.Label, X: n.X, Y: n.Y})
	}
	for _, e := range parsed.Edges {
		g.Edges = append(g.Edges, core.Edge{
			ID:       e.ID,
			From:     e.From,
			To:       e.To,
			Weight:   e.Weight,
			Directed: e.Directed,
		})
	}

	return g, nil
}

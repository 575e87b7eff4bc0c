// Package graphio reads core.Graph values from JSON documents and HCL files.
//
// Both readers enforce the structural presence rules of the wire form
// (a nodes list, an edges list, and from/to/weight on every edge) before the
// graph reaches an engine. Violations wrap core.ErrInvalidGraph so callers can
// treat them exactly like core.Validate failures.
package graphio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvtrace/core"
)

// ErrSyntax indicates input that is not well-formed JSON or HCL.
var ErrSyntax = errors.New("graphio: syntax error")

// wireGraph mirrors core.Graph with pointers so absence can be told apart
// from an empty value.
type wireGraph struct {
	Nodes *[]wireNode `json:"nodes"`
	Edges *[]wireEdge `json:"edges"`
}

type wireNode struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type wireEdge struct {
	ID       string   `json:"id"`
	From     *string  `json:"from"`
	To       *string  `json:"to"`
	Weight   *float64 `json:"weight"`
	Directed bool     `json:"directed"`
}

// ParseJSON decodes a graph document.
func ParseJSON(data []byte) (core.Graph, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return core.Graph{}, fmt.Errorf("%w: graph is required", core.ErrInvalidGraph)
	}

	var w wireGraph
	if err := json.Unmarshal(data, &w); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return core.Graph{}, fmt.Errorf("%w: field %q: expected %s", core.ErrInvalidGraph, typeErr.Field, typeErr.Type)
		}
		return core.Graph{}, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return w.build()
}

// DecodeJSON reads a whole graph document from r.
func DecodeJSON(r io.Reader) (core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return core.Graph{}, fmt.Errorf("graphio: read: %w", err)
	}

	return ParseJSON(data)
}

// build checks presence rules and converts to core.Graph.
func (w wireGraph) build() (core.Graph, error) {
	if w.Nodes == nil {
		return core.Graph{}, fmt.Errorf("%w: nodes list is missing", core.ErrInvalidGraph)
	}
	if w.Edges == nil {
		return core.Graph{}, fmt.Errorf("%w: edges list is missing", core.ErrInvalidGraph)
	}

	g := core.Graph{
		Nodes: make([]core.Node, 0, len(*w.Nodes)),
		Edges: make([]core.Edge, 0, len(*w.Edges)),
	}
	for _, n := range *w.Nodes {
		g.Nodes = append(g.Nodes, core.Node{ID: n.ID, Label: n.Label, X: n.X, Y: n.Y})
	}
	for i, e := range *w.Edges {
		if e.From == nil || e.To == nil {
			return core.Graph{}, fmt.Errorf("%w: edge %d must have both from and to", core.ErrInvalidGraph, i)
		}
		if e.Weight == nil {
			return core.Graph{}, fmt.Errorf("%w: edge %d has no weight", core.ErrInvalidGraph, i)
		}
		g.Edges = append(g.Edges, core.Edge{
			ID:       e.ID,
			From:     *e.From,
			To:       *e.To,
			Weight:   *e.Weight,
			Directed: e.Directed,
		})
	}

	return g, nil
}

// WriteJSON writes g as indented JSON followed by a newline.
func WriteJSON(w io.Writer, g core.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(g)
}

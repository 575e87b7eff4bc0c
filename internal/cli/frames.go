package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtrace/dijkstra"
	"github.com/katalvlaran/lvtrace/prim_kruskal"
	"github.com/katalvlaran/lvtrace/trace"
)

// frame is the printable form of one step, shared by the text output and the
// replay viewer.
type frame struct {
	step        int
	action      trace.Action
	description string
	details     []string // state lines shown by replay
}

func kruskalFrames(res *prim_kruskal.KruskalResult) []frame {
	frames := make([]frame, len(res.Steps))
	for i, s := range res.Steps {
		edges := make([]string, len(s.SortedEdges))
		for j, e := range s.SortedEdges {
			mark := " "
			switch e.Status {
			case prim_kruskal.StatusAccepted:
				mark = "+"
			case prim_kruskal.StatusRejected:
				mark = "x"
			}
			if j == s.CurrentIndex {
				mark = ">" + mark
			} else {
				mark = " " + mark
			}
			edges[j] = fmt.Sprintf("%s %s-%s (%s)", mark, e.From, e.To, num(e.Weight))
		}

		comps := make([]string, len(s.UnionFind))
		for j, c := range s.UnionFind {
			comps[j] = "{" + strings.Join(c.Members, " ") + "}"
		}

		details := []string{"Edges:"}
		details = append(details, edges...)
		details = append(details,
			"Components: "+strings.Join(comps, " "),
			"Tree:       "+edgeList(s.MSTEdges),
			"Cost:       "+num(s.TotalCost),
		)
		frames[i] = frame{step: s.Step, action: s.Action, description: s.Description, details: details}
	}

	return frames
}

func primFrames(res *prim_kruskal.PrimResult) []frame {
	frames := make([]frame, len(res.Steps))
	for i, s := range res.Steps {
		queue := make([]string, len(s.PriorityQueue))
		for j, e := range s.PriorityQueue {
			queue[j] = fmt.Sprintf("%s-%s (%s)", e.From, e.To, num(e.Weight))
		}

		details := []string{
			"Visited:  " + strings.Join(s.VisitedNodes, " "),
			"Frontier: " + strings.Join(queue, ", "),
			"Tree:     " + edgeList(s.MSTEdges),
			"Cost:     " + num(s.TotalCost),
		}
		if len(s.NewEdges) > 0 {
			details = append(details, "New:      "+edgeList(s.NewEdges))
		}
		frames[i] = frame{step: s.Step, action: s.Action, description: s.Description, details: details}
	}

	return frames
}

// dijkstraFrames lists distances in nodes order so frames line up.
func dijkstraFrames(res *dijkstra.Result, nodes []string) []frame {
	frames := make([]frame, len(res.Steps))
	for i, s := range res.Steps {
		dists := make([]string, len(nodes))
		for j, id := range nodes {
			via := ""
			if p := s.Previous[id]; p != "" {
				via = " via " + p
			}
			dists[j] = fmt.Sprintf("  %-6s %s%s", id, s.Distances[id], via)
		}

		queue := make([]string, len(s.PriorityQueue))
		for j, q := range s.PriorityQueue {
			queue[j] = fmt.Sprintf("%s (%s)", q.Node, q.Distance)
		}

		details := []string{"Distances:"}
		details = append(details, dists...)
		details = append(details,
			"Visited: "+strings.Join(s.Visited, " "),
			"Queue:   "+strings.Join(queue, ", "),
		)
		frames[i] = frame{step: s.Step, action: s.Action, description: s.Description, details: details}
	}

	return frames
}

func edgeList(edges []prim_kruskal.TraceEdge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.From + "-" + e.To
	}

	return strings.Join(parts, ", ")
}

func pathString(nodes []string) string {
	return strings.Join(nodes, " "+iconArrow+" ")
}

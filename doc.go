// Package lvtrace computes and narrates, step by step, Kruskal's and Prim's
// minimum spanning tree constructions and Dijkstra's single-source shortest
// path search over small, explicitly supplied weighted graphs.
//
// 🚀 What is lvtrace?
//
//	A step-trace engine: every algorithm runs to completion and returns an
//	ordered, replayable sequence of immutable Step snapshots plus a final
//	summary. Renderers (the HTTP API, the CLI, the terminal replay viewer)
//	only read those snapshots.
//
// Under the hood, everything is organized under these subpackages:
//
//	core/         - Graph, Node, Edge, validation, adjacency lists, sample graph
//	dsu/          - index-based union-find (path compression, union by rank)
//	trace/        - Action tags and the step Recorder
//	prim_kruskal/ - Kruskal and Prim trace engines, Compute dispatch
//	dijkstra/     - Dijkstra trace engine, Distance with an explicit Infinity
//	graphio/      - graph documents in JSON and HCL
//	config/       - TOML server configuration
//	metrics/      - Prometheus collectors for engine runs
//	server/       - chi HTTP adapter
//	internal/cli/ - cobra commands, lipgloss output, bubbletea replay
//
// Quick example:
//
//	g := core.SampleGraph()
//	res, err := prim_kruskal.Kruskal(&g)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range res.Steps {
//	    fmt.Println(s.Step, s.Action, s.Description)
//	}
//
// Binary:
//
//	go install github.com/katalvlaran/lvtrace/cmd/lvtrace@latest
//	lvtrace dijkstra --sample --source A --target F
//	lvtrace replay prim --sample
//	lvtrace serve --config lvtrace.toml
package lvtrace

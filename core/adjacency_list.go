package core

// Arc is one traversable direction of an Edge.
type Arc struct {
	// To is the far endpoint.
	To string `json:"to"`

	// Weight is copied from the originating edge.
	Weight float64 `json:"weight"`

	// EdgeID is the Key of the originating edge; both arcs of an undirected
	// edge share it.
	EdgeID string `json:"edgeId"`
}

// Adjacency maps a node ID to its outgoing arcs in edge input order.
type Adjacency map[string][]Arc

// BuildAdjacency converts the edge list of g into per-node neighbour lists.
//
// Every node receives an entry (possibly empty). Directed edges contribute a
// single From→To arc; undirected edges contribute From→To followed by To→From.
// Edges whose endpoints are not nodes of g are skipped without error.
//
// Complexity: O(V + E) time and space.
func BuildAdjacency(g *Graph) Adjacency {
	adj := make(Adjacency, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, ok := adj[n.ID]; !ok {
			adj[n.ID] = []Arc{}
		}
	}

	for _, e := range g.Edges {
		_, okFrom := adj[e.From]
		_, okTo := adj[e.To]
		if !okFrom || !okTo {
			// unknown endpoint
			continue
		}
		id := e.Key()
		adj[e.From] = append(adj[e.From], Arc{To: e.To, Weight: e.Weight, EdgeID: id})
		if !e.Directed {
			adj[e.To] = append(adj[e.To], Arc{To: e.From, Weight: e.Weight, EdgeID: id})
		}
	}

	return adj
}

// Neighbors returns the arcs leaving id, or nil when id is unknown.
// The returned slice aliases the adjacency; callers copy before mutating.
func (a Adjacency) Neighbors(id string) []Arc {
	return a[id]
}

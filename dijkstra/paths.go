package dijkstra

// reconstruct walks predecessor pointers from node back to the source and
// returns the path source → … → node, or nil when the chain is broken or
// longer than the node count (a malformed pointer cycle).
func (r *runner) reconstruct(node string) []string {
	src := r.options.Source
	limit := len(r.ids) + 1

	rev := []string{node}
	cur := node
	for steps := 0; cur != src; steps++ {
		if steps >= limit {
			return nil
		}
		p := r.prev[cur]
		if p == "" {
			return nil
		}
		rev = append(rev, p)
		cur = p
	}

	// Reverse in place.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

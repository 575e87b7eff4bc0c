package dijkstra

// Clone helpers. Each returns freshly allocated, non-nil storage so a Step
// never aliases runner state and always renders [] / {} in JSON.

func cloneDistances(m map[string]Distance) map[string]Distance {
	out := make(map[string]Distance, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

func cloneStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

func cloneStrings(ss []string) []string {
	out := make([]string, len(ss))
	copy(out, ss)

	return out
}

func cloneQueue(q []QueueEntry) []QueueEntry {
	out := make([]QueueEntry, len(q))
	copy(out, q)

	return out
}

func cloneUpdates(u []Update) []Update {
	out := make([]Update, len(u))
	copy(out, u)

	return out
}

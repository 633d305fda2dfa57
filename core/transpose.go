// Package core: graph transposition.

package core

// Transpose returns a graph with every directed edge reversed. Each reversed
// edge gets an ID recomputed from its swapped endpoints (the sequence
// disambiguator is preserved), and its attribute entry is re-keyed to the
// new ID. Undirected edges are symmetric, so their content, IDs, and
// attribute entries are untouched; node-keyed attributes carry over as-is.
// Transposing twice yields a graph structurally equal to the original.
// Complexity: O(V log V + E).
func (g *Graph) Transpose() *Graph {
	out := &Graph{
		allowParallel: g.allowParallel,
		undirected:    g.undirected,
		nextSeq:       g.nextSeq,
		nodes:         make(map[string]*nodeState, len(g.nodes)),
		attrs:         make(map[string]Attrs, len(g.attrs)),
	}
	for id := range g.nodes {
		out.nodes[id] = newNodeState()
	}
	for id, a := range g.attrs {
		if _, isNode := g.nodes[id]; isNode {
			out.attrs[id] = a
		}
	}

	for _, e := range g.UniqueEdges() {
		ne := e
		if e.IsDirected() {
			ne = newDirectedEdge(e.dest, e.src, e.seq)
		}
		out.insertEdgeInstances(ne)
		if a, ok := g.attrs[e.id]; ok {
			out.attrs[ne.id] = a
		}
	}
	return out
}

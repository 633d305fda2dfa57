// Package core: node lifecycle and per-node read access.
//
// All enumerations return deterministically sorted results. Degree counters
// are maintained incrementally by the edge mutations and only read here.

package core

import "sort"

// AddNode returns a graph containing a node with the given ID. Idempotent:
// adding an existing node returns the receiver unchanged.
// Complexity: O(V) for the copy-on-write header copy.
func (g *Graph) AddNode(id string) *Graph {
	if _, ok := g.nodes[id]; ok {
		return g
	}
	out := g.derive()
	out.nodes[id] = newNodeState()
	return out
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// RemoveNode returns a graph without the node and without every edge
// incident to it, in either direction. Removing a missing node is a no-op.
// Complexity: O(V + deg(id)).
func (g *Graph) RemoveNode(id string) *Graph {
	ns, ok := g.nodes[id]
	if !ok {
		return g
	}

	// Collect incident logical edges first; one undirected edge may appear
	// in several of the node's sets but must be removed exactly once.
	seen := make(map[string]struct{})
	var incident []Edge
	collect := func(sets map[string][]Edge) {
		for _, set := range sets {
			for _, e := range set {
				if _, dup := seen[e.id]; dup {
					continue
				}
				seen[e.id] = struct{}{}
				incident = append(incident, e.primary())
			}
		}
	}
	collect(ns.out)
	collect(ns.in)

	out := g.derive()
	for _, e := range incident {
		out.removeEdgeInstances(e)
		delete(out.attrs, e.id)
	}
	delete(out.nodes, id)
	delete(out.attrs, id)
	return out
}

// Nodes returns all node IDs in sorted order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int { return len(g.nodes) }

// OutDegree returns the total count of edge instances leaving id, where one
// logical undirected edge counts once per endpoint. Unknown nodes have
// degree 0.
func (g *Graph) OutDegree(id string) int {
	if ns, ok := g.nodes[id]; ok {
		return ns.outDegree
	}
	return 0
}

// InDegree returns the total count of edge instances arriving at id.
// Unknown nodes have degree 0.
func (g *Graph) InDegree(id string) int {
	if ns, ok := g.nodes[id]; ok {
		return ns.inDegree
	}
	return 0
}

// OutEdges returns every edge instance leaving id, sorted by neighbor then
// insertion order. Undirected edges incident to id appear oriented away
// from it.
// Complexity: O(deg log deg).
func (g *Graph) OutEdges(id string) []Edge {
	ns, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return flattenEdgeSets(ns.out)
}

// InEdges returns every edge instance arriving at id, sorted by neighbor
// then insertion order.
// Complexity: O(deg log deg).
func (g *Graph) InEdges(id string) []Edge {
	ns, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return flattenEdgeSets(ns.in)
}

// NeighborIDs returns the unique, sorted IDs of all nodes adjacent to id in
// either direction.
// Complexity: O(deg log deg).
func (g *Graph) NeighborIDs(id string) []string {
	ns, ok := g.nodes[id]
	if !ok {
		return nil
	}
	seen := make(map[string]struct{}, len(ns.out)+len(ns.in))
	for nb := range ns.out {
		seen[nb] = struct{}{}
	}
	for nb := range ns.in {
		seen[nb] = struct{}{}
	}
	ids := make([]string, 0, len(seen))
	for nb := range seen {
		ids = append(ids, nb)
	}
	sort.Strings(ids)
	return ids
}

// flattenEdgeSets concatenates a node's edge sets in sorted neighbor order,
// preserving insertion order within each set.
func flattenEdgeSets(sets map[string][]Edge) []Edge {
	neighbors := make([]string, 0, len(sets))
	total := 0
	for nb, set := range sets {
		neighbors = append(neighbors, nb)
		total += len(set)
	}
	sort.Strings(neighbors)
	out := make([]Edge, 0, total)
	for _, nb := range neighbors {
		out = append(out, sets[nb]...)
	}
	return out
}

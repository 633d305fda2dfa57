// Package core: edge lifecycle.
//
// AddEdge follows the graph's default orientation; AddDirectedEdge and
// AddUndirectedEdge force a kind, which is what lets one graph hold both.
// When parallel edges are disallowed, default and forced-directed additions
// merge attributes into the conflicting edge, while forced-undirected
// additions remove whatever connects the pair in either direction and
// replace it with one fresh undirected edge carrying the union of the
// attribute maps (the directed→undirected upgrade).
//
// Adjacency bookkeeping invariants maintained here:
//   - a directed edge occupies out[src][dest] and in[dest][src], nothing else;
//   - an undirected edge additionally occupies the two swapped slots via its
//     mirror instance, and bumps each endpoint's out- and in-degree by one;
//   - a self-loop applies both views to the single node record exactly once.

package core

// AddEdge returns a graph with an edge from src to dest following the
// graph's default orientation. Missing endpoint nodes are created. When
// parallel edges are disallowed and an edge already connects the pair, the
// new attributes are merged into it instead (a no-op if attrs is empty).
// Complexity: O(V).
func (g *Graph) AddEdge(src, dest string, attrs Attrs) *Graph {
	kind := KindDirected
	if g.undirected {
		kind = KindUndirected
	}
	return g.addEdgeDefault(src, dest, attrs, kind)
}

// AddDirectedEdge returns a graph with a directed edge src→dest regardless
// of the graph's default orientation. Conflict policy matches AddEdge.
func (g *Graph) AddDirectedEdge(src, dest string, attrs Attrs) *Graph {
	return g.addEdgeDefault(src, dest, attrs, KindDirected)
}

// AddUndirectedEdge returns a graph with an undirected edge between src and
// dest regardless of the graph's default orientation.
//
// When parallel edges are disallowed and anything already connects the pair
// (a directed src→dest, a directed dest→src, or an undirected edge), every
// such edge is fully removed and one fresh undirected edge takes its place,
// its attribute map the union of old forward, old backward, and new
// attributes, later sources winning on collision.
func (g *Graph) AddUndirectedEdge(src, dest string, attrs Attrs) *Graph {
	if g.allowParallel {
		return g.insertNewEdge(src, dest, attrs, KindUndirected)
	}

	forward, fok := g.firstEdgeBetween(src, dest)
	backward, bok := g.firstEdgeBetween(dest, src)
	// Both lookups see the same logical edge when it is undirected (the
	// mirror occupies the reverse slot); count it once.
	if fok && bok && backward.id == forward.id {
		bok = false
	}
	if !fok && !bok {
		return g.insertNewEdge(src, dest, attrs, KindUndirected)
	}

	union := make(Attrs)
	if fok {
		for k, v := range g.attrs[forward.id] {
			union[k] = v
		}
	}
	if bok {
		for k, v := range g.attrs[backward.id] {
			union[k] = v
		}
	}
	for k, v := range attrs {
		union[k] = v
	}

	out := g.derive()
	if fok {
		out.removeEdgeInstances(forward.primary())
		delete(out.attrs, forward.id)
	}
	if bok {
		out.removeEdgeInstances(backward.primary())
		delete(out.attrs, backward.id)
	}
	out.nextSeq++
	e := newUndirectedEdge(src, dest, out.nextSeq)
	out.insertEdgeInstances(e)
	out.setAttrsEntry(e.id, union)
	return out
}

// RemoveEdge resolves the descriptor (an Edge value, an EdgeRef, or a
// 2/3-element description) to a concrete edge and returns a graph without
// it. A descriptor that matches no present edge is a silent no-op; only a
// malformed descriptor is an error (ErrInvalidEdgeDescriptor).
// Complexity: O(V).
func (g *Graph) RemoveEdge(entity any) (*Graph, error) {
	var target Edge
	switch v := entity.(type) {
	case Edge:
		target = v
	default:
		ref, err := asEdgeRef(entity)
		if err != nil {
			return g, err
		}
		e, ok := g.firstEdgeBetween(ref.Src, ref.Dest)
		if !ok {
			return g, nil
		}
		target = e
	}

	p := target.primary()
	if !g.containsEdge(p) {
		return g, nil
	}
	out := g.derive()
	out.removeEdgeInstances(p)
	delete(out.attrs, p.id)
	return out, nil
}

// HasEdgeBetween reports whether at least one edge instance runs from src
// toward dest. Undirected edges connect both ways. O(1).
func (g *Graph) HasEdgeBetween(src, dest string) bool {
	ns, ok := g.nodes[src]
	return ok && len(ns.out[dest]) > 0
}

// EdgesBetween returns the edge instances running from src toward dest, in
// insertion order. Undirected edges appear oriented src→dest.
func (g *Graph) EdgesBetween(src, dest string) []Edge {
	ns, ok := g.nodes[src]
	if !ok {
		return nil
	}
	set := ns.out[dest]
	if len(set) == 0 {
		return nil
	}
	out := make([]Edge, len(set))
	copy(out, set)
	return out
}

// Edges returns every edge instance in the graph, sorted by source node then
// neighbor. One logical undirected edge contributes two instances (primary
// and mirror); use UniqueEdges for one entry per logical edge.
// Complexity: O(V log V + E).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, id := range g.Nodes() {
		out = append(out, flattenEdgeSets(g.nodes[id].out)...)
	}
	return out
}

// UniqueEdges returns one instance per logical edge, directed edges as-is
// and undirected edges by their primary orientation, sorted by source node
// then neighbor.
// Complexity: O(V log V + E).
func (g *Graph) UniqueEdges() []Edge {
	all := g.Edges()
	out := all[:0]
	for _, e := range all {
		if !e.mirror {
			out = append(out, e)
		}
	}
	return out
}

// EdgeCount returns the number of physical edge instances (mirrors counted).
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, ns := range g.nodes {
		total += ns.outDegree
	}
	return total
}

// UniqueEdgeCount returns the number of logical edges. Complexity: O(V+E).
func (g *Graph) UniqueEdgeCount() int {
	total := 0
	for _, ns := range g.nodes {
		for _, set := range ns.out {
			for _, e := range set {
				if !e.mirror {
					total++
				}
			}
		}
	}
	return total
}

// addEdgeDefault implements the shared creation path for AddEdge and
// AddDirectedEdge: merge into a conflicting edge when parallels are
// disallowed, otherwise create a fresh edge of the requested kind.
func (g *Graph) addEdgeDefault(src, dest string, attrs Attrs, kind EdgeKind) *Graph {
	if !g.allowParallel {
		if e, ok := g.conflictingEdge(src, dest, kind); ok {
			if len(attrs) == 0 {
				return g
			}
			out, err := g.MergeAttrs(e, attrs)
			if err != nil {
				return g
			}
			return out
		}
	}
	return g.insertNewEdge(src, dest, attrs, kind)
}

// conflictingEdge finds the edge a non-parallel addition would collide
// with: the ordered pair for directed additions, either orientation for
// undirected ones (unordered-pair uniqueness).
func (g *Graph) conflictingEdge(src, dest string, kind EdgeKind) (Edge, bool) {
	if e, ok := g.firstEdgeBetween(src, dest); ok {
		return e, true
	}
	if kind == KindUndirected && src != dest {
		if e, ok := g.firstEdgeBetween(dest, src); ok {
			return e, true
		}
	}
	return Edge{}, false
}

// firstEdgeBetween returns the first edge instance stored in the src→dest
// slot. "First" is insertion order; with parallel edges disallowed the slot
// holds at most one instance.
func (g *Graph) firstEdgeBetween(src, dest string) (Edge, bool) {
	ns, ok := g.nodes[src]
	if !ok {
		return Edge{}, false
	}
	set := ns.out[dest]
	if len(set) == 0 {
		return Edge{}, false
	}
	return set[0], true
}

// containsEdge reports whether the primary instance p is present in the
// adjacency structure.
func (g *Graph) containsEdge(p Edge) bool {
	ns, ok := g.nodes[p.src]
	if !ok {
		return false
	}
	for _, e := range ns.out[p.dest] {
		if e.id == p.id {
			return true
		}
	}
	return false
}

// insertNewEdge derives a new graph, allocates the next sequence number,
// creates the endpoints if missing, and installs a fresh edge of the given
// kind with the given attributes.
func (g *Graph) insertNewEdge(src, dest string, attrs Attrs, kind EdgeKind) *Graph {
	out := g.derive()
	out.nextSeq++
	var e Edge
	if kind == KindDirected {
		e = newDirectedEdge(src, dest, out.nextSeq)
	} else {
		e = newUndirectedEdge(src, dest, out.nextSeq)
	}
	out.insertEdgeInstances(e)
	out.setAttrsEntry(e.id, attrs.clone())
	return out
}

// insertEdgeInstances installs the primary instance e and, for undirected
// non-loop edges, its mirror, updating degree counters in lock-step. Both
// the source view and destination view of a self-loop are composed onto the
// single node record before anything is stored, never as two writes to
// stale copies. Only valid on private derivations.
func (g *Graph) insertEdgeInstances(e Edge) {
	g.ensureNode(e.src)
	g.ensureNode(e.dest)

	srcState := g.mutableNode(e.src)
	destState := srcState
	if e.dest != e.src {
		destState = g.mutableNode(e.dest)
	}

	srcState.out[e.dest] = appendEdge(srcState.out[e.dest], e)
	srcState.outDegree++
	destState.in[e.src] = appendEdge(destState.in[e.src], e)
	destState.inDegree++

	if e.kind == KindUndirected && e.src != e.dest {
		m, _ := e.OtherDirection()
		destState.out[m.dest] = appendEdge(destState.out[m.dest], m)
		destState.outDegree++
		srcState.in[m.src] = appendEdge(srcState.in[m.src], m)
		srcState.inDegree++
	}
}

// removeEdgeInstances deletes the primary instance p and, for undirected
// non-loop edges, its mirror, keeping degree bookkeeping exactly symmetric
// with insertion. Only valid on private derivations.
func (g *Graph) removeEdgeInstances(p Edge) {
	srcState := g.mutableNode(p.src)
	destState := srcState
	if p.dest != p.src {
		destState = g.mutableNode(p.dest)
	}

	srcState.out[p.dest] = removeEdgeByID(srcState.out[p.dest], p.id)
	srcState.outDegree--
	destState.in[p.src] = removeEdgeByID(destState.in[p.src], p.id)
	destState.inDegree--

	if p.kind == KindUndirected && p.src != p.dest {
		destState.out[p.src] = removeEdgeByID(destState.out[p.src], p.id)
		destState.outDegree--
		srcState.in[p.dest] = removeEdgeByID(srcState.in[p.dest], p.id)
		srcState.inDegree--
	}

	dropEmptySets(srcState)
	dropEmptySets(destState)
}

// appendEdge grows an edge set without aliasing the backing array of the
// shared original.
func appendEdge(set []Edge, e Edge) []Edge {
	out := make([]Edge, len(set), len(set)+1)
	copy(out, set)
	return append(out, e)
}

// removeEdgeByID filters id out of a copy of the set.
func removeEdgeByID(set []Edge, id string) []Edge {
	out := make([]Edge, 0, len(set))
	for _, e := range set {
		if e.id != id {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// dropEmptySets removes empty neighbor buckets left behind by removal.
func dropEmptySets(ns *nodeState) {
	for nb, set := range ns.out {
		if len(set) == 0 {
			delete(ns.out, nb)
		}
	}
	for nb, set := range ns.in {
		if len(set) == 0 {
			delete(ns.in, nb)
		}
	}
}

// Package core: the attribute-based query engine.
//
// FindEdges narrows candidates by the reserved "src"/"dest" keys, then
// filters by submap match: every remaining key/value pair must appear, with
// a deeply equal value, in the candidate's attribute map. Results are lazy
// sequences; consuming part of one and walking away is the only form of
// cancellation this package needs.

package core

import (
	"iter"
	"reflect"
)

// Reserved FindEdges query keys. They narrow the candidate set; all other
// keys filter candidates by attribute equality.
const (
	QuerySrc  = "src"
	QueryDest = "dest"
)

// FindEdges returns a lazy sequence of the edge instances matching query:
//
//   - src and dest present: candidates are the direct src→dest slot;
//   - only src: all outgoing instances of src;
//   - only dest: all incoming instances of dest;
//   - neither: every instance in the graph.
//
// Remaining keys filter by submap match against the edge's attributes.
// The sequence is finite and yields in adjacency iteration order; callers
// must not depend on a particular tie-break between parallel edges.
func (g *Graph) FindEdges(query Attrs) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for e := range g.queryCandidates(query) {
			if g.matchesQuery(e, query) && !yield(e) {
				return
			}
		}
	}
}

// FindEdge returns the first edge matching query, if any.
func (g *Graph) FindEdge(query Attrs) (Edge, bool) {
	for e := range g.FindEdges(query) {
		return e, true
	}
	return Edge{}, false
}

// queryCandidates picks the narrowest candidate enumeration the src/dest
// keys allow. A reserved key bound to a non-string value can match nothing.
func (g *Graph) queryCandidates(query Attrs) iter.Seq[Edge] {
	srcVal, hasSrc := query[QuerySrc]
	destVal, hasDest := query[QueryDest]
	src, srcIsID := srcVal.(string)
	dest, destIsID := destVal.(string)
	if (hasSrc && !srcIsID) || (hasDest && !destIsID) {
		return func(yield func(Edge) bool) {}
	}

	switch {
	case hasSrc && hasDest:
		return edgeSlice(g.EdgesBetween(src, dest))
	case hasSrc:
		return edgeSlice(g.OutEdges(src))
	case hasDest:
		return edgeSlice(g.InEdges(dest))
	default:
		return g.allEdgeInstances()
	}
}

// matchesQuery applies the submap filter: extra attributes on the edge are
// irrelevant, every non-reserved query key must be bound to an equal value.
func (g *Graph) matchesQuery(e Edge, query Attrs) bool {
	attrs := g.attrs[e.id]
	for k, want := range query {
		if k == QuerySrc || k == QueryDest {
			continue
		}
		got, ok := attrs[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// allEdgeInstances yields every instance in the graph lazily, nodes in
// sorted order for reproducibility.
func (g *Graph) allEdgeInstances() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, id := range g.Nodes() {
			for _, e := range flattenEdgeSets(g.nodes[id].out) {
				if !yield(e) {
					return
				}
			}
		}
	}
}

func edgeSlice(edges []Edge) iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for _, e := range edges {
			if !yield(e) {
				return
			}
		}
	}
}

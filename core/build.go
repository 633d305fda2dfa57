// Package core: heterogeneous construction.
//
// Add folds arbitrary init items into a graph: other graphs, edge values,
// bare node IDs, tagged Node / EdgeRef forms, 2/3-element edge descriptions,
// and adjacency mappings. The typed Node and EdgeRef forms are the explicit
// tags that force an interpretation onto an otherwise ambiguous item.

package core

import (
	"fmt"
	"sort"
)

// NewGraph builds an undirected graph without parallel edges from inits.
func NewGraph(inits ...any) (*Graph, error) {
	return New().Add(inits...)
}

// NewDigraph builds a directed graph without parallel edges from inits.
func NewDigraph(inits ...any) (*Graph, error) {
	return New(WithDirected(true)).Add(inits...)
}

// NewMultigraph builds an undirected graph permitting parallel edges.
func NewMultigraph(inits ...any) (*Graph, error) {
	return New(WithParallelEdges()).Add(inits...)
}

// NewMultidigraph builds a directed graph permitting parallel edges.
func NewMultidigraph(inits ...any) (*Graph, error) {
	return New(WithDirected(true), WithParallelEdges()).Add(inits...)
}

// Add merges the init items into the graph, left to right, and returns the
// resulting value. Accepted item shapes:
//
//   - *Graph: its nodes (with attributes) and each of its logical edges,
//     every edge keeping its own kind regardless of the target's default;
//   - Edge: merged as its own kind; when an edge value and its mirror appear
//     as separate items, only the first occurrence is applied;
//   - string: a bare node ID;
//   - Node: node with attributes;
//   - EdgeRef: edge description in the graph's default orientation;
//   - []string of length 2, or []any of length 2 or 3 (third element numeric
//     ⇒ weight, map ⇒ attributes): edge description;
//   - map[string][]string: adjacency (node → neighbors);
//   - map[string]map[string]float64: adjacency with weights.
//
// On any malformed item Add fails outright and the receiver is returned
// unchanged; no partial application is visible.
func (g *Graph) Add(inits ...any) (*Graph, error) {
	out := g
	seenEdgeIDs := make(map[string]struct{})
	for _, item := range inits {
		next, err := out.addInit(item, seenEdgeIDs)
		if err != nil {
			return g, err
		}
		out = next
	}
	return out, nil
}

func (g *Graph) addInit(item any, seenEdgeIDs map[string]struct{}) (*Graph, error) {
	switch v := item.(type) {
	case *Graph:
		return g.mergeGraph(v)

	case Edge:
		if v.id == "" {
			return g, fmt.Errorf("%w: zero edge value", ErrInvalidEdgeDescriptor)
		}
		if _, dup := seenEdgeIDs[v.id]; dup {
			return g, nil
		}
		seenEdgeIDs[v.id] = struct{}{}
		p := v.primary()
		if p.IsUndirected() {
			return g.AddUndirectedEdge(p.src, p.dest, nil), nil
		}
		return g.AddDirectedEdge(p.src, p.dest, nil), nil

	case string:
		return g.AddNode(v), nil

	case Node:
		out := g.AddNode(v.ID)
		if len(v.Attrs) == 0 {
			return out, nil
		}
		return out.MergeAttrs(v.ID, v.Attrs)

	case map[string][]string:
		out := g
		for _, node := range sortedKeys(v) {
			out = out.AddNode(node)
			for _, nb := range v[node] {
				out = out.AddEdge(node, nb, nil)
			}
		}
		return out, nil

	case map[string]map[string]float64:
		out := g
		for _, node := range sortedKeys(v) {
			out = out.AddNode(node)
			for _, nb := range sortedKeys(v[node]) {
				out = out.AddEdge(node, nb, Attrs{WeightKey: v[node][nb]})
			}
		}
		return out, nil

	case nil:
		return g, fmt.Errorf("%w: nil init item", ErrInvalidEntityDescriptor)

	default:
		// Everything else must be an edge description.
		ref, err := asEdgeRef(item)
		if err != nil {
			return g, err
		}
		return g.AddEdge(ref.Src, ref.Dest, ref.Attrs), nil
	}
}

// mergeGraph folds another graph's nodes and logical edges into g. Each
// edge is added as its own kind with its source graph's attributes.
func (g *Graph) mergeGraph(src *Graph) (*Graph, error) {
	out := g
	for _, id := range src.Nodes() {
		out = out.AddNode(id)
		if a, ok := src.attrs[id]; ok && len(a) > 0 {
			merged, err := out.MergeAttrs(id, a)
			if err != nil {
				return g, err
			}
			out = merged
		}
	}
	for _, e := range src.UniqueEdges() {
		attrs := src.attrs[e.id].clone()
		if e.IsUndirected() {
			out = out.AddUndirectedEdge(e.src, e.dest, attrs)
		} else {
			out = out.AddDirectedEdge(e.src, e.dest, attrs)
		}
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

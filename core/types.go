// Package core: Graph value, configuration options, and sentinel errors.
//
// This file declares Attrs, Node, EdgeRef, Graph, the nodeState adjacency
// record, GraphOption flags, and the New constructor. Mutation logic lives
// in methods_nodes.go / methods_edges.go; construction presets in build.go.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdgeDescriptor indicates an edge description that is not a
	// 2- or 3-element sequence, or whose third element is neither numeric
	// nor an attribute map.
	ErrInvalidEdgeDescriptor = errors.New("core: invalid edge descriptor")

	// ErrInvalidEntityDescriptor indicates an attribute target that is
	// neither a known node, an edge value, nor a resolvable edge description.
	ErrInvalidEntityDescriptor = errors.New("core: invalid entity descriptor")

	// ErrBadWeight indicates a "weight" attribute bound to a non-numeric value.
	ErrBadWeight = errors.New("core: weight attribute is not numeric")
)

// Attrs is an attribute map attached to a node or a logical edge.
// Values are arbitrary; equality in queries and structural comparison uses
// deep equality.
type Attrs map[string]any

// clone returns an independent copy of a. A nil receiver yields nil.
func (a Attrs) clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Node tags a node ID with attributes in heterogeneous construction input.
// It is the explicit form that forces a (node, attributeMap) reading of an
// otherwise ambiguous init item.
type Node struct {
	ID    string
	Attrs Attrs
}

// EdgeRef describes a logical edge by its endpoints, optionally carrying
// attributes. It is the explicit, tagged form of the 2/3-element edge
// descriptions accepted by Add, RemoveEdge, and the attribute API.
type EdgeRef struct {
	Src   string
	Dest  string
	Attrs Attrs
}

// nodeState is one node's adjacency record.
//
// out maps neighbor ID to the edge instances leaving toward that neighbor;
// in maps neighbor ID to the instances arriving from it. outDegree and
// inDegree are maintained incrementally and always equal the total instance
// count of the corresponding sets. An undirected edge contributes exactly
// one out and one in instance to each endpoint.
type nodeState struct {
	out map[string][]Edge
	in  map[string][]Edge

	outDegree int
	inDegree  int
}

func newNodeState() *nodeState {
	return &nodeState{
		out: make(map[string][]Edge),
		in:  make(map[string][]Edge),
	}
}

// clone copies the record's map headers so a derived graph can swap in new
// edge slices without touching state shared with ancestor values. The slices
// themselves stay shared until a mutation replaces them wholesale.
func (ns *nodeState) clone() *nodeState {
	out := &nodeState{
		out:       make(map[string][]Edge, len(ns.out)),
		in:        make(map[string][]Edge, len(ns.in)),
		outDegree: ns.outDegree,
		inDegree:  ns.inDegree,
	}
	for id, set := range ns.out {
		out.out[id] = set
	}
	for id, set := range ns.in {
		out.in[id] = set
	}
	return out
}

// GraphOption configures a Graph at construction time. Flags are immutable
// afterwards.
type GraphOption func(*Graph)

// WithDirected sets the default orientation for edges added without an
// explicit kind (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.undirected = !defaultDirected }
}

// WithParallelEdges permits multiple distinct logical edges between the same
// pair of nodes.
func WithParallelEdges() GraphOption {
	return func(g *Graph) { g.allowParallel = true }
}

// Graph is an immutable attributed multigraph value.
//
// The zero value is not usable; construct with New or one of the presets.
// Every mutating method returns a new Graph and leaves the receiver intact.
type Graph struct {
	// Configuration flags, fixed at construction.
	allowParallel bool // may two logical edges connect the same pair
	undirected    bool // default orientation for unmarked edge additions

	// nextSeq disambiguates edge IDs. It increases monotonically along a
	// derivation lineage, so attribute-identical parallel edges keep
	// distinct identities.
	nextSeq uint64

	// Storage. nodes and attrs are treated as immutable: derivations copy
	// the map headers and replace, never mutate, the entries they touch.
	nodes map[string]*nodeState // node ID → adjacency record
	attrs map[string]Attrs      // entity identity → attribute map
}

// New creates an empty Graph with the given options.
// By default a Graph is undirected and rejects parallel edges.
// Complexity: O(len(opts)).
func New(opts ...GraphOption) *Graph {
	g := &Graph{
		undirected: true,
		nodes:      make(map[string]*nodeState),
		attrs:      make(map[string]Attrs),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// derive returns a private shallow copy of g: same flags and counter, fresh
// map headers over shared node records and attribute maps. Mutations clone
// the entries they touch before writing (see mutableNode).
func (g *Graph) derive() *Graph {
	out := &Graph{
		allowParallel: g.allowParallel,
		undirected:    g.undirected,
		nextSeq:       g.nextSeq,
		nodes:         make(map[string]*nodeState, len(g.nodes)),
		attrs:         make(map[string]Attrs, len(g.attrs)),
	}
	for id, ns := range g.nodes {
		out.nodes[id] = ns
	}
	for id, a := range g.attrs {
		out.attrs[id] = a
	}
	return out
}

// mutableNode swaps the node's shared record for a private clone and returns
// it. Only valid on a derived graph that has not been published yet.
func (g *Graph) mutableNode(id string) *nodeState {
	ns := g.nodes[id].clone()
	g.nodes[id] = ns
	return ns
}

// ensureNode installs an empty adjacency record when id is missing.
// Unlike AddNode it mutates g directly, so it is only used on private
// derivations.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		g.nodes[id] = newNodeState()
	}
}

// Package core: the public capability surface.
//
// GraphReader is the narrow read-only interface algorithm libraries consume
// (traversal, shortest path, flow); GraphWriter is the derivation surface.
// *Graph satisfies both. Keeping algorithms on GraphReader means they treat
// edges as opaque values and stay correct under multigraphs and mirrors.

package core

import "iter"

// GraphReader enumerates and queries a graph without deriving new values.
type GraphReader interface {
	// Flags.
	Directed() bool
	Multigraph() bool

	// Nodes.
	HasNode(id string) bool
	Nodes() []string
	NodeCount() int
	NeighborIDs(id string) []string
	OutDegree(id string) int
	InDegree(id string) int

	// Edges.
	HasEdgeBetween(src, dest string) bool
	EdgesBetween(src, dest string) []Edge
	OutEdges(id string) []Edge
	InEdges(id string) []Edge
	Edges() []Edge
	UniqueEdges() []Edge
	EdgeCount() int
	UniqueEdgeCount() int

	// Queries.
	FindEdges(query Attrs) iter.Seq[Edge]
	FindEdge(query Attrs) (Edge, bool)

	// Attributes.
	Attrs(entity any) (Attrs, error)
	Attr(entity any, key string) (any, bool, error)
	Weight(entity any) (float64, error)
}

// GraphWriter derives new graph values from existing ones.
type GraphWriter interface {
	AddNode(id string) *Graph
	RemoveNode(id string) *Graph
	AddEdge(src, dest string, attrs Attrs) *Graph
	AddDirectedEdge(src, dest string, attrs Attrs) *Graph
	AddUndirectedEdge(src, dest string, attrs Attrs) *Graph
	RemoveEdge(entity any) (*Graph, error)
	SetAttrs(entity any, attrs Attrs) (*Graph, error)
	MergeAttrs(entity any, attrs Attrs) (*Graph, error)
	RemoveAttrs(entity any, keys ...string) (*Graph, error)
	Transpose() *Graph
	Add(inits ...any) (*Graph, error)
}

var (
	_ GraphReader = (*Graph)(nil)
	_ GraphWriter = (*Graph)(nil)
)

// Directed reports the default orientation applied by AddEdge
// (true = directed). Forced additions ignore it.
func (g *Graph) Directed() bool { return !g.undirected }

// Multigraph reports whether parallel edges between the same pair are
// permitted. Immutable after construction.
func (g *Graph) Multigraph() bool { return g.allowParallel }

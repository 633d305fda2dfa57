// Package core provides an immutable, attributed, mixed-direction multigraph
// value with a minimal, composable API surface.
//
// The Graph G = (V,E) supports a rich mix of behaviors in one value:
//
//   - Directed vs. undirected edges, including both kinds side by side
//     (AddDirectedEdge / AddUndirectedEdge force a kind; AddEdge follows the
//     graph's default orientation)
//   - Parallel edges / multigraphs (WithParallelEdges)
//   - Self-loops
//   - Arbitrary key/value attributes on nodes and logical edges
//     (SetAttrs / MergeAttrs / RemoveAttrs / Attrs / Attr)
//   - Attribute-filtered edge queries (FindEdges / FindEdge) returning lazy
//     iter.Seq sequences
//   - Graph transposition (Transpose) and heterogeneous construction
//     (Add, NewGraph, NewDigraph, NewMultigraph, NewMultidigraph)
//   - Structural serialization (Snapshot / FromSnapshot, YAML and JSON)
//
// # Value semantics
//
// A Graph is a pure value: every mutating operation returns a new Graph
// derived from its receiver by copy-on-write of the touched node and
// attribute entries, and never mutates shared state. Any number of readers
// may use a Graph concurrently, and writers deriving from the same base
// value never interfere. There is no locking because there is nothing to
// lock.
//
// # Undirected edges and mirrors
//
// One logical undirected edge is represented by two physical instances with
// swapped endpoints sharing a single edge ID: the primary (IsMirror()==false,
// endpoints in canonical order) and its mirror. Attributes are keyed by the
// shared ID, so both halves always agree. OtherDirection pairs the two
// instances; renderers and algorithms that want one entry per logical edge
// skip instances where IsMirror() reports true (or use UniqueEdges).
//
// # Errors
//
//	ErrInvalidEdgeDescriptor   - malformed 2/3-element edge description
//	ErrInvalidEntityDescriptor - attribute target is neither a known node,
//	                             an edge value, nor a resolvable description
//	ErrBadWeight               - "weight" attribute bound to a non-numeric value
//
// Removing a missing node or edge, re-adding an existing node, and querying
// with no matches are explicit no-ops, never errors.
package core

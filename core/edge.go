// Package core: the edge model.
//
// Two variants exist and the set is closed: directed edges and undirected
// edges. One logical undirected edge is two physical instances (primary and
// mirror) with swapped endpoints sharing one ID. Edge IDs are synthesized
// from the endpoints plus a per-creation sequence number, so Transpose can
// recompute a directed ID from swapped endpoints and both halves of an
// undirected edge agree on theirs.

package core

import "fmt"

// EdgeKind classifies an edge instance.
type EdgeKind uint8

const (
	// KindDirected is a one-way connection from Src to Dest.
	KindDirected EdgeKind = iota

	// KindUndirected is one orientation view of a bidirectional connection.
	KindUndirected
)

// Edge is an opaque edge value. Algorithms must treat it as such, using
// endpoints and attribute lookup only, to stay correct under multigraphs.
// The zero Edge is not a valid edge; all predicates report false on it.
type Edge struct {
	id   string
	src  string
	dest string
	seq  uint64

	kind   EdgeKind
	mirror bool
}

// ID returns the identity of the logical edge. Mirrored instances of one
// undirected edge share the same ID, and attributes are keyed by it.
func (e Edge) ID() string { return e.id }

// Src returns the source node ID of this instance's orientation.
func (e Edge) Src() string { return e.src }

// Dest returns the destination node ID of this instance's orientation.
func (e Edge) Dest() string { return e.dest }

// IsDirected reports whether e is a directed edge. False for the zero value.
func (e Edge) IsDirected() bool { return e.id != "" && e.kind == KindDirected }

// IsUndirected reports whether e belongs to an undirected logical edge.
// False for the zero value.
func (e Edge) IsUndirected() bool { return e.id != "" && e.kind == KindUndirected }

// IsMirror reports whether e is the automatically generated reverse
// orientation of an undirected edge. Enumerations that want one entry per
// logical edge skip instances where this is true.
func (e Edge) IsMirror() bool { return e.mirror }

// OtherDirection returns the paired instance of an undirected edge and true.
// For directed edges (and the zero value) it returns the zero Edge and
// false. A self-loop is its own pair.
func (e Edge) OtherDirection() (Edge, bool) {
	if !e.IsUndirected() {
		return Edge{}, false
	}
	if e.src == e.dest {
		return e, true
	}
	return Edge{
		id:     e.id,
		src:    e.dest,
		dest:   e.src,
		seq:    e.seq,
		kind:   KindUndirected,
		mirror: !e.mirror,
	}, true
}

// primary normalizes e to the non-mirror instance of its logical edge.
func (e Edge) primary() Edge {
	if !e.mirror {
		return e
	}
	p, _ := e.OtherDirection()
	return p
}

// newDirectedEdge synthesizes a directed edge with an ID derived from the
// ordered endpoints and the creation sequence number.
func newDirectedEdge(src, dest string, seq uint64) Edge {
	return Edge{
		id:   directedEdgeID(src, dest, seq),
		src:  src,
		dest: dest,
		seq:  seq,
		kind: KindDirected,
	}
}

// newUndirectedEdge synthesizes the primary instance of an undirected edge.
// The canonical orientation orders the endpoints lexicographically, so both
// halves (and any caller argument order) agree on the same ID.
func newUndirectedEdge(a, b string, seq uint64) Edge {
	lo, hi := orderPair(a, b)
	return Edge{
		id:   undirectedEdgeID(lo, hi, seq),
		src:  lo,
		dest: hi,
		seq:  seq,
		kind: KindUndirected,
	}
}

func directedEdgeID(src, dest string, seq uint64) string {
	return fmt.Sprintf("d|%s|%s|%d", src, dest, seq)
}

func undirectedEdgeID(a, b string, seq uint64) string {
	lo, hi := orderPair(a, b)
	return fmt.Sprintf("u|%s|%s|%d", lo, hi, seq)
}

func orderPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

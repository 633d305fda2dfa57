// Package core: structural serialization.
//
// Snapshot is the portable form of a graph: flags, node list with attribute
// maps, and one record per logical edge split by kind (undirected edges
// export their primary orientation only). FromSnapshot replays construction
// in a fixed order (nodes with attributes, forced directed edges, forced
// undirected edges) so import(export(g)) is structurally equal to g even
// though physical edge IDs are regenerated.
//
// The record structs carry both YAML and JSON tags, so a Snapshot doubles as
// a document for either codec; EncodeYAML/DecodeSnapshotYAML wrap the
// streaming yaml.v3 Encoder/Decoder.

package core

import (
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// NodeRecord is one node in the portable form.
type NodeRecord struct {
	ID    string `json:"id" yaml:"id"`
	Attrs Attrs  `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// EdgeRecord is one logical edge in the portable form.
type EdgeRecord struct {
	Src   string `json:"src" yaml:"src"`
	Dest  string `json:"dest" yaml:"dest"`
	Attrs Attrs  `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Snapshot is the portable structural form of a Graph.
type Snapshot struct {
	AllowParallel   bool         `json:"allowParallel" yaml:"allowParallel"`
	Undirected      bool         `json:"undirected" yaml:"undirected"`
	Nodes           []NodeRecord `json:"nodes" yaml:"nodes"`
	DirectedEdges   []EdgeRecord `json:"directedEdges,omitempty" yaml:"directedEdges,omitempty"`
	UndirectedEdges []EdgeRecord `json:"undirectedEdges,omitempty" yaml:"undirectedEdges,omitempty"`
}

// Snapshot exports the graph's structure. Output is deterministic: nodes
// sorted by ID, edge records sorted by endpoints. Attribute maps are copies;
// the snapshot does not alias the graph.
// Complexity: O(V log V + E log E).
func (g *Graph) Snapshot() *Snapshot {
	s := &Snapshot{
		AllowParallel: g.allowParallel,
		Undirected:    g.undirected,
		Nodes:         make([]NodeRecord, 0, len(g.nodes)),
	}
	for _, id := range g.Nodes() {
		s.Nodes = append(s.Nodes, NodeRecord{ID: id, Attrs: g.attrs[id].clone()})
	}
	for _, e := range g.UniqueEdges() {
		rec := EdgeRecord{Src: e.src, Dest: e.dest, Attrs: g.attrs[e.id].clone()}
		if e.IsUndirected() {
			s.UndirectedEdges = append(s.UndirectedEdges, rec)
		} else {
			s.DirectedEdges = append(s.DirectedEdges, rec)
		}
	}
	sortEdgeRecords(s.DirectedEdges)
	sortEdgeRecords(s.UndirectedEdges)
	return s
}

// FromSnapshot reconstructs a graph: flags first, then node-with-attributes
// insertion, then forced directed edges, then forced undirected edges, in
// that order. A nil snapshot yields an empty default graph.
func FromSnapshot(s *Snapshot) *Graph {
	if s == nil {
		return New()
	}
	opts := []GraphOption{WithDirected(!s.Undirected)}
	if s.AllowParallel {
		opts = append(opts, WithParallelEdges())
	}
	g := New(opts...)
	for _, n := range s.Nodes {
		g = g.AddNode(n.ID)
		if len(n.Attrs) > 0 {
			g, _ = g.MergeAttrs(n.ID, n.Attrs)
		}
	}
	for _, e := range s.DirectedEdges {
		g = g.AddDirectedEdge(e.Src, e.Dest, e.Attrs)
	}
	for _, e := range s.UndirectedEdges {
		g = g.AddUndirectedEdge(e.Src, e.Dest, e.Attrs)
	}
	return g
}

// EncodeYAML writes the snapshot as a YAML document.
func (s *Snapshot) EncodeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("core: encode snapshot: %w", err)
	}
	return enc.Close()
}

// DecodeSnapshotYAML reads one YAML snapshot document.
func DecodeSnapshotYAML(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("core: decode snapshot: %w", err)
	}
	return &s, nil
}

func sortEdgeRecords(recs []EdgeRecord) {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Src != recs[j].Src {
			return recs[i].Src < recs[j].Src
		}
		return recs[i].Dest < recs[j].Dest
	})
}

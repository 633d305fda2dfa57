// Package core_test verifies structural serialization: the portable form,
// the replay order on import, the round-trip contract, and the YAML codec.

package core_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/core"
)

// mixedFixture: a non-parallel, undirected-default graph holding both kinds
// of edges plus node and edge attributes.
func mixedFixture(t *testing.T) *core.Graph {
	t.Helper()
	g := core.New().
		AddEdge(NodeA, NodeB, core.Attrs{KeyColor: ColorRed}).
		AddDirectedEdge(NodeB, NodeC, core.Attrs{KeyLabel: "bc"}).
		AddNode(NodeD)
	g, err := g.SetAttrs(NodeD, core.Attrs{KeyColor: ColorBlue})
	require.NoError(t, err)
	return g
}

func TestSnapshot_Shape(t *testing.T) {
	g := mixedFixture(t)
	s := g.Snapshot()

	assert.False(t, s.AllowParallel)
	assert.True(t, s.Undirected)
	require.Len(t, s.Nodes, 4)
	assert.Equal(t, NodeA, s.Nodes[0].ID, "nodes are sorted")

	require.Len(t, s.DirectedEdges, 1)
	assert.Equal(t, NodeB, s.DirectedEdges[0].Src)
	assert.Equal(t, NodeC, s.DirectedEdges[0].Dest)

	// One record per logical undirected edge: the primary orientation only.
	require.Len(t, s.UndirectedEdges, 1)
	assert.Equal(t, NodeA, s.UndirectedEdges[0].Src)
	assert.Equal(t, NodeB, s.UndirectedEdges[0].Dest)
	assert.Equal(t, core.Attrs{KeyColor: ColorRed}, s.UndirectedEdges[0].Attrs)
}

func TestSnapshot_DoesNotAliasGraph(t *testing.T) {
	g := mixedFixture(t)
	s := g.Snapshot()
	s.Nodes[0].Attrs = core.Attrs{KeyColor: "mutated"}
	s.UndirectedEdges[0].Attrs[KeyColor] = "mutated"

	attrs, err := g.Attrs([]string{NodeA, NodeB})
	require.NoError(t, err)
	assert.Equal(t, core.Attrs{KeyColor: ColorRed}, attrs)
}

func TestRoundTrip_StructuralEquality(t *testing.T) {
	cases := map[string]*core.Graph{
		"empty":    core.New(),
		"mixed":    mixedFixture(t),
		"directed": core.New(core.WithDirected(true)).AddEdge(NodeA, NodeB, nil).AddEdge(NodeB, NodeA, core.Attrs{"w": 1}),
		"loops":    core.New().AddEdge(NodeA, NodeA, nil).AddDirectedEdge(NodeB, NodeB, nil),
		"parallel": core.New(core.WithParallelEdges()).
			AddEdge(NodeA, NodeB, core.Attrs{"x": 1}).
			AddEdge(NodeA, NodeB, core.Attrs{"x": 1}).
			AddDirectedEdge(NodeA, NodeB, nil),
	}
	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			got := core.FromSnapshot(g.Snapshot())
			assert.True(t, got.Equal(g), "import(export(g)) must be structurally equal")
			checkDegreeInvariants(t, got)
			checkMirrorInvariants(t, got)
		})
	}
}

func TestFromSnapshot_Nil(t *testing.T) {
	g := core.FromSnapshot(nil)
	assert.Equal(t, 0, g.NodeCount())
	assert.False(t, g.Directed())
}

func TestSnapshot_YAMLRoundTrip(t *testing.T) {
	g := core.New(core.WithParallelEdges()).
		AddEdge(NodeA, NodeB, core.Attrs{KeyColor: ColorRed, "count": 2}).
		AddDirectedEdge(NodeB, NodeC, core.Attrs{KeyLabel: "bc"}).
		AddNode(NodeD)

	var buf bytes.Buffer
	require.NoError(t, g.Snapshot().EncodeYAML(&buf))

	s, err := core.DecodeSnapshotYAML(&buf)
	require.NoError(t, err)
	got := core.FromSnapshot(s)

	assert.True(t, got.Equal(g))
}

func TestDecodeSnapshotYAML_Document(t *testing.T) {
	doc := `
allowParallel: false
undirected: true
nodes:
  - id: a
    attrs:
      color: red
  - id: b
directedEdges:
  - src: a
    dest: b
    attrs:
      label: ab
`
	s, err := core.DecodeSnapshotYAML(bytes.NewBufferString(doc))
	require.NoError(t, err)

	g := core.FromSnapshot(s)
	assert.True(t, g.HasEdgeBetween(NodeA, NodeB))
	assert.False(t, g.HasEdgeBetween(NodeB, NodeA), "forced directed replay")

	v, ok, err := g.Attr(NodeA, KeyColor)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ColorRed, v)
}

func TestDecodeSnapshotYAML_Malformed(t *testing.T) {
	_, err := core.DecodeSnapshotYAML(bytes.NewBufferString("nodes: 42"))
	assert.Error(t, err)
}

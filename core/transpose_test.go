// Package core_test verifies transposition: edge reversal, attribute
// re-keying, undirected neutrality, and the involution property.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/core"
)

func TestTranspose_ReversesDirectedEdges(t *testing.T) {
	g := core.New(core.WithDirected(true)).
		AddEdge(NodeA, NodeB, core.Attrs{KeyColor: ColorRed}).
		AddEdge(NodeB, NodeC, nil)

	tr := g.Transpose()

	assert.True(t, tr.HasEdgeBetween(NodeB, NodeA))
	assert.True(t, tr.HasEdgeBetween(NodeC, NodeB))
	assert.False(t, tr.HasEdgeBetween(NodeA, NodeB))
	assert.Equal(t, 0, tr.OutDegree(NodeA))
	assert.Equal(t, 1, tr.InDegree(NodeA))
	checkDegreeInvariants(t, tr)

	// Attribute entries follow the reversed edge to its recomputed identity.
	attrs, err := tr.Attrs(core.EdgeRef{Src: NodeB, Dest: NodeA})
	require.NoError(t, err)
	assert.Equal(t, core.Attrs{KeyColor: ColorRed}, attrs)
}

func TestTranspose_UndirectedAndNodeAttrsUntouched(t *testing.T) {
	g := core.New().AddUndirectedEdge(NodeA, NodeB, core.Attrs{KeyColor: ColorBlue})
	g = g.AddDirectedEdge(NodeB, NodeC, nil)
	g, err := g.SetAttrs(NodeA, core.Attrs{KeyLabel: "anchor"})
	require.NoError(t, err)

	tr := g.Transpose()

	// The undirected edge keeps its identity and attributes.
	before, ok := g.FindEdge(core.Attrs{KeyColor: ColorBlue})
	require.True(t, ok)
	after, ok := tr.FindEdge(core.Attrs{KeyColor: ColorBlue})
	require.True(t, ok)
	assert.Equal(t, before.ID(), after.ID())

	v, ok, err := tr.Attr(NodeA, KeyLabel)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "anchor", v)

	assert.True(t, tr.HasEdgeBetween(NodeC, NodeB), "directed part still reversed")
	checkMirrorInvariants(t, tr)
}

func TestTranspose_Involution(t *testing.T) {
	g := core.New(core.WithDirected(true), core.WithParallelEdges()).
		AddEdge(NodeA, NodeB, core.Attrs{"x": 1}).
		AddEdge(NodeA, NodeB, nil).
		AddEdge(NodeB, NodeC, core.Attrs{"y": 2}).
		AddEdge(NodeC, NodeC, nil)

	assert.True(t, g.Transpose().Transpose().Equal(g))
}

func TestTranspose_SelfLoopStable(t *testing.T) {
	g := core.New(core.WithDirected(true)).AddEdge(NodeA, NodeA, core.Attrs{"x": 1})
	tr := g.Transpose()
	assert.True(t, tr.Equal(g), "a directed self-loop is its own reverse")
	checkDegreeInvariants(t, tr)
}

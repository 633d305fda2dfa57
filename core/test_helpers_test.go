// Package core_test contains shared fixtures for weft/core.
//
// Purpose:
//   - Small deterministic graphs reused across contract tests.
//   - Invariant checkers (degree bookkeeping, mirror/attribute agreement)
//     applied after mutation sequences.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "a"
	NodeB = "b"
	NodeC = "c"
	NodeD = "d"
)

// Common attribute keys and values.
const (
	KeyColor = "color"
	KeyLabel = "label"

	ColorRed  = "red"
	ColorBlue = "blue"
)

// mustAdd builds a graph via Add and fails the test on malformed inits.
func mustAdd(t *testing.T, g *core.Graph, inits ...any) *core.Graph {
	t.Helper()
	out, err := g.Add(inits...)
	require.NoError(t, err)
	return out
}

// triangle returns an undirected, non-parallel graph a-b, a-c, b-c.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph([]string{NodeA, NodeB}, []string{NodeA, NodeC}, []string{NodeB, NodeC})
	require.NoError(t, err)
	return g
}

// checkDegreeInvariants asserts that for every node the incrementally
// maintained degree counters match the actual edge-set sizes.
func checkDegreeInvariants(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, id := range g.Nodes() {
		require.Equal(t, len(g.OutEdges(id)), g.OutDegree(id), "out-degree of %q out of sync", id)
		require.Equal(t, len(g.InEdges(id)), g.InDegree(id), "in-degree of %q out of sync", id)
	}
}

// checkMirrorInvariants asserts that every undirected instance pairs with a
// mirror sharing its ID and attributes, and that exactly one of the pair is
// the primary.
func checkMirrorInvariants(t *testing.T, g *core.Graph) {
	t.Helper()
	for _, e := range g.Edges() {
		if !e.IsUndirected() {
			_, ok := e.OtherDirection()
			require.False(t, ok, "directed edge %s must not pair", e.ID())
			continue
		}
		m, ok := e.OtherDirection()
		require.True(t, ok)
		require.Equal(t, e.ID(), m.ID(), "mirror pair must share an ID")
		if e.Src() != e.Dest() {
			require.NotEqual(t, e.IsMirror(), m.IsMirror(), "exactly one of the pair is primary")
		}
		back, ok := m.OtherDirection()
		require.True(t, ok)
		require.Equal(t, e, back, "OtherDirection must be an involution")

		ea, err := g.Attrs(e)
		require.NoError(t, err)
		ma, err := g.Attrs(m)
		require.NoError(t, err)
		require.Equal(t, ea, ma, "mirror halves must share attributes")
	}
}

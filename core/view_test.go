// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hubtrace/core"
)

func TestInducedEdgeSubgraph_KeepsOnlySelectedEdges(t *testing.T) {
	g := NewSnapshotABC()
	_, err := g.AddEdge(VertexA, VertexB, Weight7) // third-party edge between two neighbors
	require.NoError(t, err)
	_, err = g.AddEdge(VertexC, VertexD, Weight1) // unrelated component
	require.NoError(t, err)

	sub := core.InducedEdgeSubgraph(g, func(e *core.Edge) bool {
		return e.From == VertexHub || e.To == VertexHub
	})

	assert.Equal(t, []string{VertexA, VertexB, VertexHub}, sub.Vertices())
	require.Equal(t, 3, sub.EdgeCount())
	assert.False(t, sub.HasEdge(VertexA, VertexB), "edges between neighbors are not pulled in")
	assert.Equal(t, "Exchange", sub.Label(VertexHub), "labels carried over")
	assert.Equal(t, g.Date(), sub.Date())

	// Source untouched, subgraph independent.
	assert.Equal(t, 5, g.EdgeCount())
	_, err = sub.AddEdge(VertexA, VertexHub, Weight1)
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, 4, sub.EdgeCount())
}

func TestInducedEdgeSubgraph_PreservesBadWeights(t *testing.T) {
	g := core.NewSnapshot(Day)
	_, err := g.AddEdge(VertexA, VertexHub, 0, core.WithRawWeight("oops"))
	require.NoError(t, err)

	sub := core.InducedEdgeSubgraph(g, func(*core.Edge) bool { return true })
	edges := sub.Edges()
	require.Len(t, edges, 1)
	_, err = edges[0].Amount()
	require.ErrorIs(t, err, core.ErrWeightUnparseable)
	assert.Equal(t, "oops", edges[0].Raw)
}

func TestInducedEdgeSubgraph_Empty(t *testing.T) {
	g := NewSnapshotABC()
	sub := core.InducedEdgeSubgraph(g, func(*core.Edge) bool { return false })
	assert.Equal(t, 0, sub.VertexCount())
	assert.Equal(t, 0, sub.EdgeCount())
}

func TestUndirectedSimpleView(t *testing.T) {
	g := NewSnapshotABC()
	_, err := g.AddEdge(VertexB, VertexHub, Weight1) // reverse of an existing pair
	require.NoError(t, err)
	_, err = g.AddEdge(VertexA, VertexA, Weight1) // loop
	require.NoError(t, err)
	require.NoError(t, g.AddVertex(VertexD)) // isolated

	u := core.UndirectedSimpleView(g)
	assert.False(t, u.Directed())
	assert.False(t, u.Weighted())
	assert.Equal(t, 4, u.VertexCount(), "isolated vertices are kept")
	assert.Equal(t, 2, u.EdgeCount(), "A-hub and hub-B only")
	assert.True(t, u.HasEdge(VertexB, VertexHub))
	assert.True(t, u.HasEdge(VertexHub, VertexB))
	assert.False(t, u.HasEdge(VertexA, VertexA))

	ids, err := u.NeighborIDs(VertexHub)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexA, VertexB}, ids)
	assert.Equal(t, 5, g.EdgeCount(), "source untouched")
}

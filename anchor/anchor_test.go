// SPDX-License-Identifier: MIT

package anchor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hubtrace/anchor"
	"github.com/katalvlaran/hubtrace/core"
)

var day = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// AnchorSuite exercises rule matching and extraction.
type AnchorSuite struct {
	suite.Suite
}

// newNetwork builds:
//
//	A ──▶ Garantex ──▶ B      B ──▶ C (third party)
//	garantex_hot ──▶ Garantex  (alias to alias)
//	D ──▶ E (unrelated)
func newNetwork() *core.Graph {
	g := core.NewSnapshot(day)
	_ = g.AddLabeledVertex("n1", "Garantex")
	_ = g.AddLabeledVertex("n2", "garantex_hot")
	_, _ = g.AddEdge("A", "n1", 10)
	_, _ = g.AddEdge("n1", "B", 5)
	_, _ = g.AddEdge("B", "C", 3)
	_, _ = g.AddEdge("n2", "n1", 1)
	_, _ = g.AddEdge("D", "E", 9)

	return g
}

func (s *AnchorSuite) TestRuleModes() {
	v := &core.Vertex{ID: "0xABC", Label: "Garantex Hot Wallet"}

	require.True(s.T(), anchor.Substring("garantex").Match(v))
	require.True(s.T(), anchor.Substring("abc").Match(v), "ID is matched too")
	require.False(s.T(), anchor.Substring("binance").Match(v))

	require.False(s.T(), anchor.Exact("garantex").Match(v))
	require.True(s.T(), anchor.Exact("GARANTEX HOT WALLET").Match(v))
	require.True(s.T(), anchor.Exact("0xabc").Match(v))

	require.True(s.T(), anchor.Set("0xABC").Match(v))
	require.False(s.T(), anchor.Set("0xabc").Match(v), "set membership is case-sensitive")

	require.False(s.T(), anchor.Substring("x").Match(nil))
}

func (s *AnchorSuite) TestRuleValidation() {
	require.ErrorIs(s.T(), anchor.Substring("", "  ").Validate(), anchor.ErrEmptyRule)
	require.ErrorIs(s.T(), anchor.Rule{}.Validate(), anchor.ErrEmptyRule)

	_, err := anchor.New(anchor.ModeExact)
	require.ErrorIs(s.T(), err, anchor.ErrEmptyRule)

	r, err := anchor.New(anchor.ModeSet, "b", "a", "a")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "set:b,a", r.String())

	m, err := anchor.ParseMode(" Exact ")
	require.NoError(s.T(), err)
	require.Equal(s.T(), anchor.ModeExact, m)
	_, err = anchor.ParseMode("regex")
	require.ErrorIs(s.T(), err, anchor.ErrUnknownMode)
}

func (s *AnchorSuite) TestAnchorsAliases() {
	g := newNetwork()
	require.Equal(s.T(), []string{"n1", "n2"}, anchor.Substring("garantex").Anchors(g))

	require.Equal(s.T(), []string{"n1", "n2"}, anchor.Set("n2", "missing", "n1").Anchors(g))
	require.Empty(s.T(), anchor.Set("Garantex").Anchors(g), "set rules match IDs, not labels")

	is := anchor.Substring("garantex").Matcher(g)
	require.True(s.T(), is("n2"))
	require.False(s.T(), is("A"))
}

func (s *AnchorSuite) TestExtract() {
	g := newNetwork()
	sub, err := anchor.Extract(g, anchor.Substring("GARANTEX"))
	require.NoError(s.T(), err)
	require.True(s.T(), sub.Found)
	require.Equal(s.T(), []string{"n1", "n2"}, sub.Anchors)

	// Node set equals exactly the endpoints of anchor-incident edges.
	require.Equal(s.T(), []string{"A", "B", "n1", "n2"}, sub.Graph.Vertices())

	var pairs [][2]string
	for _, e := range sub.Graph.Edges() {
		pairs = append(pairs, [2]string{e.From, e.To})
	}
	require.Equal(s.T(), [][2]string{{"A", "n1"}, {"n1", "B"}, {"n2", "n1"}}, pairs)
	require.False(s.T(), sub.Graph.HasEdge("B", "C"), "third-party edge excluded")

	// Input untouched.
	require.Equal(s.T(), 5, g.EdgeCount())
	require.Equal(s.T(), 7, g.VertexCount())
}

func (s *AnchorSuite) TestExtractNoMatch() {
	g := newNetwork()
	sub, err := anchor.Extract(g, anchor.Exact("binance"))
	require.NoError(s.T(), err, "no match is a normal outcome")
	require.False(s.T(), sub.Found)
	require.Empty(s.T(), sub.Anchors)
	require.NotNil(s.T(), sub.Graph)
	require.Equal(s.T(), 0, sub.Graph.VertexCount())
	require.Equal(s.T(), 0, sub.Graph.EdgeCount())
	require.Equal(s.T(), day, sub.Graph.Date())
}

func (s *AnchorSuite) TestExtractIsolatedAnchor() {
	g := core.NewSnapshot(day)
	_ = g.AddLabeledVertex("n1", "Garantex")
	_, _ = g.AddEdge("A", "B", 1)

	sub, err := anchor.Extract(g, anchor.Substring("garantex"))
	require.NoError(s.T(), err)
	require.True(s.T(), sub.Found)
	require.Equal(s.T(), 0, sub.Graph.EdgeCount())
}

func (s *AnchorSuite) TestExtractErrors() {
	_, err := anchor.Extract(nil, anchor.Substring("x"))
	require.ErrorIs(s.T(), err, anchor.ErrNilGraph)

	_, err = anchor.Extract(newNetwork(), anchor.Rule{})
	require.ErrorIs(s.T(), err, anchor.ErrEmptyRule)
}

func TestAnchorSuite(t *testing.T) {
	suite.Run(t, new(AnchorSuite))
}

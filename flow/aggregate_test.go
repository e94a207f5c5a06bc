// SPDX-License-Identifier: MIT

package flow_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hubtrace/anchor"
	"github.com/katalvlaran/hubtrace/core"
	"github.com/katalvlaran/hubtrace/flow"
)

var day = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// AggregateSuite exercises direction classification and dedup policies.
type AggregateSuite struct {
	suite.Suite
	rule anchor.Rule
}

func (s *AggregateSuite) SetupTest() {
	s.rule = anchor.Substring("anchor")
}

// scenario builds (A, Anchor, 10), (Anchor, B, 5), (Anchor, B, 5).
func scenario() *core.Graph {
	g := core.NewSnapshot(day)
	_, _ = g.AddEdge("A", "Anchor", 10)
	_, _ = g.AddEdge("Anchor", "B", 5)
	_, _ = g.AddEdge("Anchor", "B", 5)

	return g
}

// TestScenarioRaw verifies every parallel edge counts under Raw.
func (s *AggregateSuite) TestScenarioRaw() {
	t, err := flow.Aggregate(scenario(), s.rule, flow.Raw)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10.0, t.TotalIn)
	require.Equal(s.T(), 1, t.CountIn)
	require.Equal(s.T(), 10.0, t.AverageIn)
	require.Equal(s.T(), 10.0, t.TotalOut)
	require.Equal(s.T(), 2, t.CountOut)
	require.Equal(s.T(), 5.0, t.AverageOut)
	require.Empty(s.T(), t.Skipped)
}

// TestScenarioUniquePairs verifies the duplicate (Anchor, B) is dropped.
func (s *AggregateSuite) TestScenarioUniquePairs() {
	t, err := flow.Aggregate(scenario(), s.rule, flow.UniquePairs)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10.0, t.TotalIn)
	require.Equal(s.T(), 1, t.CountIn)
	require.Equal(s.T(), 5.0, t.TotalOut)
	require.Equal(s.T(), 1, t.CountOut)
	require.Equal(s.T(), 5.0, t.AverageOut)
}

// TestRepetitionScaling verifies N copies scale linearly under Raw and collapse under UniquePairs.
func (s *AggregateSuite) TestRepetitionScaling() {
	once := core.NewSnapshot(day)
	_, _ = once.AddEdge("X", "Anchor", 4)
	_, _ = once.AddEdge("Anchor", "Y", 3)

	const n = 5
	many := core.NewSnapshot(day)
	for i := 0; i < n; i++ {
		_, _ = many.AddEdge("X", "Anchor", 4)
		_, _ = many.AddEdge("Anchor", "Y", 3)
	}

	base, err := flow.Aggregate(once, s.rule, flow.UniquePairs)
	require.NoError(s.T(), err)
	dedup, err := flow.Aggregate(many, s.rule, flow.UniquePairs)
	require.NoError(s.T(), err)
	require.Equal(s.T(), base, dedup)

	raw1, err := flow.Aggregate(once, s.rule, flow.Raw)
	require.NoError(s.T(), err)
	rawN, err := flow.Aggregate(many, s.rule, flow.Raw)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), n*raw1.TotalIn, rawN.TotalIn, 1e-9)
	require.InDelta(s.T(), n*raw1.TotalOut, rawN.TotalOut, 1e-9)
	require.Equal(s.T(), n*raw1.CountIn, rawN.CountIn)
	require.Equal(s.T(), raw1.AverageIn, rawN.AverageIn)
}

// TestDirectionsDisjoint verifies no edge lands in both classes and averages are consistent.
func (s *AggregateSuite) TestDirectionsDisjoint() {
	g := core.NewSnapshot(day)
	_ = g.AddLabeledVertex("h1", "Anchor Hot")
	_ = g.AddLabeledVertex("h2", "Anchor Cold")
	_, _ = g.AddEdge("A", "h1", 2)
	_, _ = g.AddEdge("h1", "h2", 100) // alias to alias
	_, _ = g.AddEdge("h2", "B", 3)
	_, _ = g.AddEdge("A", "B", 50) // third party
	_, _ = g.AddEdge("h1", "h1", 7) // loop on the anchor

	isAnchor := s.rule.Matcher(g)
	var in, out int
	for _, e := range g.Edges() {
		switch flow.Classify(e, isAnchor) {
		case flow.Inbound:
			in++
		case flow.Outbound:
			out++
		}
	}
	require.Equal(s.T(), 1, in)
	require.Equal(s.T(), 1, out)

	t, err := flow.Aggregate(g, s.rule, flow.Raw)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2.0, t.TotalIn)
	require.Equal(s.T(), 3.0, t.TotalOut)
	require.InDelta(s.T(), t.TotalIn, t.AverageIn*float64(t.CountIn), 1e-9)
	require.InDelta(s.T(), t.TotalOut, t.AverageOut*float64(t.CountOut), 1e-9)
}

// TestEmptyDirections verifies zero counts yield zero averages.
func (s *AggregateSuite) TestEmptyDirections() {
	g := core.NewSnapshot(day)
	_, _ = g.AddEdge("A", "B", 1)

	t, err := flow.Aggregate(g, s.rule, flow.Raw)
	require.NoError(s.T(), err)
	require.Equal(s.T(), flow.Totals{}, t)
}

// TestUnparseableWeights verifies bad edges are skipped, reported, and do not take the pair slot.
func (s *AggregateSuite) TestUnparseableWeights() {
	g := core.NewSnapshot(day)
	_, _ = g.AddEdge("A", "Anchor", 0, core.WithRawWeight("ten"))
	_, _ = g.AddEdge("A", "Anchor", 0, core.WithRawWeight("10"))
	_, _ = g.AddEdge("Anchor", "B", 0) // absent weight counts as 0

	t, err := flow.Aggregate(g, s.rule, flow.UniquePairs)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 10.0, t.TotalIn)
	require.Equal(s.T(), 1, t.CountIn)
	require.Equal(s.T(), 0.0, t.TotalOut)
	require.Equal(s.T(), 1, t.CountOut)
	require.Len(s.T(), t.Skipped, 1)
	require.Equal(s.T(), "e1", t.Skipped[0].EdgeID)
	require.Equal(s.T(), "ten", t.Skipped[0].Raw)
	require.ErrorIs(s.T(), t.Skipped[0], core.ErrWeightUnparseable)
}

// TestTotalAmount verifies the undirected grand total and its fault list.
func (s *AggregateSuite) TestTotalAmount() {
	g := scenario()
	_, _ = g.AddEdge("C", "D", 2.5)
	_, _ = g.AddEdge("C", "D", 0, core.WithRawWeight("?"))

	total, faults := flow.TotalAmount(g)
	require.Equal(s.T(), 22.5, total)
	require.Len(s.T(), faults, 1)

	total, faults = flow.TotalAmount(nil)
	require.Zero(s.T(), total)
	require.Nil(s.T(), faults)
}

// TestValidation verifies sentinel errors.
func (s *AggregateSuite) TestValidation() {
	_, err := flow.Aggregate(nil, s.rule, flow.Raw)
	require.ErrorIs(s.T(), err, flow.ErrNilGraph)
	_, err = flow.Aggregate(scenario(), anchor.Rule{}, flow.Raw)
	require.ErrorIs(s.T(), err, anchor.ErrEmptyRule)
	_, err = flow.Aggregate(scenario(), s.rule, flow.Policy(9))
	require.ErrorIs(s.T(), err, flow.ErrUnknownPolicy)

	p, err := flow.ParsePolicy("Unique_Pairs")
	require.NoError(s.T(), err)
	require.Equal(s.T(), flow.UniquePairs, p)
	require.Equal(s.T(), "unique_pairs", p.String())
	_, err = flow.ParsePolicy("median")
	require.ErrorIs(s.T(), err, flow.ErrUnknownPolicy)
}

func TestAggregateSuite(t *testing.T) {
	suite.Run(t, new(AggregateSuite))
}

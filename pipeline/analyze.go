// SPDX-License-Identifier: MIT

package pipeline

import (
	"github.com/katalvlaran/hubtrace/anchor"
	"github.com/katalvlaran/hubtrace/clustering"
	"github.com/katalvlaran/hubtrace/core"
	"github.com/katalvlaran/hubtrace/diag"
	"github.com/katalvlaran/hubtrace/flow"
	"github.com/katalvlaran/hubtrace/series"
)

// Analyze computes the metrics of one snapshot.
//
// The returned Result carries a record dated g.Date() and the diagnostics of
// this snapshot (AnchorNotFound, EdgeWeightUnparseable); Source is left empty
// for the caller to fill. Errors are reserved for invalid input: nil graph or
// invalid options.
func Analyze(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	sub, err := anchor.Extract(g, opts.Rule)
	if err != nil {
		return Result{}, err
	}
	res := Result{Date: g.Date(), Anchors: sub.Anchors, AnchorFound: sub.Found}
	if !sub.Found {
		res.Diagnostics = append(res.Diagnostics, diag.Diagnostic{
			Kind:   diag.AnchorNotFound,
			Date:   g.Date(),
			Detail: opts.Rule.String(),
		})
	}

	flowGraph := pick(opts.FlowScope, g, sub.Graph)
	if res.Totals, err = flow.Aggregate(flowGraph, opts.Rule, opts.Policy); err != nil {
		return Result{}, err
	}
	amount, faults := flow.TotalAmount(flowGraph)

	all := make([]flow.WeightFault, 0, len(res.Totals.Skipped)+len(faults))
	all = append(append(all, res.Totals.Skipped...), faults...)
	seen := make(map[string]struct{}, len(all))
	for _, f := range all {
		if _, dup := seen[f.EdgeID]; dup {
			continue
		}
		seen[f.EdgeID] = struct{}{}
		res.Diagnostics = append(res.Diagnostics, diag.Diagnostic{
			Kind:   diag.EdgeWeightUnparseable,
			Date:   g.Date(),
			Edge:   f.EdgeID,
			Detail: f.From + "→" + f.To,
			Err:    f,
		})
	}

	t := res.Totals
	res.Record = series.NewRecord(g.Date(), map[string]float64{
		series.TotalAmount:   amount,
		series.TotalIn:       t.TotalIn,
		series.TotalOut:      t.TotalOut,
		series.CountIn:       float64(t.CountIn),
		series.CountOut:      float64(t.CountOut),
		series.AverageIn:     t.AverageIn,
		series.AverageOut:    t.AverageOut,
		series.AvgClustering: clustering.Average(pick(opts.ClusteringScope, g, sub.Graph)),
		series.NodeCount:     float64(flowGraph.VertexCount()),
		series.EdgeCount:     float64(flowGraph.EdgeCount()),
	})

	return res, nil
}

func pick(s Scope, snapshot, subgraph *core.Graph) *core.Graph {
	if s == ScopeSnapshot {
		return snapshot
	}

	return subgraph
}

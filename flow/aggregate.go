// SPDX-License-Identifier: MIT

package flow

import (
	"github.com/katalvlaran/hubtrace/anchor"
	"github.com/katalvlaran/hubtrace/core"
)

// Classify returns the direction of e given an anchor membership predicate.
// An edge between two anchor aliases (including a self-loop on the anchor) is
// Unclassified: the transfer never leaves the logical anchor.
func Classify(e *core.Edge, isAnchor func(id string) bool) Direction {
	from, to := isAnchor(e.From), isAnchor(e.To)
	switch {
	case from && to:
		return Unclassified
	case to:
		return Inbound
	case from:
		return Outbound
	default:
		return Unclassified
	}
}

// Aggregate classifies every edge of g relative to the anchor rule and sums
// weights per direction under the given dedup policy.
//
// Steps:
//  1. Validate graph, rule and policy.
//  2. Resolve anchor vertices once (rule.Matcher).
//  3. Scan edges in snapshot order; skip unclassified edges.
//  4. Convert weight; on failure record a WeightFault and skip.
//  5. Under UniquePairs, skip pairs already counted.
//  6. Accumulate, then derive averages (0 on empty direction).
//
// Errors:
//   - ErrNilGraph, ErrUnknownPolicy, anchor.ErrEmptyRule.
func Aggregate(g *core.Graph, r anchor.Rule, policy Policy) (Totals, error) {
	if g == nil {
		return Totals{}, ErrNilGraph
	}
	if err := r.Validate(); err != nil {
		return Totals{}, err
	}
	if policy != Raw && policy != UniquePairs {
		return Totals{}, ErrUnknownPolicy
	}

	isAnchor := r.Matcher(g)
	seen := make(map[[2]string]struct{})

	var t Totals
	var (
		e      *core.Edge
		dir    Direction
		amount float64
		err    error
		key    [2]string
	)
	for _, e = range g.Edges() {
		if dir = Classify(e, isAnchor); dir == Unclassified {
			continue
		}
		if amount, err = e.Amount(); err != nil {
			t.Skipped = append(t.Skipped, fault(e, err))
			continue
		}
		if policy == UniquePairs {
			key = [2]string{e.From, e.To}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		if dir == Inbound {
			t.TotalIn += amount
			t.CountIn++
		} else {
			t.TotalOut += amount
			t.CountOut++
		}
	}
	t.AverageIn = average(t.TotalIn, t.CountIn)
	t.AverageOut = average(t.TotalOut, t.CountOut)

	return t, nil
}

// TotalAmount sums the weight of every edge of g regardless of direction.
// Edges with unparseable weights are excluded and returned as faults.
func TotalAmount(g *core.Graph) (float64, []WeightFault) {
	if g == nil {
		return 0, nil
	}
	var (
		total  float64
		faults []WeightFault
	)
	for _, e := range g.Edges() {
		amount, err := e.Amount()
		if err != nil {
			faults = append(faults, fault(e, err))
			continue
		}
		total += amount
	}

	return total, faults
}

func average(total float64, count int) float64 {
	if count == 0 {
		return 0
	}

	return total / float64(count)
}

func fault(e *core.Edge, err error) WeightFault {
	return WeightFault{EdgeID: e.ID, From: e.From, To: e.To, Raw: e.Raw, Err: err}
}

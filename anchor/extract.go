// SPDX-License-Identifier: MIT

package anchor

import "github.com/katalvlaran/hubtrace/core"

// Subgraph is the anchor-incident sub-network of one snapshot.
type Subgraph struct {
	// Graph holds the retained edges and their endpoints; never nil.
	Graph *core.Graph

	// Anchors lists the IDs of the matching vertices, sorted ascending.
	Anchors []string

	// Found is false when no vertex of the snapshot matched the rule.
	Found bool
}

// Extract isolates the edges of g with at least one anchor endpoint.
//
// Steps:
//  1. Resolve the anchor vertex set once.
//  2. If empty, return an empty snapshot-shaped graph with Found == false.
//  3. Build the edge-induced subgraph over edges whose From or To is an anchor.
//
// An anchor vertex with no edges is reported in Anchors and sets Found, but
// the subgraph only contains endpoints of retained edges.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - ErrEmptyRule: r has no value.
func Extract(g *core.Graph, r Rule) (*Subgraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	anchors := r.Anchors(g)
	if len(anchors) == 0 {
		return &Subgraph{Graph: core.InducedEdgeSubgraph(g, func(*core.Edge) bool { return false })}, nil
	}

	isAnchor := make(map[string]struct{}, len(anchors))
	for _, id := range anchors {
		isAnchor[id] = struct{}{}
	}
	sub := core.InducedEdgeSubgraph(g, func(e *core.Edge) bool {
		_, from := isAnchor[e.From]
		_, to := isAnchor[e.To]
		return from || to
	})

	return &Subgraph{Graph: sub, Anchors: anchors, Found: true}, nil
}

// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/hubtrace/anchor"
	"github.com/katalvlaran/hubtrace/diag"
	"github.com/katalvlaran/hubtrace/flow"
	"github.com/katalvlaran/hubtrace/series"
)

// Sentinel errors for pipeline runs.
var (
	// ErrNoData is returned when no snapshot produced a record.
	ErrNoData = fmt.Errorf("pipeline: no data: %w", series.ErrEmptySeries)

	// ErrUnknownScope is returned by ParseScope for an unrecognized scope name.
	ErrUnknownScope = errors.New("pipeline: unknown scope")

	// ErrUndated is returned by a source whose snapshot carries no date.
	ErrUndated = errors.New("pipeline: snapshot has no date")

	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("pipeline: graph is nil")
)

// Scope selects which graph a metric is computed on.
type Scope int

const (
	// ScopeSubgraph computes on the anchor subgraph.
	ScopeSubgraph Scope = iota

	// ScopeSnapshot computes on the full snapshot.
	ScopeSnapshot
)

// String returns the configuration name of the scope.
func (s Scope) String() string {
	switch s {
	case ScopeSubgraph:
		return "subgraph"
	case ScopeSnapshot:
		return "snapshot"
	default:
		return fmt.Sprintf("Scope(%d)", int(s))
	}
}

// ParseScope converts "subgraph" or "snapshot" into a Scope.
func ParseScope(name string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "subgraph":
		return ScopeSubgraph, nil
	case "snapshot":
		return ScopeSnapshot, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScope, name)
	}
}

// Options configures snapshot analysis.
type Options struct {
	// Rule identifies the anchor entity.
	Rule anchor.Rule

	// Policy selects raw or unique_pairs counting.
	Policy flow.Policy

	// FlowScope selects the graph for flow totals, total_amount and sizes. Default ScopeSubgraph.
	FlowScope Scope

	// ClusteringScope selects the graph for avg_clustering.
	ClusteringScope Scope

	// Workers bounds the number of snapshots processed concurrently; <= 1 means sequential.
	Workers int

	// Merges declares the per-metric merge functions; nil means series.DefaultMerges.
	Merges map[string]series.MergeFunc
}

// DefaultOptions returns options for rule with raw counting, flow on the
// subgraph and clustering on the snapshot.
func DefaultOptions(rule anchor.Rule) Options {
	return Options{
		Rule:            rule,
		Policy:          flow.Raw,
		FlowScope:       ScopeSubgraph,
		ClusteringScope: ScopeSnapshot,
		Workers:         1,
	}
}

// Validate checks the rule, policy and scopes.
func (o Options) Validate() error {
	if err := o.Rule.Validate(); err != nil {
		return err
	}
	if o.Policy != flow.Raw && o.Policy != flow.UniquePairs {
		return flow.ErrUnknownPolicy
	}
	for _, s := range []Scope{o.FlowScope, o.ClusteringScope} {
		if s != ScopeSubgraph && s != ScopeSnapshot {
			return fmt.Errorf("%w: %v", ErrUnknownScope, s)
		}
	}

	return nil
}

func (o Options) merges() map[string]series.MergeFunc {
	if o.Merges == nil {
		return series.DefaultMerges()
	}

	return o.Merges
}

// Result is the analysis of one snapshot.
type Result struct {
	Source      string
	Date        time.Time
	Record      series.Record
	Totals      flow.Totals
	Anchors     []string
	AnchorFound bool
	Diagnostics []diag.Diagnostic
}

// Outcome is the product of a Runner run.
type Outcome struct {
	Series      series.Series
	Results     []Result
	Diagnostics []diag.Diagnostic
}

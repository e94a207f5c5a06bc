// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for flow aggregation.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrUnknownPolicy is returned for a dedup policy outside Raw/UniquePairs.
	ErrUnknownPolicy = errors.New("flow: unknown dedup policy")
)

// Policy governs whether parallel edges between the same ordered pair each count.
type Policy int

const (
	// Raw counts every edge occurrence.
	Raw Policy = iota

	// UniquePairs counts only the first occurrence of each ordered pair.
	UniquePairs
)

// String returns the configuration name of the policy.
func (p Policy) String() string {
	switch p {
	case Raw:
		return "raw"
	case UniquePairs:
		return "unique_pairs"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts a configuration name ("raw", "unique_pairs") into a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "raw":
		return Raw, nil
	case "unique_pairs", "unique-pairs", "unique":
		return UniquePairs, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Direction of an edge relative to the anchor.
type Direction int

const (
	// Unclassified edges touch no anchor endpoint in a countable way.
	Unclassified Direction = iota
	// Inbound edges end at the anchor.
	Inbound
	// Outbound edges leave the anchor for a non-anchor vertex.
	Outbound
)

// String returns a lower-case name for logs.
func (d Direction) String() string {
	switch d {
	case Inbound:
		return "inbound"
	case Outbound:
		return "outbound"
	default:
		return "unclassified"
	}
}

// Totals holds the directional flow statistics of one snapshot.
type Totals struct {
	TotalIn    float64
	TotalOut   float64
	CountIn    int
	CountOut   int
	AverageIn  float64
	AverageOut float64

	// Skipped lists edges excluded because their weight could not be parsed.
	Skipped []WeightFault
}

// WeightFault describes one edge excluded from aggregation.
type WeightFault struct {
	EdgeID string
	From   string
	To     string
	Raw    string
	Err    error
}

func (f WeightFault) Error() string {
	return fmt.Sprintf("flow: edge %s %q→%q: %v", f.EdgeID, f.From, f.To, f.Err)
}

// Unwrap exposes the underlying parse error (core.ErrWeightUnparseable).
func (f WeightFault) Unwrap() error { return f.Err }

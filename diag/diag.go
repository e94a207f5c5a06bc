// SPDX-License-Identifier: MIT

package diag

import (
	"fmt"
	"sync"
	"time"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// SnapshotDateUnparseable: the date token of a snapshot source cannot be parsed; snapshot skipped.
	SnapshotDateUnparseable Kind = iota + 1

	// SnapshotUnreadable: the snapshot could not be loaded; snapshot skipped.
	SnapshotUnreadable

	// AnchorNotFound: no vertex matched the anchor rule; flow metrics are zero for that date.
	AnchorNotFound

	// EdgeWeightUnparseable: an edge weight is not a finite number; edge excluded.
	EdgeWeightUnparseable

	// EmptySeries: no snapshot produced a result.
	EmptySeries
)

var kindNames = map[Kind]string{
	SnapshotDateUnparseable: "snapshot_date_unparseable",
	SnapshotUnreadable:      "snapshot_unreadable",
	AnchorNotFound:          "anchor_not_found",
	EdgeWeightUnparseable:   "edge_weight_unparseable",
	EmptySeries:             "empty_series",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Diagnostic is one contained failure.
type Diagnostic struct {
	Kind   Kind      `json:"kind"`
	Source string    `json:"source,omitempty"` // snapshot file or identifier
	Date   time.Time `json:"date,omitempty"`   // zero when unknown
	Edge   string    `json:"edge,omitempty"`   // edge ID for edge-level kinds
	Detail string    `json:"detail,omitempty"`
	Err    error     `json:"-"`
}

// Error renders the diagnostic so it can travel as an error value.
func (d Diagnostic) Error() string {
	msg := d.Kind.String()
	if d.Source != "" {
		msg += " " + d.Source
	}
	if d.Edge != "" {
		msg += " edge " + d.Edge
	}
	if d.Detail != "" {
		msg += ": " + d.Detail
	}
	if d.Err != nil {
		msg += ": " + d.Err.Error()
	}

	return msg
}

// Unwrap exposes the underlying cause.
func (d Diagnostic) Unwrap() error { return d.Err }

// Collector accumulates diagnostics in arrival order.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

// NewCollector returns an empty collector.
func NewCollector() *Collector { return &Collector{} }

// Add appends diagnostics.
func (c *Collector) Add(ds ...Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, ds...)
	c.mu.Unlock()
}

// List returns a copy of the collected diagnostics.
func (c *Collector) List() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)

	return out
}

// Count returns the number of diagnostics of kind k.
func (c *Collector) Count(k Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, d := range c.items {
		if d.Kind == k {
			n++
		}
	}

	return n
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

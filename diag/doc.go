// SPDX-License-Identifier: MIT

// Package diag defines the diagnostics raised while processing snapshots and
// a collector that accumulates them.
//
// A diagnostic never aborts a run. Snapshot-level kinds mean the snapshot was
// skipped; edge-level kinds mean one edge was excluded from totals. Only
// EmptySeries describes the run as a whole.
//
// Collector is safe for concurrent use.
package diag

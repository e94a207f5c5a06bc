// SPDX-License-Identifier: MIT

// Package pipeline turns a set of dated snapshot sources into a time series of
// anchor metrics.
//
// Per source:
//
//  1. Resolve the date token; failure ⇒ SnapshotDateUnparseable, skip.
//  2. Load the snapshot; failure ⇒ SnapshotUnreadable, skip.
//  3. Extract the anchor subgraph; no match ⇒ AnchorNotFound, zero flow totals.
//  4. Aggregate flow on the configured scope; unparseable weights ⇒
//     EdgeWeightUnparseable per edge, the edge is excluded.
//  5. Compute the average clustering coefficient on the configured scope.
//  6. Emit a series.Record with the metrics listed in series.DefaultMerges.
//
// Runner repeats this for every source (sequentially, or with up to Workers
// snapshots in flight) and assembles the records with series.Assemble. No
// per-snapshot failure aborts the run; when nothing survives, Run reports
// ErrNoData together with an EmptySeries diagnostic.
//
// Progress is logged at debug level through the zerolog logger carried by the
// context (zerolog.Ctx); the package never prints.
package pipeline

// SPDX-License-Identifier: MIT

// Package series assembles per-snapshot metric records into a time series
// ordered by calendar date.
//
// What:
//
//   - Record holds the scalar metrics of one snapshot (metric name → value).
//   - Assemble groups records by date (normalized to midnight UTC) and
//     combines every metric of a group with its declared MergeFunc.
//   - Sum suits additive totals, Mean suits rates and averages.
//
// Contract:
//
//   - Every metric present in the input must have a declared merge function;
//     otherwise Assemble fails with ErrUndeclaredMetric. Values are never
//     silently overwritten.
//   - The output holds one record per date, ascending. Within a group, values
//     are merged in input order.
//   - An empty input yields an empty Series and ErrEmptySeries, so callers can
//     tell "no data" apart from a run whose days are all zero.
//   - Mean averages only the records of the group that carry the metric.
//
// Complexity: O(N log N) for N input records (grouping plus date sort).
package series

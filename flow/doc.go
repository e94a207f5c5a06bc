// SPDX-License-Identifier: MIT

// Package flow classifies the transactions of a snapshot by direction relative
// to an anchor entity and aggregates their monetary weights.
//
// Direction
//
//   - Inbound:  the target matches the anchor rule.
//   - Outbound: the source matches and the target does not.
//   - Otherwise the edge is unclassified and ignored (alias-to-alias transfers,
//     or third-party edges when a full snapshot is passed instead of an
//     extracted subgraph). The two classes are disjoint by construction.
//
// Dedup policies
//
//   - Raw: every parallel edge counts, weights summed as-is.
//   - UniquePairs: only the first occurrence (in snapshot order) of each ordered
//     (from, to) pair counts toward the sum and the count of its direction;
//     later occurrences are skipped entirely. Parallel transactions are therefore
//     undercounted on purpose: the policy measures distinct counterparties, not volume.
//
// Averages are total/count, and 0 when the count is 0.
//
// Unparseable weights
//
//	An edge whose weight text is not a number is excluded from every total and
//	count and reported in Totals.Skipped. It does not take the first-occurrence
//	slot of its pair, so a later valid duplicate still counts under UniquePairs.
//
// Complexity: O(V·L + E) per call (anchor resolution + one edge scan).
package flow

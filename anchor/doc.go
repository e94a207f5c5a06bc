// SPDX-License-Identifier: MIT

// Package anchor identifies the anchor entity of a transaction snapshot and
// isolates the sub-network directly connected to it.
//
// What
//
//   - Rule is a tagged predicate over vertices: Substring (case-insensitive
//     substring of label or ID), Exact (case-insensitive equality of label or
//     ID) or Set (exact ID membership). Several vertices may match one rule;
//     together they form one logical anchor (aliases).
//   - Extract keeps exactly the edges with an anchor endpoint and the endpoints
//     of those edges. Edges between two non-anchor neighbors are NOT pulled in,
//     so the result is edge-induced, not vertex-induced.
//
// No match
//
//	When no vertex matches, Extract returns an empty Subgraph with Found == false
//	and a nil error. A nil graph is malformed input and yields ErrNilGraph, so
//	callers can tell "anchor absent today" from "no snapshot at all".
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Rule.Anchors: O(V·L) where L is the label length.
//   - Extract:      O(V·L + E).
package anchor

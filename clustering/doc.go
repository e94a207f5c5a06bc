// SPDX-License-Identifier: MIT

// Package clustering computes the local clustering coefficient of every vertex
// of a graph and the graph-level average.
//
// The metric ignores direction and weight: the graph is first reduced with
// core.UndirectedSimpleView (one undirected edge per adjacent pair, no
// self-loops, no parallel edges). For a vertex with k distinct neighbors,
//
//	C(v) = links among neighbors / (k·(k-1)/2),   C(v) = 0 when k < 2.
//
// Average is the arithmetic mean over ALL vertices, zero-coefficient vertices
// included, and 0 for an empty graph. The engine is agnostic to scope: callers
// pass either a full snapshot or an anchor subgraph.
//
// Complexity: O(V + E + Σ k²) time, O(V + E) space for the view.
package clustering

// SPDX-License-Identifier: MIT

// Package core provides a thread-safe in-memory Graph used to hold one dated
// transaction snapshot, with a minimal, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted), float64 amounts
//   - Parallel edges / multi-graphs (WithMultiEdges): every transaction is its own edge
//   - Self-loops (WithLoops)
//   - A calendar date stamp (WithDate), normalized to midnight UTC
//   - Labeled vertices (AddLabeledVertex): the label is what anchor rules match
//   - Verbatim textual weights (WithRawWeight) with deferred error reporting (Edge.Amount)
//
// NewSnapshot(date) is the loader constructor: directed, weighted, multi-edges, loops.
//
// Edge order:
//
//	Edges are never keyed by (from,to) alone. Edges() returns them in insertion
//	order, so the first occurrence of a pair is well defined for callers that
//	count each pair once.
//
// Core Methods:
//
//	AddVertex(id) / AddLabeledVertex(id, label) error      // O(1)
//	HasVertex(id) bool, Vertex(id), Label(id)               // O(1)
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (edgeID string, err error)
//	HasEdge(from, to) bool, GetEdge(id)                     // O(1)
//	Neighbors(id) / NeighborIDs(id)                         // O(d log d)
//	Vertices() []string                                     // O(V log V), sorted
//	Edges() []*Edge                                         // O(E), insertion order
//	Degree(id) (in, out, undirected int, err error)        // O(E)
//	Stats() *GraphStats                                     // O(E)
//
// Views (fresh graphs, the source is never mutated):
//
//	InducedEdgeSubgraph(g, keep)   // kept edges + their endpoints
//	UndirectedSimpleView(g)        // one undirected unweighted edge per adjacent pair, no loops
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – non-zero weight on unweighted graph
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//	ErrWeightUnparseable   – textual weight that is not a finite number (from Edge.Amount)
package core

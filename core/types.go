// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph, Vertex, and Edge types used to hold
// one dated transaction snapshot, and provides thread-safe primitives for
// building and querying it.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency). Lock order is always muVert -> muEdgeAdj.
//
// This file declares Vertex, Edge, Graph, GraphOption, EdgeOption,
// sentinel errors, and the NewGraph / NewSnapshot constructors.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//	ErrWeightUnparseable   - textual edge weight is not a finite number.
package core

import (
	"errors"
	"sync"
	"time"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrWeightUnparseable indicates an edge whose textual weight is not a finite number.
	ErrWeightUnparseable = errors.New("core: edge weight is not a number")
)

// Vertex represents an entity of the transaction network.
//
// ID uniquely identifies this Vertex within its Graph.
// Label is the display label used for anchor matching; it equals ID when the
// snapshot carries no label.
// Metadata stores arbitrary key-value data and is shared on views.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Label is the human-readable name of the entity.
	Label string

	// Metadata stores arbitrary user data. It is not deep-copied by views.
	Metadata map[string]interface{}
}

// Edge represents one observed transaction between two vertices.
//
// Parallel edges between the same ordered pair are independent observations,
// each with its own ID and weight.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the monetary amount carried by the edge (0 when absent or unparseable).
	Weight float64

	// Raw is the verbatim textual weight as read from the snapshot, empty when
	// the weight was absent or supplied numerically.
	Raw string

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool

	// weightErr records why Raw could not be converted into Weight.
	weightErr error
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all new edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithDate stamps the graph with the calendar date of the snapshot.
// The time-of-day component is dropped.
func WithDate(date time.Time) GraphOption {
	return func(g *Graph) { g.date = TruncateDay(date) }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithRawWeight keeps the textual weight of an edge as read from the snapshot.
// AddEdge converts it into Weight; text that is not a finite number leaves
// Weight at 0 and is reported by Edge.Amount.
func WithRawWeight(raw string) EdgeOption {
	return func(e *Edge) { e.Raw = raw }
}

// Graph is the in-memory snapshot data structure.
//
// It supports: directed vs. undirected, weighted vs. unweighted,
// parallel edges (multi-edges) and self-loops.
// muVert protects vertices; muEdgeAdj protects edges, order and adjacencyList.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges, order and adjacency

	// Configuration flags
	directed   bool      // edge directedness
	weighted   bool      // allow non-zero weights
	allowMulti bool      // allow parallel edges
	allowLoops bool      // allow self-loops
	date       time.Time // snapshot date (zero when undated)

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge
	order      []string           // edge IDs in insertion order

	// adjacencyList[(from)Vertex.ID][(to)Vertex.ID][Edge.ID] = struct{}{}
	adjacencyList map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected, unweighted, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:      make(map[string]*Vertex),
		edges:         make(map[string]*Edge),
		adjacencyList: make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewSnapshot creates an empty transaction snapshot for the given date:
// directed, weighted, with parallel edges and self-loops allowed.
func NewSnapshot(date time.Time) *Graph {
	return NewGraph(WithDirected(true), WithWeighted(), WithMultiEdges(), WithLoops(), WithDate(date))
}

// TruncateDay normalizes t to midnight UTC of its calendar date.
func TruncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

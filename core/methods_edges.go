// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       weight conversion (Amount) and nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order (occurrence order of the snapshot).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Byte form allows append to a []byte buffer without fmt.
const edgeIDPrefix = 'e'

// AddEdge records one transaction from→to with the given weight and returns its Edge.ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid atomically; build Edge, apply opts, convert Raw weight.
//  5. Store in g.edges and append to the insertion order.
//  6. Link adjacency; mirror when undirected (loops skip the mirror).
//
// A textual weight supplied through WithRawWeight that is not a finite number
// does not fail AddEdge: the edge is stored with Weight 0 and Amount reports
// ErrWeightUnparseable, so one bad edge never invalidates the snapshot.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}
	if e.Raw != "" {
		e.Weight, e.weightErr = parseWeight(e.Raw)
		if !g.weighted && e.Weight != 0 {
			return "", ErrBadWeight
		}
	}

	g.edges[eid] = e
	g.order = append(g.order, eid)
	linkEdge(g, e)

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways for them.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only by callers.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in insertion order.
//
// Insertion order is the occurrence order of transactions in the snapshot; the
// first element of any run of parallel edges is the first observation of that pair.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.order))
	var eid string
	for _, eid = range g.order {
		out = append(out, g.edges[eid])
	}

	return out
}

// EdgeCount returns total number of edges (parallel edges counted individually).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Amount returns the monetary weight of the edge.
//
// Absent weights read as 0 with a nil error. A textual weight that is not a
// finite number returns an error wrapping ErrWeightUnparseable.
func (e *Edge) Amount() (float64, error) {
	if e.weightErr != nil {
		return 0, e.weightErr
	}

	return e.Weight, nil
}

// IsNil reports whether the receiver should be treated as nil when stored inside interfaces.
func (e *Edge) IsNil() bool { return e == nil }

// parseWeight converts the textual weight of an edge. Surrounding spaces are
// ignored; NaN and infinities are rejected since they poison every sum they enter.
func parseWeight(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrWeightUnparseable, raw)
	}

	return v, nil
}

// nextEdgeID returns a new unique textual edge ID ("e1", "e2", ...).
// Safe for concurrent callers; atomic.AddUint64 reserves the next number.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

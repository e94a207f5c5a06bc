// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

import "time"

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports whether new edges are directed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Date returns the calendar date the snapshot was stamped with (midnight UTC),
// or the zero time for undated graphs.
func (g *Graph) Date() time.Time {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.date
}

// Stats produces a deterministic, read-only snapshot of configuration flags and catalog sizes.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, count edges, self-loops and parallel duplicates, then release.
//
// Notes:
//   - ParallelEdgeCount counts every edge beyond the first on the same ordered pair,
//     so EdgeCount-ParallelEdgeCount is the number of distinct ordered pairs.
//
// Complexity:
//   - Time O(E), Space O(P) for the pair set.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		Date:        g.date,
		Directed:    g.directed,
		Weighted:    g.weighted,
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		VertexCount: len(g.vertices),
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	pairs := make(map[[2]string]struct{}, len(g.edges))
	var e *Edge
	var key [2]string
	for _, e = range g.edges {
		if e.From == e.To {
			stats.LoopCount++
		}
		key = [2]string{e.From, e.To}
		if _, dup := pairs[key]; dup {
			stats.ParallelEdgeCount++
			continue
		}
		pairs[key] = struct{}{}
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}

// GraphStats is an immutable-by-convention summary returned by Graph.Stats.
type GraphStats struct {
	Date              time.Time
	Directed          bool
	Weighted          bool
	AllowsMulti       bool
	AllowsLoops       bool
	VertexCount       int
	EdgeCount         int
	LoopCount         int
	ParallelEdgeCount int
}

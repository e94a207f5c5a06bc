// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views (new, independent graphs derived from a source).
// Determinism:
//   - Preserves vertex labels, edge IDs, weights and insertion order.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// options returns the GraphOption list reproducing g's configuration.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed), WithDate(g.date)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}

// InducedEdgeSubgraph returns a new Graph holding exactly the edges of g accepted
// by keep, together with their endpoints. Vertices not touched by a kept edge are
// left out, and so are edges between kept vertices that keep rejected: this is an
// edge-induced subgraph, not a vertex-induced one. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedEdgeSubgraph(g *Graph, keep func(*Edge) bool) *Graph {
	g.muVert.RLock()
	out := NewGraph(g.options()...)
	g.muVert.RUnlock()

	// Select edges first; endpoints are known only after the scan.
	g.muEdgeAdj.RLock()
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	kept := make([]*Edge, 0)
	var eid string
	var e *Edge
	for _, eid = range g.order {
		e = g.edges[eid]
		if keep(e) {
			kept = append(kept, e)
		}
	}
	g.muEdgeAdj.RUnlock()

	g.muVert.RLock()
	var v *Vertex
	for _, e = range kept {
		for _, id := range [2]string{e.From, e.To} {
			if _, ok := out.vertices[id]; ok {
				continue
			}
			v = g.vertices[id]
			out.vertices[id] = &Vertex{ID: v.ID, Label: v.Label, Metadata: v.Metadata}
			ensureAdjacencyRoot(out, id)
		}
	}
	g.muVert.RUnlock()

	var ne *Edge
	for _, e = range kept {
		ne = &Edge{ID: e.ID, From: e.From, To: e.To, Weight: e.Weight, Raw: e.Raw, Directed: e.Directed, weightErr: e.weightErr}
		out.edges[ne.ID] = ne
		out.order = append(out.order, ne.ID)
		linkEdge(out, ne)
	}

	// Carry over the edge ID counter so future AddEdge() calls cannot collide with copied IDs.
	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// UndirectedSimpleView returns a new undirected, unweighted simple graph with the
// same vertices as g and one edge per unordered pair of distinct adjacent vertices.
// Direction, weights, parallel edges and self-loops are dropped. The input graph is
// not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func UndirectedSimpleView(g *Graph) *Graph {
	out := NewGraph(WithDirected(false), WithDate(g.Date()))

	g.muVert.RLock()
	for id, v := range g.vertices {
		out.vertices[id] = &Vertex{ID: v.ID, Label: v.Label, Metadata: v.Metadata}
		ensureAdjacencyRoot(out, id)
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var e, ne *Edge
	for _, eid := range g.order {
		e = g.edges[eid]
		if e.From == e.To || len(out.adjacencyList[e.From][e.To]) > 0 {
			continue
		}
		ne = &Edge{ID: nextEdgeID(out), From: e.From, To: e.To}
		out.edges[ne.ID] = ne
		out.order = append(out.order, ne.ID)
		linkEdge(out, ne)
	}

	return out
}

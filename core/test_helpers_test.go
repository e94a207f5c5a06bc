// SPDX-License-Identifier: MIT
//
// Shared fixtures for core tests.

package core_test

import (
	"time"

	"github.com/katalvlaran/hubtrace/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X" // never added by any fixture

	VertexHub = "hub-1"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 = 0.0
	Weight1 = 1.0
	Weight5 = 5.0
	Weight7 = 7.5
)

// Day is the snapshot date shared by fixtures.
var Day = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// NewSnapshotABC RETURNS a snapshot with a hub labeled "Exchange" and three
// transactions, two of them parallel:
//
//	A ──1──▶ hub ──5──▶ B
//	          └───5──▶ B
func NewSnapshotABC() *core.Graph {
	g := core.NewSnapshot(Day)
	_ = g.AddLabeledVertex(VertexHub, "Exchange")
	_, _ = g.AddEdge(VertexA, VertexHub, Weight1)
	_, _ = g.AddEdge(VertexHub, VertexB, Weight5)
	_, _ = g.AddEdge(VertexHub, VertexB, Weight5)

	return g
}

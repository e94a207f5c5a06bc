// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/hubtrace/core"
)

// ExampleNewSnapshot demonstrates building a dated transaction multigraph.
func ExampleNewSnapshot() {
	g := core.NewSnapshot(time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC))
	_ = g.AddLabeledVertex("x1", "Exchange")

	// Parallel transactions stay separate edges.
	_, _ = g.AddEdge("alice", "x1", 10)
	_, _ = g.AddEdge("x1", "bob", 5)
	_, _ = g.AddEdge("x1", "bob", 5)
	_, _ = g.AddEdge("x1", "carol", 0, core.WithRawWeight("unknown"))

	fmt.Println("date:", g.Date().Format("2006-01-02"))
	fmt.Println("vertices:", g.Vertices())
	for _, e := range g.Edges() {
		amount, err := e.Amount()
		fmt.Println(e.ID, e.From, "->", e.To, amount, err != nil)
	}

	// Output:
	// date: 2024-01-01
	// vertices: [alice bob carol x1]
	// e1 alice -> x1 10 false
	// e2 x1 -> bob 5 false
	// e3 x1 -> bob 5 false
	// e4 x1 -> carol 0 true
}

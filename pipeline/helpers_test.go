// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hubtrace/core"
)

var day = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// edge is (from, to, weight text); empty text omits the weight.
type edge [3]string

// writeGraphML writes a directed GraphML snapshot; node "hub", when some edge
// touches it, is declared with label "Anchor".
func writeGraphML(t *testing.T, dir, name string, edges ...edge) string {
	t.Helper()

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
  <key id="label" for="node" attr.name="label" attr.type="string"/>
  <key id="w" for="edge" attr.name="weight" attr.type="double"/>
  <graph edgedefault="directed">
`)
	for _, e := range edges {
		if e[0] == "hub" || e[1] == "hub" {
			b.WriteString(`    <node id="hub"><data key="label">Anchor</data></node>` + "\n")
			break
		}
	}
	for _, e := range edges {
		if e[2] == "" {
			fmt.Fprintf(&b, "    <edge source=%q target=%q/>\n", e[0], e[1])
			continue
		}
		fmt.Fprintf(&b, "    <edge source=%q target=%q><data key=\"w\">%s</data></edge>\n", e[0], e[1], e[2])
	}
	b.WriteString("  </graph>\n</graphml>\n")

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))

	return path
}

// scenario builds (A, hub, 10), (hub, B, 5), (hub, B, 5), (B, C, 4), (C, A, 1)
// with hub labeled "Anchor".
func scenario(date time.Time) *core.Graph {
	g := core.NewSnapshot(date)
	_ = g.AddLabeledVertex("hub", "Anchor")
	_, _ = g.AddEdge("A", "hub", 10)
	_, _ = g.AddEdge("hub", "B", 5)
	_, _ = g.AddEdge("hub", "B", 5)
	_, _ = g.AddEdge("B", "C", 4)
	_, _ = g.AddEdge("C", "A", 1)

	return g
}

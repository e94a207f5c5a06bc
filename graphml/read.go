// SPDX-License-Identifier: MIT

package graphml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/katalvlaran/hubtrace/core"
)

// Read decodes the first graph of a GraphML document into a snapshot dated date.
//
// Errors:
//   - ErrMalformed: XML syntax error, or an edge/node without an ID.
//   - ErrNoGraph: no <graph> element.
func Read(r io.Reader, date time.Time) (*core.Graph, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(doc.Graphs) == 0 {
		return nil, ErrNoGraph
	}
	ge := doc.Graphs[0]

	var labelKey, nameKey, weightKey string
	var weightDefault *string
	for _, k := range doc.Keys {
		switch {
		case k.For != "" && k.For != "all" && k.For != "node" && k.For != "edge":
			continue
		case k.Name == AttrLabel && k.For != "edge" && labelKey == "":
			labelKey = k.ID
		case k.Name == AttrName && k.For != "edge" && nameKey == "":
			nameKey = k.ID
		case k.Name == AttrWeight && k.For != "node" && weightKey == "":
			weightKey, weightDefault = k.ID, k.Default
		}
	}
	if labelKey == "" {
		labelKey = nameKey
	}

	g := core.NewGraph(
		core.WithDirected(ge.EdgeDefault != "undirected"),
		core.WithWeighted(),
		core.WithMultiEdges(),
		core.WithLoops(),
		core.WithDate(date),
	)

	for _, n := range ge.Nodes {
		label, _ := lookup(n.Data, labelKey)
		if err := g.AddLabeledVertex(n.ID, strings.TrimSpace(label)); err != nil {
			return nil, fmt.Errorf("%w: node: %w", ErrMalformed, err)
		}
	}

	var opts []core.EdgeOption
	for i, e := range ge.Edges {
		opts = opts[:0]
		raw, ok := lookup(e.Data, weightKey)
		if !ok && weightDefault != nil {
			raw, ok = *weightDefault, true
		}
		if ok && strings.TrimSpace(raw) != "" {
			opts = append(opts, core.WithRawWeight(raw))
		}
		if _, err := g.AddEdge(e.Source, e.Target, 0, opts...); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s→%s): %w", ErrMalformed, i, e.Source, e.Target, err)
		}
	}

	return g, nil
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string, date time.Time) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f, date)
}

// DateFromName extracts the calendar date encoded as the last "_"-separated
// token of a file name (extension removed), normalized to midnight UTC.
// Only the last extension is stripped, so dotted dates such as
// "x_2024.01.02.graphml" keep their full token.
func DateFromName(name string) (time.Time, error) {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	token := base
	if i := strings.LastIndexByte(base, '_'); i >= 0 {
		token = base[i+1:]
	}
	if token == "" {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateToken, name)
	}

	t, err := dateparse.ParseIn(token, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %w", ErrDateToken, name, err)
	}

	return core.TruncateDay(t), nil
}

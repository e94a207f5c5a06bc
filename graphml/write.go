// SPDX-License-Identifier: MIT

package graphml

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/hubtrace/core"
)

// Key IDs emitted by Write.
const (
	keyLabel  = "d0"
	keyWeight = "d1"
)

// Write encodes g as a GraphML document: one graph, node labels under
// "label", edge weights under "weight" (Raw text when present), edges in
// insertion order with their IDs.
func Write(w io.Writer, g *core.Graph) error {
	edgeDefault := "undirected"
	if g.Directed() {
		edgeDefault = "directed"
	}
	doc := document{
		Xmlns: Namespace,
		Keys: []keyDecl{
			{ID: keyLabel, For: "node", Name: AttrLabel, Type: "string"},
			{ID: keyWeight, For: "edge", Name: AttrWeight, Type: "double"},
		},
	}
	ge := graphElem{ID: "G", EdgeDefault: edgeDefault}

	for _, id := range g.Vertices() {
		n := nodeElem{ID: id}
		if label := g.Label(id); label != "" && label != id {
			n.Data = []dataElem{{Key: keyLabel, Value: label}}
		}
		ge.Nodes = append(ge.Nodes, n)
	}
	for _, e := range g.Edges() {
		weight := e.Raw
		if weight == "" {
			weight = strconv.FormatFloat(e.Weight, 'g', -1, 64)
		}
		ge.Edges = append(ge.Edges, edgeElem{
			ID:     e.ID,
			Source: e.From,
			Target: e.To,
			Data:   []dataElem{{Key: keyWeight, Value: weight}},
		})
	}
	doc.Graphs = []graphElem{ge}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")

	return err
}

// WriteFile creates path and encodes g into it.
func WriteFile(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(f, g)
}

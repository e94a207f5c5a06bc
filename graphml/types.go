// SPDX-License-Identifier: MIT

package graphml

import (
	"encoding/xml"
	"errors"
)

// Sentinel errors for GraphML I/O.
var (
	// ErrMalformed is returned when the document is not valid GraphML.
	ErrMalformed = errors.New("graphml: malformed document")

	// ErrNoGraph is returned when the document holds no <graph> element.
	ErrNoGraph = errors.New("graphml: document has no graph")

	// ErrDateToken is returned when a file name carries no parseable date token.
	ErrDateToken = errors.New("graphml: unparseable date token")
)

// Namespace is the GraphML XML namespace written by Write.
const Namespace = "http://graphml.graphdrawing.org/xmlns"

// Attribute names recognized on <key> declarations.
const (
	AttrLabel  = "label"
	AttrName   = "name"
	AttrWeight = "weight"
)

type document struct {
	XMLName xml.Name    `xml:"graphml"`
	Xmlns   string      `xml:"xmlns,attr,omitempty"`
	Keys    []keyDecl   `xml:"key"`
	Graphs  []graphElem `xml:"graph"`
}

type keyDecl struct {
	ID      string  `xml:"id,attr"`
	For     string  `xml:"for,attr"`
	Name    string  `xml:"attr.name,attr"`
	Type    string  `xml:"attr.type,attr,omitempty"`
	Default *string `xml:"default"`
}

type graphElem struct {
	ID          string     `xml:"id,attr,omitempty"`
	EdgeDefault string     `xml:"edgedefault,attr"`
	Nodes       []nodeElem `xml:"node"`
	Edges       []edgeElem `xml:"edge"`
}

type nodeElem struct {
	ID   string     `xml:"id,attr"`
	Data []dataElem `xml:"data"`
}

type edgeElem struct {
	ID     string     `xml:"id,attr,omitempty"`
	Source string     `xml:"source,attr"`
	Target string     `xml:"target,attr"`
	Data   []dataElem `xml:"data"`
}

type dataElem struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// lookup returns the value of key in data.
func lookup(data []dataElem, key string) (string, bool) {
	if key == "" {
		return "", false
	}
	for _, d := range data {
		if d.Key == key {
			return d.Value, true
		}
	}

	return "", false
}

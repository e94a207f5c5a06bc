// SPDX-License-Identifier: MIT

// Package report renders an assembled series for operators: a text table,
// CSV, JSON or YAML.
package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hubtrace/diag"
	"github.com/katalvlaran/hubtrace/series"
)

// ErrUnknownFormat is returned by ParseFormat for an unrecognized format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the rendering.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatTable, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Report is what gets rendered.
type Report struct {
	RunID           string
	Anchor          string
	Policy          string
	FlowScope       string
	ClusteringScope string
	Series          series.Series
	Diagnostics     []diag.Diagnostic
}

// TableConfig sets the table column widths.
type TableConfig struct {
	DateWidth  int
	ValueWidth int
}

// DefaultTableConfig returns the widths used by NewReporter.
func DefaultTableConfig() TableConfig {
	return TableConfig{DateWidth: 10, ValueWidth: 14}
}

// Reporter writes reports in one format.
type Reporter struct {
	writer io.Writer
	format Format
	config TableConfig
}

// NewReporter creates a reporter; a nil writer means stdout.
func NewReporter(writer io.Writer, format Format) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}

	return &Reporter{writer: writer, format: format, config: DefaultTableConfig()}
}

// Handle renders rep.
func (r *Reporter) Handle(rep *Report) error {
	switch r.format {
	case FormatTable, "":
		return r.table(rep)
	case FormatCSV:
		return r.csv(rep)
	case FormatJSON:
		enc := json.NewEncoder(r.writer)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(rep))
	case FormatYAML:
		enc := yaml.NewEncoder(r.writer)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(rep)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
	}
}

func (r *Reporter) table(rep *Report) error {
	metrics := rep.Series.Metrics()
	width := r.config.ValueWidth
	for _, m := range metrics {
		if len(m) > width {
			width = len(m)
		}
	}

	funcMap := template.FuncMap{
		"separator": func() string {
			var b strings.Builder
			b.WriteString("+" + strings.Repeat("-", r.config.DateWidth+2))
			for range metrics {
				b.WriteString("+" + strings.Repeat("-", width+2))
			}
			return b.String() + "+"
		},
		"header": func() string {
			var b strings.Builder
			fmt.Fprintf(&b, "| %-*s ", r.config.DateWidth, "date")
			for _, m := range metrics {
				fmt.Fprintf(&b, "| %*s ", width, m)
			}
			return b.String() + "|"
		},
		"formatRow": func(rec series.Record) string {
			var b strings.Builder
			fmt.Fprintf(&b, "| %-*s ", r.config.DateWidth, rec.Date.Format("2006-01-02"))
			for _, m := range metrics {
				cell := ""
				if v, ok := rec.Metrics[m]; ok {
					cell = formatValue(v)
				}
				fmt.Fprintf(&b, "| %*s ", width, cell)
			}
			return b.String() + "|"
		},
	}

	tmpl := `Anchor: {{.Anchor}}  Policy: {{.Policy}}{{if .RunID}}  Run: {{.RunID}}{{end}}
{{separator}}
{{header}}
{{separator}}
{{range .Series}}{{formatRow .}}
{{end}}{{separator}}
{{if .Diagnostics}}Diagnostics: {{len .Diagnostics}}
{{range .Diagnostics}}- {{.Error}}
{{end}}{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, rep)
}

func (r *Reporter) csv(rep *Report) error {
	metrics := rep.Series.Metrics()
	w := csv.NewWriter(r.writer)
	if err := w.Write(append([]string{"date"}, metrics...)); err != nil {
		return err
	}
	row := make([]string, len(metrics)+1)
	for _, rec := range rep.Series {
		row[0] = rec.Date.Format("2006-01-02")
		for i, m := range metrics {
			row[i+1] = ""
			if v, ok := rec.Metrics[m]; ok {
				row[i+1] = strconv.FormatFloat(v, 'f', -1, 64)
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

// formatValue prints integral values without decimals and others with four.
func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	return strconv.FormatFloat(v, 'f', 4, 64)
}

type document struct {
	RunID           string          `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Anchor          string          `json:"anchor" yaml:"anchor"`
	Policy          string          `json:"policy" yaml:"policy"`
	FlowScope       string          `json:"flow_scope,omitempty" yaml:"flow_scope,omitempty"`
	ClusteringScope string          `json:"clustering_scope,omitempty" yaml:"clustering_scope,omitempty"`
	Series          []point         `json:"series" yaml:"series"`
	Diagnostics     []diagnosticDoc `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

type point struct {
	Date    string             `json:"date" yaml:"date"`
	Metrics map[string]float64 `json:"metrics" yaml:"metrics"`
}

type diagnosticDoc struct {
	Kind   string `json:"kind" yaml:"kind"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Date   string `json:"date,omitempty" yaml:"date,omitempty"`
	Edge   string `json:"edge,omitempty" yaml:"edge,omitempty"`
	Detail string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

func newDocument(rep *Report) document {
	doc := document{
		RunID:           rep.RunID,
		Anchor:          rep.Anchor,
		Policy:          rep.Policy,
		FlowScope:       rep.FlowScope,
		ClusteringScope: rep.ClusteringScope,
		Series:          make([]point, 0, len(rep.Series)),
	}
	for _, rec := range rep.Series {
		doc.Series = append(doc.Series, point{Date: rec.Date.Format("2006-01-02"), Metrics: rec.Metrics})
	}
	for _, d := range rep.Diagnostics {
		dd := diagnosticDoc{Kind: d.Kind.String(), Source: d.Source, Edge: d.Edge, Detail: d.Detail}
		if !d.Date.IsZero() {
			dd.Date = d.Date.Format("2006-01-02")
		}
		if d.Err != nil {
			dd.Error = d.Err.Error()
		}
		doc.Diagnostics = append(doc.Diagnostics, dd)
	}

	return doc
}

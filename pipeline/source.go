// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/katalvlaran/hubtrace/core"
	"github.com/katalvlaran/hubtrace/graphml"
)

// Source yields one dated snapshot.
type Source interface {
	// Name identifies the source in diagnostics and logs.
	Name() string

	// Date returns the calendar date of the snapshot.
	Date() (time.Time, error)

	// Load produces the snapshot, stamped with date.
	Load(date time.Time) (*core.Graph, error)
}

// FileSource is a GraphML file whose name ends with a date token.
type FileSource struct {
	Path string
}

// Name returns the base file name.
func (f FileSource) Name() string { return filepath.Base(f.Path) }

// Date parses the date token of the file name.
func (f FileSource) Date() (time.Time, error) { return graphml.DateFromName(f.Path) }

// Load reads the GraphML file.
func (f FileSource) Load(date time.Time) (*core.Graph, error) { return graphml.ReadFile(f.Path, date) }

// GraphSource wraps an in-memory snapshot.
type GraphSource struct {
	Label string
	Graph *core.Graph
}

// Name returns the label.
func (s GraphSource) Name() string { return s.Label }

// Date returns the snapshot date, ErrUndated when it has none.
func (s GraphSource) Date() (time.Time, error) {
	if s.Graph == nil || s.Graph.Date().IsZero() {
		return time.Time{}, ErrUndated
	}

	return s.Graph.Date(), nil
}

// Load returns the wrapped graph.
func (s GraphSource) Load(time.Time) (*core.Graph, error) {
	if s.Graph == nil {
		return nil, ErrNilGraph
	}

	return s.Graph, nil
}

// Discover lists the regular files of dir matching the glob pattern, sorted by name.
func Discover(dir, pattern string) ([]Source, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("pipeline: pattern %q: %w", pattern, err)
	}
	sort.Strings(matches)

	out := make([]Source, 0, len(matches))
	for _, m := range matches {
		if fi, err := os.Stat(m); err != nil || !fi.Mode().IsRegular() {
			continue
		}
		out = append(out, FileSource{Path: m})
	}

	return out, nil
}

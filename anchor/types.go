// SPDX-License-Identifier: MIT

package anchor

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/hubtrace/core"
)

// Sentinel errors for anchor matching and extraction.
var (
	// ErrEmptyRule is returned when a rule carries no usable value.
	ErrEmptyRule = errors.New("anchor: empty rule")

	// ErrUnknownMode is returned by ParseMode for an unrecognized mode name.
	ErrUnknownMode = errors.New("anchor: unknown rule mode")

	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("anchor: graph is nil")
)

// Mode selects how a Rule compares its values against a vertex.
type Mode int

const (
	// ModeSubstring matches when any value is a case-insensitive substring of the label or ID.
	ModeSubstring Mode = iota

	// ModeExact matches when any value equals the label or ID, ignoring case.
	ModeExact

	// ModeSet matches when the vertex ID is one of the values (case-sensitive).
	ModeSet
)

var modeNames = map[Mode]string{
	ModeSubstring: "substring",
	ModeExact:     "exact",
	ModeSet:       "set",
}

// String returns the configuration name of the mode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}

	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a configuration name into a Mode.
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == key {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Rule identifies the anchor entity. The zero Rule matches nothing.
type Rule struct {
	mode   Mode
	values []string            // lower-cased for substring/exact, verbatim for set
	ids    map[string]struct{} // set membership index
}

// Substring returns a rule matching vertices whose label or ID contains any
// of values, ignoring case. Empty values are dropped.
func Substring(values ...string) Rule {
	return Rule{mode: ModeSubstring, values: lowerAll(values)}
}

// Exact returns a rule matching vertices whose label or ID equals any of
// values, ignoring case. Empty values are dropped.
func Exact(values ...string) Rule {
	return Rule{mode: ModeExact, values: lowerAll(values)}
}

// Set returns a rule matching vertices whose ID is one of ids.
func Set(ids ...string) Rule {
	r := Rule{mode: ModeSet, ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := r.ids[id]; !dup {
			r.ids[id] = struct{}{}
			r.values = append(r.values, id)
		}
	}

	return r
}

// New builds a rule of the given mode.
func New(mode Mode, values ...string) (Rule, error) {
	var r Rule
	switch mode {
	case ModeSubstring:
		r = Substring(values...)
	case ModeExact:
		r = Exact(values...)
	case ModeSet:
		r = Set(values...)
	default:
		return Rule{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	return r, r.Validate()
}

// Validate reports ErrEmptyRule when the rule has no value to match.
func (r Rule) Validate() error {
	if len(r.values) == 0 {
		return ErrEmptyRule
	}

	return nil
}

// Mode returns the rule's matching mode.
func (r Rule) Mode() Mode { return r.mode }

// String renders the rule as mode:value1,value2.
func (r Rule) String() string {
	return r.mode.String() + ":" + strings.Join(r.values, ",")
}

// Match reports whether v belongs to the anchor entity.
func (r Rule) Match(v *core.Vertex) bool {
	if v.IsNil() {
		return false
	}
	switch r.mode {
	case ModeSet:
		_, ok := r.ids[v.ID]
		return ok
	case ModeExact:
		label, id := strings.ToLower(v.Label), strings.ToLower(v.ID)
		for _, val := range r.values {
			if label == val || id == val {
				return true
			}
		}
	case ModeSubstring:
		label, id := strings.ToLower(v.Label), strings.ToLower(v.ID)
		for _, val := range r.values {
			if strings.Contains(label, val) || strings.Contains(id, val) {
				return true
			}
		}
	}

	return false
}

// Anchors returns the IDs of all vertices of g matching r, sorted ascending.
func (r Rule) Anchors(g *core.Graph) []string {
	var out []string
	if r.mode == ModeSet {
		for _, id := range r.values {
			if g.HasVertex(id) {
				out = append(out, id)
			}
		}
		sort.Strings(out)

		return out
	}
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			continue
		}
		if r.Match(v) {
			out = append(out, id)
		}
	}

	return out
}

// Matcher returns a vertex-ID predicate for g, resolved once so edge scans
// do not re-run string matching per edge.
func (r Rule) Matcher(g *core.Graph) func(id string) bool {
	set := make(map[string]struct{})
	for _, id := range r.Anchors(g) {
		set[id] = struct{}{}
	}

	return func(id string) bool {
		_, ok := set[id]
		return ok
	}
}

// lowerAll lower-cases and sorts values, dropping empties and duplicates.
func lowerAll(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

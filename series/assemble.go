// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"sort"
	"time"

	"github.com/katalvlaran/hubtrace/core"
)

// Series is an ordered sequence of records, one per date, ascending.
type Series []Record

// Assemble merges records into a Series.
//
// Steps:
//  1. Reject empty input with ErrEmptySeries.
//  2. Check every metric against merges; fail with ErrUndeclaredMetric.
//  3. Group records by normalized date, keeping first-seen order per group.
//  4. Merge each metric of each group with its MergeFunc.
//  5. Sort groups by date (stable).
func Assemble(records []Record, merges map[string]MergeFunc) (Series, error) {
	if len(records) == 0 {
		return Series{}, ErrEmptySeries
	}
	for _, r := range records {
		for metric := range r.Metrics {
			if merges[metric] == nil {
				return Series{}, fmt.Errorf("%w: %q", ErrUndeclaredMetric, metric)
			}
		}
	}

	type group struct {
		date   time.Time
		values map[string][]float64
		order  []string
	}
	var (
		groups []*group
		byDate = make(map[time.Time]*group)
	)
	for _, r := range records {
		d := core.TruncateDay(r.Date)
		grp, ok := byDate[d]
		if !ok {
			grp = &group{date: d, values: make(map[string][]float64)}
			byDate[d] = grp
			groups = append(groups, grp)
		}
		for _, metric := range sortedKeys(r.Metrics) {
			if _, seen := grp.values[metric]; !seen {
				grp.order = append(grp.order, metric)
			}
			grp.values[metric] = append(grp.values[metric], r.Metrics[metric])
		}
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].date.Before(groups[j].date) })

	out := make(Series, 0, len(groups))
	for _, grp := range groups {
		rec := Record{Date: grp.date, Metrics: make(map[string]float64, len(grp.order))}
		for _, metric := range grp.order {
			rec.Metrics[metric] = merges[metric](grp.values[metric])
		}
		out = append(out, rec)
	}

	return out, nil
}

// Dates returns the record dates in series order.
func (s Series) Dates() []time.Time {
	out := make([]time.Time, len(s))
	for i, r := range s {
		out[i] = r.Date
	}

	return out
}

// Column returns the values of metric in series order; missing entries are 0.
func (s Series) Column(metric string) []float64 {
	out := make([]float64, len(s))
	for i, r := range s {
		out[i], _ = r.Value(metric)
	}

	return out
}

// Metrics returns the union of metric names across the series, sorted.
func (s Series) Metrics() []string {
	set := make(map[string]float64)
	for _, r := range s {
		for m := range r.Metrics {
			set[m] = 0
		}
	}

	return sortedKeys(set)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

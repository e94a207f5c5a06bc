// SPDX-License-Identifier: MIT

package series

import (
	"errors"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/hubtrace/core"
)

// Sentinel errors for series assembly.
var (
	// ErrEmptySeries is returned when Assemble receives no record.
	ErrEmptySeries = errors.New("series: no records")

	// ErrUndeclaredMetric is returned when a record carries a metric without a merge function.
	ErrUndeclaredMetric = errors.New("series: metric has no merge function")
)

// Metric names produced by the snapshot pipeline.
const (
	TotalAmount   = "total_amount"
	TotalIn       = "total_in"
	TotalOut      = "total_out"
	CountIn       = "count_in"
	CountOut      = "count_out"
	AverageIn     = "average_in"
	AverageOut    = "average_out"
	AvgClustering = "avg_clustering"
	NodeCount     = "node_count"
	EdgeCount     = "edge_count"
)

// Record is the result of one snapshot: a date and its scalar metrics.
type Record struct {
	Date    time.Time          `json:"date" yaml:"date"`
	Metrics map[string]float64 `json:"metrics" yaml:"metrics"`
}

// NewRecord returns a record stamped with the calendar day of date.
func NewRecord(date time.Time, metrics map[string]float64) Record {
	if metrics == nil {
		metrics = make(map[string]float64)
	}

	return Record{Date: core.TruncateDay(date), Metrics: metrics}
}

// Value returns the metric and whether it is present.
func (r Record) Value(metric string) (float64, bool) {
	v, ok := r.Metrics[metric]
	return v, ok
}

// MergeFunc combines the values of one metric sharing a date. values is never empty.
type MergeFunc func(values []float64) float64

// Sum adds the values.
func Sum(values []float64) float64 { return floats.Sum(values) }

// Mean returns the arithmetic mean of the values.
func Mean(values []float64) float64 { return stat.Mean(values, nil) }

// DefaultMerges returns the merge declaration for the pipeline's metrics:
// sum for totals and counts, mean for averages, clustering and graph sizes.
func DefaultMerges() map[string]MergeFunc {
	return map[string]MergeFunc{
		TotalAmount:   Sum,
		TotalIn:       Sum,
		TotalOut:      Sum,
		CountIn:       Sum,
		CountOut:      Sum,
		AverageIn:     Mean,
		AverageOut:    Mean,
		AvgClustering: Mean,
		NodeCount:     Mean,
		EdgeCount:     Mean,
	}
}

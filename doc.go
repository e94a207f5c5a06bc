// SPDX-License-Identifier: MIT

// Package hubtrace tracks the activity of one anchor entity (an exchange, a
// mixer, any named hub) across a series of daily transaction-graph snapshots.
//
// For every snapshot it isolates the edges touching the anchor, sums inbound
// and outbound flow under a chosen counting policy, measures the average
// clustering coefficient, and assembles the per-day results into a time
// series with declared merge rules for repeated dates.
//
// Layout:
//
//	core/       dated directed multigraph: vertices with labels, ordered edges
//	anchor/     anchor rules (substring, exact, set) and subgraph extraction
//	flow/       direction classification, raw / unique_pairs aggregation
//	clustering/ local and average clustering coefficient
//	series/     records, merge functions, date-ordered assembly
//	diag/       structured diagnostics for contained failures
//	graphml/    GraphML reader/writer, date token from file names
//	pipeline/   per-snapshot analysis, directory runs, parallel workers
//	store/      SQLite persistence of assembled series
//	report/     table, CSV, JSON and YAML rendering
//	config/     file, environment and default settings
//	cli/        command tree used by cmd/hubtrace
//
// Typical library use:
//
//	sources, _ := pipeline.Discover("daily", "*.graphml")
//	runner, _ := pipeline.NewRunner(pipeline.DefaultOptions(anchor.Substring("garantex")))
//	out, err := runner.Run(ctx, sources)
//	if errors.Is(err, pipeline.ErrNoData) {
//		// nothing parseable in the directory
//	}
//	fmt.Println(out.Series.Column(series.TotalIn))
package hubtrace

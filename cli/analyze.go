// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hubtrace/pipeline"
	"github.com/katalvlaran/hubtrace/report"
	"github.com/katalvlaran/hubtrace/store"
)

func (a *app) analyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Compute the anchor time series over a directory of snapshots",
		Args:  cobra.NoArgs,
		RunE:  a.runAnalyze,
	}
	f := cmd.Flags()
	f.StringP("input", "i", ".", "Directory holding the daily snapshots")
	f.String("pattern", "*.graphml", "File name glob inside the input directory")
	f.StringSliceP("anchor", "a", nil, "Anchor values (labels, substrings or IDs depending on --mode)")
	f.String("mode", "substring", "Anchor matching mode: substring, exact, set")
	f.String("policy", "raw", "Counting policy: raw, unique_pairs")
	f.String("flow-scope", "subgraph", "Graph used for flow metrics: subgraph, snapshot")
	f.String("clustering-scope", "snapshot", "Graph used for clustering: subgraph, snapshot")
	f.IntP("workers", "w", 1, "Snapshots analyzed concurrently")
	f.StringP("format", "f", "table", "Output format: table, csv, json, yaml")
	f.String("sqlite", "", "Also save the series to this SQLite database")

	return cmd
}

func (a *app) runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, ctx, logger, runID, err := a.load(cmd, map[string]string{
		"input":            "input.dir",
		"pattern":          "input.pattern",
		"anchor":           "anchor.values",
		"mode":             "anchor.mode",
		"policy":           "flow.policy",
		"flow-scope":       "flow.scope",
		"clustering-scope": "clustering.scope",
		"workers":          "workers",
		"format":           "output.format",
		"sqlite":           "output.sqlite",
	})
	if err != nil {
		return err
	}

	opts, err := cfg.PipelineOptions()
	if err != nil {
		return err
	}
	sources, err := pipeline.Discover(cfg.Input.Dir, cfg.Input.Pattern)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}
	logger.Info().
		Str("input", cfg.Input.Dir).
		Int("snapshots", len(sources)).
		Str("anchor", opts.Rule.String()).
		Str("policy", opts.Policy.String()).
		Msg("analysis started")

	runner, err := pipeline.NewRunner(opts)
	if err != nil {
		return err
	}
	started := time.Now()
	out, err := runner.Run(ctx, sources)
	if out != nil {
		logDiagnostics(logger, out.Diagnostics)
	}
	if errors.Is(err, pipeline.ErrNoData) {
		logger.Error().Int("snapshots", len(sources)).Msg("no snapshot produced a result")
		return err
	}
	if err != nil {
		return err
	}

	rep := &report.Report{
		RunID:           runID,
		Anchor:          opts.Rule.String(),
		Policy:          opts.Policy.String(),
		FlowScope:       opts.FlowScope.String(),
		ClusteringScope: opts.ClusteringScope.String(),
		Series:          out.Series,
		Diagnostics:     out.Diagnostics,
	}
	if err = report.NewReporter(cmd.OutOrStdout(), cfg.Format()).Handle(rep); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if cfg.Output.SQLite != "" {
		db, err := store.Open(ctx, cfg.Output.SQLite)
		if err != nil {
			return err
		}
		defer db.Close()
		run := store.Run{
			ID:          runID,
			CreatedAt:   started,
			Anchor:      rep.Anchor,
			Policy:      rep.Policy,
			Sources:     len(sources),
			Diagnostics: len(out.Diagnostics),
		}
		if err = db.Save(ctx, run, out.Series); err != nil {
			return err
		}
		logger.Info().Str("path", db.Path()).Msg("series saved")
	}

	logger.Info().
		Int("dates", len(out.Series)).
		Int("diagnostics", len(out.Diagnostics)).
		Dur("elapsed", time.Since(started)).
		Msg("analysis finished")

	return nil
}

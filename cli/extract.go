// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hubtrace/pipeline"
)

func (a *app) extractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Write the anchor subgraph of every snapshot as GraphML",
		Args:  cobra.NoArgs,
		RunE:  a.runExtract,
	}
	f := cmd.Flags()
	f.StringP("input", "i", ".", "Directory holding the daily snapshots")
	f.String("pattern", "*.graphml", "File name glob inside the input directory")
	f.StringP("output", "o", "subgraphs", "Directory receiving the subgraphs")
	f.StringSliceP("anchor", "a", nil, "Anchor values (labels, substrings or IDs depending on --mode)")
	f.String("mode", "substring", "Anchor matching mode: substring, exact, set")
	f.String("prefix", pipeline.DefaultPrefix, "File name prefix of the written subgraphs")

	return cmd
}

func (a *app) runExtract(cmd *cobra.Command, _ []string) error {
	cfg, ctx, logger, _, err := a.load(cmd, map[string]string{
		"input":   "input.dir",
		"pattern": "input.pattern",
		"output":  "extract.dir",
		"anchor":  "anchor.values",
		"mode":    "anchor.mode",
		"prefix":  "extract.prefix",
	})
	if err != nil {
		return err
	}

	rule, err := cfg.Rule()
	if err != nil {
		return err
	}
	sources, err := pipeline.Discover(cfg.Input.Dir, cfg.Input.Pattern)
	if err != nil {
		return fmt.Errorf("failed to list snapshots: %w", err)
	}

	out, err := pipeline.ExtractAll(ctx, sources, rule, cfg.Extract.Dir, cfg.Extract.Prefix)
	if err != nil {
		return err
	}
	logDiagnostics(logger, out.Diagnostics)
	logger.Info().
		Int("snapshots", len(sources)).
		Int("written", len(out.Written)).
		Str("output", cfg.Extract.Dir).
		Msg("extraction finished")
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d of %d subgraphs to %s\n", len(out.Written), len(sources), cfg.Extract.Dir)

	return err
}

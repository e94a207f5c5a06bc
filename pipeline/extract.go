// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hubtrace/anchor"
	"github.com/katalvlaran/hubtrace/diag"
	"github.com/katalvlaran/hubtrace/graphml"
)

// DefaultPrefix names extracted subgraph files when no prefix is configured.
const DefaultPrefix = "anchor_subgraph"

// ExtractOutcome lists the written files and the diagnostics of an extraction.
type ExtractOutcome struct {
	Written     []string
	Diagnostics []diag.Diagnostic
}

// ExtractAll writes the anchor subgraph of every source to outDir as GraphML,
// named "<prefix>_<source name>".
//
// The date token is optional here: a source whose name carries none is still
// extracted, undated. Sources without an anchor match are skipped with an
// AnchorNotFound diagnostic; unreadable ones with SnapshotUnreadable. Only
// output failures (creating outDir, writing a file) and cancellation abort.
func ExtractAll(ctx context.Context, sources []Source, rule anchor.Rule, outDir, prefix string) (*ExtractOutcome, error) {
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("pipeline: output dir: %w", err)
	}

	out := &ExtractOutcome{}
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		log := zerolog.Ctx(ctx).With().Str("source", src.Name()).Logger()

		date, err := src.Date()
		if err != nil {
			date = time.Time{}
		}
		g, err := src.Load(date)
		if err != nil {
			out.Diagnostics = append(out.Diagnostics, diag.Diagnostic{
				Kind: diag.SnapshotUnreadable, Source: src.Name(), Date: date, Err: err,
			})
			continue
		}
		sub, err := anchor.Extract(g, rule)
		if err != nil {
			return nil, err
		}
		if !sub.Found {
			out.Diagnostics = append(out.Diagnostics, diag.Diagnostic{
				Kind: diag.AnchorNotFound, Source: src.Name(), Date: date, Detail: rule.String(),
			})
			continue
		}

		path := filepath.Join(outDir, prefix+"_"+src.Name())
		if err = graphml.WriteFile(path, sub.Graph); err != nil {
			return nil, fmt.Errorf("pipeline: write %s: %w", path, err)
		}
		out.Written = append(out.Written, path)
		log.Debug().
			Str("output", path).
			Int("nodes", sub.Graph.VertexCount()).
			Int("edges", sub.Graph.EdgeCount()).
			Msg("subgraph written")
	}

	return out, nil
}

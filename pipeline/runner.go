// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hubtrace/diag"
	"github.com/katalvlaran/hubtrace/series"
)

// Runner analyzes a set of sources and assembles the series.
type Runner struct {
	opts Options
}

// NewRunner validates opts and returns a Runner.
func NewRunner(opts Options) (*Runner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Runner{opts: opts}, nil
}

// slot holds the outcome of one source; res is nil when the source was skipped.
type slot struct {
	res   *Result
	diags []diag.Diagnostic
}

// Run processes every source and assembles the surviving records.
//
// Results and diagnostics are reported in source order regardless of Workers.
// A cancelled context stops scheduling further sources and is returned as the
// error. When no source yields a record the Outcome holds an empty series,
// an EmptySeries diagnostic, and Run returns ErrNoData.
func (r *Runner) Run(ctx context.Context, sources []Source) (*Outcome, error) {
	slots := make([]slot, len(sources))

	if r.opts.Workers <= 1 {
		for i, src := range sources {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			slots[i] = r.process(ctx, src)
		}
	} else {
		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(r.opts.Workers)
		for i, src := range sources {
			i, src := i, src
			g.Go(func() error {
				select {
				case <-gCtx.Done():
					return gCtx.Err()
				default:
					slots[i] = r.process(gCtx, src)
					return nil
				}
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	collector := diag.NewCollector()
	out := &Outcome{}
	records := make([]series.Record, 0, len(slots))
	for _, s := range slots {
		collector.Add(s.diags...)
		if s.res != nil {
			out.Results = append(out.Results, *s.res)
			records = append(records, s.res.Record)
		}
	}

	var err error
	out.Series, err = series.Assemble(records, r.opts.merges())
	if len(records) == 0 {
		collector.Add(diag.Diagnostic{Kind: diag.EmptySeries, Err: err})
		out.Diagnostics = collector.List()
		zerolog.Ctx(ctx).Debug().Int("sources", len(sources)).Msg("no snapshot produced a record")
		return out, ErrNoData
	}
	out.Diagnostics = collector.List()
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Int("sources", len(sources)).
		Int("records", len(records)).
		Int("dates", len(out.Series)).
		Int("diagnostics", len(out.Diagnostics)).
		Msg("series assembled")

	return out, nil
}

// process runs one source through date resolution, loading and Analyze.
func (r *Runner) process(ctx context.Context, src Source) slot {
	log := zerolog.Ctx(ctx).With().Str("source", src.Name()).Logger()

	date, err := src.Date()
	if err != nil {
		log.Debug().Err(err).Msg("snapshot skipped: date")
		return slot{diags: []diag.Diagnostic{{Kind: diag.SnapshotDateUnparseable, Source: src.Name(), Err: err}}}
	}
	g, err := src.Load(date)
	if err != nil {
		log.Debug().Err(err).Msg("snapshot skipped: unreadable")
		return slot{diags: []diag.Diagnostic{{Kind: diag.SnapshotUnreadable, Source: src.Name(), Date: date, Err: err}}}
	}

	res, err := Analyze(g, r.opts)
	if err != nil {
		return slot{diags: []diag.Diagnostic{{Kind: diag.SnapshotUnreadable, Source: src.Name(), Date: date, Err: err}}}
	}
	res.Source = src.Name()
	for i := range res.Diagnostics {
		res.Diagnostics[i].Source = src.Name()
	}

	st := g.Stats()
	log.Debug().
		Time("date", date).
		Bool("anchor_found", res.AnchorFound).
		Int("edges", st.EdgeCount).
		Int("parallel_edges", st.ParallelEdgeCount).
		Int("loops", st.LoopCount).
		Str("policy", r.opts.Policy.String()).
		Float64("total_in", res.Totals.TotalIn).
		Float64("total_out", res.Totals.TotalOut).
		Msg("snapshot analyzed")

	return slot{res: &res, diags: res.Diagnostics}
}

// SPDX-License-Identifier: MIT

// Package cli wires configuration, logging and the pipeline into the
// hubtrace command tree.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hubtrace/config"
	"github.com/katalvlaran/hubtrace/diag"
	"github.com/katalvlaran/hubtrace/store"
)

type app struct {
	v       *viper.Viper
	cfgPath string
}

// NewRootCommand builds the hubtrace command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "hubtrace",
		Short: "Track the flows of an anchor entity across daily transaction snapshots",
		Long: `hubtrace reads one GraphML transaction snapshot per day, isolates the edges
touching an anchor entity (an exchange, a service, ...), and reports inbound
and outbound flow totals, averages and clustering as a daily time series.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().Bool("log-pretty", false, "Human-friendly console logs")

	root.AddCommand(a.analyzeCommand(), a.extractCommand())

	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// load binds the flags of cmd (flag name → config key), reads the
// configuration and prepares a context carrying a run-scoped logger.
func (a *app) load(cmd *cobra.Command, binds map[string]string) (*config.Config, context.Context, zerolog.Logger, string, error) {
	binds["log-level"] = "log.level"
	binds["log-pretty"] = "log.pretty"
	for flag, key := range binds {
		if err := a.v.BindPFlag(key, cmd.Flag(flag)); err != nil {
			return nil, nil, zerolog.Nop(), "", fmt.Errorf("bind --%s: %w", flag, err)
		}
	}

	cfg, err := config.LoadWith(a.v, a.cfgPath)
	if err != nil {
		return nil, nil, zerolog.Nop(), "", err
	}

	runID := store.NewRunID()
	logger := newLogger(cmd.ErrOrStderr(), cfg).With().Str("run_id", runID).Logger()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return cfg, logger.WithContext(ctx), logger, runID, nil
}

func newLogger(w io.Writer, cfg *config.Config) zerolog.Logger {
	if cfg.Log.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}

	return zerolog.New(w).With().Timestamp().Logger().Level(cfg.Level())
}

// logDiagnostics reports contained failures at warn level.
func logDiagnostics(logger zerolog.Logger, ds []diag.Diagnostic) {
	for _, d := range ds {
		ev := logger.Warn().Str("kind", d.Kind.String())
		if d.Source != "" {
			ev = ev.Str("source", d.Source)
		}
		if !d.Date.IsZero() {
			ev = ev.Str("date", d.Date.Format("2006-01-02"))
		}
		if d.Edge != "" {
			ev = ev.Str("edge", d.Edge)
		}
		if d.Detail != "" {
			ev = ev.Str("detail", d.Detail)
		}
		ev.Err(d.Err).Msg("snapshot diagnostic")
	}
}

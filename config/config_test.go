// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hubtrace/anchor"
	"github.com/katalvlaran/hubtrace/config"
	"github.com/katalvlaran/hubtrace/flow"
	"github.com/katalvlaran/hubtrace/pipeline"
	"github.com/katalvlaran/hubtrace/report"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hubtrace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
input:
  dir: /data/daily
anchor:
  mode: exact
  values: [Garantex, "garantex hot"]
flow:
  policy: unique_pairs
  scope: snapshot
workers: 4
output:
  format: yaml
  sqlite: out/runs.db
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/daily", cfg.Input.Dir)
	assert.Equal(t, "*.graphml", cfg.Input.Pattern, "default kept")
	assert.Equal(t, "out/runs.db", cfg.Output.SQLite)
	assert.Equal(t, report.FormatYAML, cfg.Format())
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())

	opts, err := cfg.PipelineOptions()
	require.NoError(t, err)
	assert.Equal(t, flow.UniquePairs, opts.Policy)
	assert.Equal(t, pipeline.ScopeSnapshot, opts.FlowScope)
	assert.Equal(t, pipeline.ScopeSnapshot, opts.ClusteringScope)
	assert.Equal(t, 4, opts.Workers)
	assert.Equal(t, anchor.ModeExact, opts.Rule.Mode())
	assert.Equal(t, "exact:garantex,garantex hot", opts.Rule.String())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("HUBTRACE_ANCHOR_VALUES", "binance,garantex")
	t.Setenv("HUBTRACE_FLOW_POLICY", "unique-pairs")
	t.Setenv("HUBTRACE_WORKERS", "3")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"binance", "garantex"}, cfg.Anchor.Values)
	assert.Equal(t, 3, cfg.Workers)

	opts, err := cfg.PipelineOptions()
	require.NoError(t, err)
	assert.Equal(t, flow.UniquePairs, opts.Policy)
	assert.Equal(t, pipeline.ScopeSubgraph, opts.FlowScope, "default")
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"no anchor":   "anchor: {values: []}\n",
		"bad mode":    "anchor: {mode: regex, values: [x]}\n",
		"bad policy":  "anchor: {values: [x]}\nflow: {policy: median}\n",
		"bad scope":   "anchor: {values: [x]}\nclustering: {scope: world}\n",
		"bad workers": "anchor: {values: [x]}\nworkers: -2\n",
		"bad format":  "anchor: {values: [x]}\noutput: {format: xml}\n",
		"bad level":   "anchor: {values: [x]}\nlog: {level: loud}\n",
		"empty glob":  "anchor: {values: [x]}\ninput: {pattern: \"\"}\n",
	}
	for name, body := range cases {
		_, err := config.Load(writeFile(t, body))
		assert.ErrorIs(t, err, config.ErrInvalid, name)
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalid)
}

func TestLoadWithOverrides(t *testing.T) {
	v := config.NewViper()
	v.Set("anchor.values", []string{"exchange"})
	v.Set("output.format", "csv")

	cfg, err := config.LoadWith(v, "")
	require.NoError(t, err)
	assert.Equal(t, report.FormatCSV, cfg.Format())
	assert.Equal(t, pipeline.DefaultPrefix, cfg.Extract.Prefix)
}

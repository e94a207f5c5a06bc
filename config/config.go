// SPDX-License-Identifier: MIT

// Package config loads hubtrace settings from an optional YAML file,
// HUBTRACE_* environment variables and defaults, in that order of precedence
// below command-line flags bound by the caller.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hubtrace/anchor"
	"github.com/katalvlaran/hubtrace/flow"
	"github.com/katalvlaran/hubtrace/pipeline"
	"github.com/katalvlaran/hubtrace/report"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// EnvPrefix prefixes environment overrides: anchor.values ⇒ HUBTRACE_ANCHOR_VALUES.
const EnvPrefix = "HUBTRACE"

// Config is the full application configuration.
type Config struct {
	Input      InputConfig      `mapstructure:"input"`
	Anchor     AnchorConfig     `mapstructure:"anchor"`
	Flow       FlowConfig       `mapstructure:"flow"`
	Clustering ClusteringConfig `mapstructure:"clustering"`
	Workers    int              `mapstructure:"workers"`
	Output     OutputConfig     `mapstructure:"output"`
	Extract    ExtractConfig    `mapstructure:"extract"`
	Log        LogConfig        `mapstructure:"log"`
}

type InputConfig struct {
	Dir     string `mapstructure:"dir"`
	Pattern string `mapstructure:"pattern"`
}

type AnchorConfig struct {
	Mode   string   `mapstructure:"mode"`
	Values []string `mapstructure:"values"`
}

type FlowConfig struct {
	Policy string `mapstructure:"policy"`
	Scope  string `mapstructure:"scope"`
}

type ClusteringConfig struct {
	Scope string `mapstructure:"scope"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
	SQLite string `mapstructure:"sqlite"`
}

type ExtractConfig struct {
	Dir    string `mapstructure:"dir"`
	Prefix string `mapstructure:"prefix"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

var defaults = map[string]any{
	"input.dir":        ".",
	"input.pattern":    "*.graphml",
	"anchor.mode":      "substring",
	"anchor.values":    []string{},
	"flow.policy":      "raw",
	"flow.scope":       "subgraph",
	"clustering.scope": "snapshot",
	"workers":          1,
	"output.format":    "table",
	"output.sqlite":    "",
	"extract.dir":      "subgraphs",
	"extract.prefix":   pipeline.DefaultPrefix,
	"log.level":        "info",
	"log.pretty":       false,
}

// NewViper returns a viper instance with defaults and environment binding.
// Callers may bind command-line flags to it before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads path (optional) on top of defaults and environment.
func Load(path string) (*Config, error) {
	return LoadWith(NewViper(), path)
}

// LoadWith reads path (optional) into v, unmarshals and validates.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	if _, err := c.Rule(); err != nil {
		return fmt.Errorf("%w: anchor: %w", ErrInvalid, err)
	}
	if _, err := c.PipelineOptions(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	if c.Input.Pattern == "" {
		return fmt.Errorf("%w: input.pattern is empty", ErrInvalid)
	}

	return nil
}

// Rule builds the anchor rule.
func (c *Config) Rule() (anchor.Rule, error) {
	mode, err := anchor.ParseMode(c.Anchor.Mode)
	if err != nil {
		return anchor.Rule{}, err
	}

	return anchor.New(mode, c.Anchor.Values...)
}

// PipelineOptions converts the analysis settings.
func (c *Config) PipelineOptions() (pipeline.Options, error) {
	rule, err := c.Rule()
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.DefaultOptions(rule)
	if opts.Policy, err = flow.ParsePolicy(c.Flow.Policy); err != nil {
		return pipeline.Options{}, err
	}
	if opts.FlowScope, err = pipeline.ParseScope(c.Flow.Scope); err != nil {
		return pipeline.Options{}, fmt.Errorf("flow.scope: %w", err)
	}
	if opts.ClusteringScope, err = pipeline.ParseScope(c.Clustering.Scope); err != nil {
		return pipeline.Options{}, fmt.Errorf("clustering.scope: %w", err)
	}
	if c.Workers < 0 {
		return pipeline.Options{}, fmt.Errorf("workers must be >= 0, got %d", c.Workers)
	}
	opts.Workers = c.Workers

	return opts, nil
}

// Format returns the validated output format.
func (c *Config) Format() report.Format {
	f, err := report.ParseFormat(c.Output.Format)
	if err != nil {
		return report.FormatTable
	}

	return f
}

// Level returns the validated log level.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

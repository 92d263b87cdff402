// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpath/matrix"
	"github.com/katalvlaran/lvpath/query"
)

// Config is the query configuration shared by every sub-command. It is
// read from the --config YAML file; explicitly set flags override it.
type Config struct {
	Graph       string        `yaml:"graph"`
	Start       []string      `yaml:"start"`
	Final       []string      `yaml:"final"`
	Format      string        `yaml:"format" validate:"omitempty,oneof=dense sparse"`
	Parallelism int           `yaml:"parallelism" validate:"gte=0,lte=1024"`
	MaxRounds   int           `yaml:"max_rounds" validate:"gte=0"`
	Timeout     time.Duration `yaml:"timeout" validate:"gte=0"`
	LogLevel    string        `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Telemetry   string        `yaml:"telemetry" validate:"omitempty,oneof=none stdout"`
}

var configValidate = validator.New()

func defaultConfig() Config {
	return Config{
		Format:      matrix.DefaultFormat.String(),
		Parallelism: query.DefaultParallelism,
		MaxRounds:   query.DefaultMaxRounds,
		LogLevel:    "warn",
		Telemetry:   telemetryNone,
	}
}

// loadConfig reads path (if non-empty) over the defaults and validates the result.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, pkgerrors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, pkgerrors.Wrapf(err, "parse config %s", path)
		}
	}

	return cfg, nil
}

// applyFlags copies every explicitly set query flag into cfg and validates it.
func (c *Config) applyFlags(fs *pflag.FlagSet, f *queryFlags) error {
	if fs.Changed("graph") {
		c.Graph = f.graph
	}
	if fs.Changed("start") {
		c.Start = f.start
	}
	if fs.Changed("final") {
		c.Final = f.final
	}
	if fs.Changed("format") {
		c.Format = f.format
	}
	if fs.Changed("parallelism") {
		c.Parallelism = f.parallelism
	}
	if fs.Changed("max-rounds") {
		c.MaxRounds = f.maxRounds
	}
	if fs.Changed("timeout") {
		c.Timeout = f.timeout
	}
	if fs.Changed("log-level") {
		c.LogLevel = f.logLevel
	}
	if fs.Changed("telemetry") {
		c.Telemetry = f.telemetry
	}

	return pkgerrors.Wrap(configValidate.Struct(c), "invalid configuration")
}

// queryOptions turns a validated Config into query options.
func (c *Config) queryOptions(logger *slog.Logger) ([]query.Option, error) {
	format, err := matrix.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}

	return []query.Option{
		query.WithStartNodes(c.Start...),
		query.WithFinalNodes(c.Final...),
		query.WithFormat(format),
		query.WithParallelism(c.Parallelism),
		query.WithMaxRounds(c.MaxRounds),
		query.WithLogger(logger),
	}, nil
}

func (c *Config) logLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}

	return l
}

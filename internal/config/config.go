// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The modern-go-template Authors

package config

import "github.com/spf13/pflag"

// Default values applied after all sources have been merged.
const (
	DefaultLogLevel      = "info"
	DefaultReportFormat  = "text"
	DefaultReportVariant = "both"
)

// StructuredConfig is the top-level configuration container for the
// project binary.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
//   - json/toml - keys used in the config file.
type StructuredConfig struct {
	// Log holds diagnostic logging settings.
	Log Log `envPrefix:"LOG_" json:"log" toml:"log"`

	// Report controls how the build information report is produced.
	Report Report `envPrefix:"REPORT_" json:"report" toml:"report"`

	// ConfigFilePath is the optional path to a JSON or TOML config file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	ConfigFilePath string `env:"CONFIG" json:"-" toml:"-"`
}

// Log holds logger settings.
type Log struct {
	// Level is the minimum level written to stderr
	// ("debug", "info", "warn", "error").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" json:"level" toml:"level"`
}

// Report holds settings for the build information report.
type Report struct {
	// Format is one of "text", "json", "table", "styled".
	// Env: REPORT_FORMAT
	Format string `env:"FORMAT" json:"format" toml:"format"`

	// Variant is one of "library", "binary", "both".
	// Env: REPORT_VARIANT
	Variant string `env:"VARIANT" json:"variant" toml:"variant"`

	// Output is the file the report is written to. Empty means stdout.
	// Env: REPORT_OUTPUT
	Output string `env:"OUTPUT" json:"output" toml:"output"`

	// Interactive opens the terminal viewer instead of printing.
	// Env: REPORT_INTERACTIVE
	Interactive bool `env:"INTERACTIVE" json:"interactive" toml:"interactive"`
}

// Load loads, merges, and validates the configuration. Flags are read from
// fs, which must already be parsed and must carry the flags registered by
// [BindFlags].
func Load(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(fs).
		withFile().
		build()
}

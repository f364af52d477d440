package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [BindFlags].
const (
	FlagConfig      = "config"
	FlagLogLevel    = "log-level"
	FlagFormat      = "format"
	FlagVariant     = "variant"
	FlagOutput      = "output"
	FlagInteractive = "interactive"
)

// BindFlags registers all configuration flags on fs.
//
// Flags:
//
//	-c/--config json or toml file path with configs
//	--log-level log level (debug, info, warn, error)
//	--format report format (text, json, table, styled)
//	--variant report variant (library, binary, both)
//	-o/--output file to write the report to instead of stdout
//	-i/--interactive open the interactive viewer
func BindFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagConfig, "c", "", "JSON or TOML config file path")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagFormat, "", "Report format (text, json, table, styled)")
	fs.String(FlagVariant, "", "Report variant (library, binary, both)")
	fs.StringP(FlagOutput, "o", "", "Write the report to this file instead of stdout")
	fs.BoolP(FlagInteractive, "i", false, "Open the interactive build information viewer")
}

// flagValues holds the flags that were explicitly set on the command line.
type flagValues struct {
	cfg     *StructuredConfig
	changed map[string]bool
}

// parseFlags reads the flags registered by [BindFlags] that were set on an
// already parsed fs. Unset flags are left out so they never override other
// sources.
func parseFlags(fs *pflag.FlagSet) (*flagValues, error) {
	values := &flagValues{cfg: &StructuredConfig{}, changed: map[string]bool{}}
	if fs == nil {
		return values, nil
	}

	var err error
	for name, dst := range values.cfg.stringFlags() {
		if *dst, err = fs.GetString(name); err != nil {
			return nil, fmt.Errorf("error reading flag %q: %w", name, err)
		}
		values.changed[name] = fs.Changed(name)
	}

	if values.cfg.Report.Interactive, err = fs.GetBool(FlagInteractive); err != nil {
		return nil, fmt.Errorf("error reading flag %q: %w", FlagInteractive, err)
	}
	values.changed[FlagInteractive] = fs.Changed(FlagInteractive)

	return values, nil
}

// apply copies every explicitly set flag into cfg, zero values included.
func (v *flagValues) apply(cfg *StructuredConfig) {
	dst := cfg.stringFlags()
	for name, src := range v.cfg.stringFlags() {
		if v.changed[name] {
			*dst[name] = *src
		}
	}
	if v.changed[FlagInteractive] {
		cfg.Report.Interactive = v.cfg.Report.Interactive
	}
}

func (cfg *StructuredConfig) stringFlags() map[string]*string {
	return map[string]*string{
		FlagConfig:   &cfg.ConfigFilePath,
		FlagLogLevel: &cfg.Log.Level,
		FlagFormat:   &cfg.Report.Format,
		FlagVariant:  &cfg.Report.Variant,
		FlagOutput:   &cfg.Report.Output,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The modern-go-template Authors

package config

import (
	"fmt"

	"github.com/DehanLUO/modern-go-template/internal/logger"
	"github.com/DehanLUO/modern-go-template/internal/report"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Report.Format == "" {
		cfg.Report.Format = DefaultReportFormat
	}
	if cfg.Report.Variant == "" {
		cfg.Report.Variant = DefaultReportVariant
	}
}

// validate checks the merged [StructuredConfig] and normalises the report
// format and variant to their canonical lower-case spelling.
func (cfg *StructuredConfig) validate() error {
	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidReportConfigs, err)
	}
	variant, err := report.ParseVariant(cfg.Report.Variant)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidReportConfigs, err)
	}

	cfg.Report.Format = string(format)
	cfg.Report.Variant = string(variant)
	return nil
}

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when settings
// are incomplete or invalid.
var (
	// ErrInvalidReportConfigs indicates an unknown report format or variant.
	ErrInvalidReportConfigs = errors.New("invalid report configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)

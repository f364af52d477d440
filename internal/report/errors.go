package report

import "errors"

var (
	// ErrUnknownFormat is returned by [Render] for a format it does not know.
	ErrUnknownFormat = errors.New("unknown report format")
	// ErrUnknownVariant is returned by [Render] for a variant it does not know.
	ErrUnknownVariant = errors.New("unknown report variant")
)

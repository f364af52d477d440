// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The modern-go-template Authors

// Package app contains the user-facing message strings shared by the
// command line and the interactive viewer.
//
// Msg* constants are written to the terminal or into log entries to describe
// the outcome of an operation, so the wording stays the same everywhere.
package app

const (
	// MsgCopied is shown after the report was placed on the clipboard.
	MsgCopied = "copied to clipboard"

	// MsgCopyFailed prefixes the error returned by the clipboard.
	MsgCopyFailed = "copy failed"

	// MsgReportFailed prefixes the error returned while rendering a report.
	MsgReportFailed = "report failed"

	// MsgCommandFailed prefixes the error printed when the binary exits with
	// a non-zero status.
	MsgCommandFailed = "error"
)

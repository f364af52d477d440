// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The modern-go-template Authors

package tui

import "errors"

var errNoBuildInfoService = errors.New("build info service is not provided")

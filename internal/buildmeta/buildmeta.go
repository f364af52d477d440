// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The modern-go-template Authors

// Package buildmeta assembles the [models.BuildMetadata] record embedded in
// the binary.
//
// String values are injected at link time, typically through the Makefile:
//
//	go build -ldflags "-X main.buildVersion=v1.2.3 -X main.gitCommitHash=abcdef0"
//
// Target platform and compiler come from toolchain constants. When the link
// time revision is missing, the VCS stamp embedded by `go build` is used.
package buildmeta

import (
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/Masterminds/semver"

	"github.com/DehanLUO/modern-go-template/models"
)

// shortHashLen is the length of the abbreviated commit hash.
const shortHashLen = 7

// Vars holds the raw link-time strings. Any of them may be empty.
type Vars struct {
	Version        string
	BuildType      string
	BuildTimestamp string
	BuildUser      string
	BuildHost      string
	HostSystem     string
	GitDescribe    string
	GitCommitHash  string
}

// Collect builds the immutable metadata record for the running binary.
func Collect(vars Vars) models.BuildMetadata {
	return collect(vars, debug.ReadBuildInfo)
}

func collect(vars Vars, readBuildInfo func() (*debug.BuildInfo, bool)) models.BuildMetadata {
	info, ok := readBuildInfo()
	if !ok {
		info = nil
	}

	commit := strings.TrimSpace(vars.GitCommitHash)
	describe := strings.TrimSpace(vars.GitDescribe)
	if rev, modified := vcsRevision(info); rev != "" {
		if commit == "" {
			commit = rev
		}
		if describe == "" {
			describe = rev
			if modified {
				describe += "-dirty"
			}
		}
	}

	return models.NewBuildMetadata(models.BuildMetadataParams{
		Version:            resolveVersion(vars.Version, info),
		BuildType:          strings.ToUpper(strings.TrimSpace(vars.BuildType)),
		BuildTimestamp:     vars.BuildTimestamp,
		BuildUser:          vars.BuildUser,
		BuildHost:          vars.BuildHost,
		TargetSystem:       runtime.GOOS,
		TargetArchitecture: runtime.GOARCH,
		HostSystem:         vars.HostSystem,
		CompilerID:         runtime.Compiler,
		CompilerVersion:    runtime.Version(),
		GitDescribe:        describe,
		GitCommitHash:      commit,
	})
}

// resolveVersion prefers a link-time version that parses as semver, then
// the module version stamped by `go install`, then the raw value.
func resolveVersion(raw string, info *debug.BuildInfo) string {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		if _, err := semver.NewVersion(raw); err == nil {
			return raw
		}
	}

	if info != nil {
		if mv := info.Main.Version; mv != "" && mv != "(devel)" {
			if _, err := semver.NewVersion(mv); err == nil {
				return mv
			}
		}
	}

	return raw
}

// vcsRevision returns the abbreviated revision from the embedded VCS stamp
// and whether the working tree was modified.
func vcsRevision(info *debug.BuildInfo) (rev string, modified bool) {
	if info == nil {
		return "", false
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if len(rev) > shortHashLen {
		rev = rev[:shortHashLen]
	}
	return rev, modified
}

// Release stages reported by [Stage].
const (
	StageRelease     = "release"
	StagePreRelease  = "pre-release"
	StageDevelopment = "development"
)

// Stage classifies the record's version: a semantic version with a
// prerelease suffix is a pre-release, one without is a release, anything
// that does not parse is a development build.
func Stage(md models.BuildMetadata) string {
	v, err := semver.NewVersion(md.Version())
	switch {
	case err != nil:
		return StageDevelopment
	case v.Prerelease() != "":
		return StagePreRelease
	default:
		return StageRelease
	}
}

// IsRelease reports whether the record's version is a semantic version
// without a prerelease suffix.
func IsRelease(md models.BuildMetadata) bool {
	return Stage(md) == StageRelease
}

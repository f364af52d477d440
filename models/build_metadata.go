// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The modern-go-template Authors

package models

import (
	"encoding/json"
	"strings"
)

// Sentinel values substituted for build metadata that could not be
// determined at build time.
const (
	// SentinelUnknown replaces any blank metadata field.
	SentinelUnknown = "unknown"
	// SentinelNoGit replaces a blank source revision descriptor.
	SentinelNoGit = "no-git"
)

// BuildMetadataParams carries the raw build metadata strings used to
// construct a [BuildMetadata]. Blank fields are allowed here; they are
// replaced with sentinels by [NewBuildMetadata].
type BuildMetadataParams struct {
	Version            string
	BuildType          string
	BuildTimestamp     string
	BuildUser          string
	BuildHost          string
	TargetSystem       string
	TargetArchitecture string
	HostSystem         string
	CompilerID         string
	CompilerVersion    string
	GitDescribe        string
	GitCommitHash      string
}

// BuildMetadata carries immutable build-time metadata embedded into the
// binary.
//
// Every field is guaranteed to be non-empty: values missing at build time
// are replaced with [SentinelUnknown] (or [SentinelNoGit] for the git
// descriptor). The zero value is not a valid record; use [NewBuildMetadata].
type BuildMetadata struct {
	version            string
	buildType          string
	buildTimestamp     string
	buildUser          string
	buildHost          string
	targetSystem       string
	targetArchitecture string
	hostSystem         string
	compilerID         string
	compilerVersion    string
	gitDescribe        string
	gitCommitHash      string
}

// NewBuildMetadata constructs [BuildMetadata] from p, substituting sentinel
// values for blank fields.
func NewBuildMetadata(p BuildMetadataParams) BuildMetadata {
	return BuildMetadata{
		version:            orSentinel(p.Version, SentinelUnknown),
		buildType:          orSentinel(p.BuildType, SentinelUnknown),
		buildTimestamp:     orSentinel(p.BuildTimestamp, SentinelUnknown),
		buildUser:          orSentinel(p.BuildUser, SentinelUnknown),
		buildHost:          orSentinel(p.BuildHost, SentinelUnknown),
		targetSystem:       orSentinel(p.TargetSystem, SentinelUnknown),
		targetArchitecture: orSentinel(p.TargetArchitecture, SentinelUnknown),
		hostSystem:         orSentinel(p.HostSystem, SentinelUnknown),
		compilerID:         orSentinel(p.CompilerID, SentinelUnknown),
		compilerVersion:    orSentinel(p.CompilerVersion, SentinelUnknown),
		gitDescribe:        orSentinel(p.GitDescribe, SentinelNoGit),
		gitCommitHash:      orSentinel(p.GitCommitHash, SentinelUnknown),
	}
}

// Version returns the project release identifier.
func (m BuildMetadata) Version() string { return m.version }

// BuildType returns the uppercased build configuration label.
func (m BuildMetadata) BuildType() string { return m.buildType }

// BuildTimestamp returns the human-readable build timestamp.
func (m BuildMetadata) BuildTimestamp() string { return m.buildTimestamp }

// BuildUser returns the account that produced the build.
func (m BuildMetadata) BuildUser() string { return m.buildUser }

// BuildHost returns a description of the machine that produced the build.
func (m BuildMetadata) BuildHost() string { return m.buildHost }

// TargetSystem returns the operating system the binary targets.
func (m BuildMetadata) TargetSystem() string { return m.targetSystem }

// TargetArchitecture returns the CPU architecture the binary targets.
func (m BuildMetadata) TargetArchitecture() string { return m.targetArchitecture }

// HostSystem returns the operating system of the build machine.
func (m BuildMetadata) HostSystem() string { return m.hostSystem }

// CompilerID returns the toolchain identifier.
func (m BuildMetadata) CompilerID() string { return m.compilerID }

// CompilerVersion returns the toolchain version.
func (m BuildMetadata) CompilerVersion() string { return m.compilerVersion }

// GitDescribe returns the human-readable source revision descriptor.
func (m BuildMetadata) GitDescribe() string { return m.gitDescribe }

// GitCommitHash returns the abbreviated source revision hash.
func (m BuildMetadata) GitCommitHash() string { return m.gitCommitHash }

type buildMetadataJSON struct {
	Version            string `json:"version,omitempty"`
	BuildType          string `json:"build_type"`
	BuildTimestamp     string `json:"build_timestamp"`
	BuildUser          string `json:"build_user"`
	BuildHost          string `json:"build_host"`
	TargetSystem       string `json:"target_system"`
	TargetArchitecture string `json:"target_architecture"`
	HostSystem         string `json:"host_system"`
	CompilerID         string `json:"compiler_id"`
	CompilerVersion    string `json:"compiler_version"`
	GitDescribe        string `json:"git_describe"`
	GitCommitHash      string `json:"git_commit_hash"`
}

// MarshalJSON encodes the record with snake_case keys.
func (m BuildMetadata) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.toJSON())
}

// WithoutVersion returns the JSON view of the record with the version key
// left out.
func (m BuildMetadata) WithoutVersion() json.Marshaler {
	return versionless{m}
}

type versionless struct {
	m BuildMetadata
}

func (v versionless) MarshalJSON() ([]byte, error) {
	out := v.m.toJSON()
	out.Version = ""
	return json.Marshal(out)
}

func (m BuildMetadata) toJSON() buildMetadataJSON {
	return buildMetadataJSON{
		Version:            m.version,
		BuildType:          m.buildType,
		BuildTimestamp:     m.buildTimestamp,
		BuildUser:          m.buildUser,
		BuildHost:          m.buildHost,
		TargetSystem:       m.targetSystem,
		TargetArchitecture: m.targetArchitecture,
		HostSystem:         m.hostSystem,
		CompilerID:         m.compilerID,
		CompilerVersion:    m.compilerVersion,
		GitDescribe:        m.gitDescribe,
		GitCommitHash:      m.gitCommitHash,
	}
}

func orSentinel(v, sentinel string) string {
	if strings.TrimSpace(v) == "" {
		return sentinel
	}
	return v
}

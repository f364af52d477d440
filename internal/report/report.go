// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The modern-go-template Authors

package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DehanLUO/modern-go-template/models"
)

// Title is the first line of every text report.
const Title = "Build Information"

// Line labels, in report order.
const (
	LabelVersion  = "Version"
	LabelBuild    = "Build"
	LabelUser     = "User"
	LabelPlatform = "Platform"
	LabelHost     = "Host"
	LabelCompiler = "Compiler"
	LabelSource   = "Source"
	LabelCommit   = "Commit"
)

// labelWidth is the column the ": " separator is aligned to.
const labelWidth = 9

// Options selects the optional parts of the report.
type Options struct {
	// IncludeVersion adds the Version line right after the underline.
	IncludeVersion bool
}

var (
	// Library is the report printed by the library entry point.
	Library = Options{IncludeVersion: true}
	// Binary is the report printed by the executable itself. It has no
	// Version line.
	Binary = Options{IncludeVersion: false}
)

type entry struct {
	label string
	value string
}

// sections groups report lines; a blank line separates consecutive groups.
func sections(md models.BuildMetadata, opts Options) [][]entry {
	head := make([]entry, 0, 3)
	if opts.IncludeVersion {
		head = append(head, entry{LabelVersion, md.Version()})
	}
	head = append(head,
		entry{LabelBuild, md.BuildType() + " (" + md.BuildTimestamp() + ")"},
		entry{LabelUser, md.BuildUser() + " @ " + md.BuildHost()},
	)

	return [][]entry{
		head,
		{
			{LabelPlatform, md.TargetSystem() + " " + md.TargetArchitecture()},
			{LabelHost, md.HostSystem()},
		},
		{
			{LabelCompiler, md.CompilerID() + " " + md.CompilerVersion()},
		},
		{
			{LabelSource, md.GitDescribe()},
			{LabelCommit, md.GitCommitHash()},
		},
	}
}

// Write appends the text report for md to w.
//
// Writing stops at the first failed write and that error is returned as is.
func Write(w io.Writer, md models.BuildMetadata, opts Options) error {
	ew := &errWriter{w: w}

	ew.printf("%s\n%s\n", Title, strings.Repeat("-", len(Title)))
	for i, section := range sections(md, opts) {
		if i > 0 {
			ew.printf("\n")
		}
		for _, e := range section {
			ew.printf("%-*s: %s\n", labelWidth, e.label, e.value)
		}
	}

	return ew.err
}

// DumpBuildInfo writes the library variant of the report to w.
func DumpBuildInfo(w io.Writer, md models.BuildMetadata) error {
	return Write(w, md, Library)
}

// DumpBuildInfoStdout writes the library variant of the report to the
// process's standard output.
func DumpBuildInfoStdout(md models.BuildMetadata) error {
	return DumpBuildInfo(os.Stdout, md)
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) write(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = io.WriteString(ew.w, s)
}

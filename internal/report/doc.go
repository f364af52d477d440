// Package report renders the build information report.
//
// The canonical layout is plain text with fixed labels:
//
//	Build Information
//	-----------------
//	Version  : 1.2.3
//	Build    : RELEASE (2024-01-01 00:00:00 UTC)
//	User     : ci @ runner-01
//
//	Platform : linux amd64
//	Host     : linux
//
//	Compiler : gc go1.26.0
//
//	Source   : v1.2.3-0-gabcdef0
//	Commit   : abcdef0
//
// The library variant includes the Version line and the binary variant
// leaves it out. Both are produced by [Write], selected through [Options].
// JSON, table and styled renderings of the same data are available through
// [Render].
package report

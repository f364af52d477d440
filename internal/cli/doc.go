// Package cli builds the cobra command tree of the project binary.
//
// Running the binary without a subcommand prints the build information
// report and exits 0. The add subcommand exercises the arithmetic helper
// and the version subcommand prints the release identifier.
package cli

// Package config provides configuration loading, merging, and validation
// facilities for the project binary.
//
// Configuration is assembled from these sources:
//  1. A .env file in the working directory, loaded into the process
//     environment without overriding variables that are already set
//  2. Environment variables
//  3. Command-line flags
//  4. A JSON or TOML config file named by CONFIG or --config
//
// Merge priority is file < environment < flags. A non-zero environment value
// replaces the file value; a flag set on the command line replaces both, even
// when it is set to a zero value such as --interactive=false.
//
// The main entry point is [Load].
package config

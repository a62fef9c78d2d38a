// Package cmd implements the command-line interface for sheetsync.
//
// This package provides the following commands:
//   - export: Export action items from a meeting summary to the tracker sheet
//   - version: Display version information
//
// The export command is the default command when no subcommand is specified.
package cmd

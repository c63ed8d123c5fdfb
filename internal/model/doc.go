// Package model defines the small value types shared across the
// docker-entrypoint packages.
//
// This package contains pure data structures with no external dependencies:
// the process exit codes (ExitCode), the CLIError type that carries them up
// to main, and the Property/Propertied pair that lets any record opt into
// the "name: value" debug rendering done by internal/report.
package model

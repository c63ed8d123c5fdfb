package model

import (
	"fmt"
)

// Property is a single named value of a record, already rendered as text.
type Property struct {
	// Name is the field name shown to the user.
	Name string

	// Value is the field value, formatted by the record itself.
	Value string
}

// String returns the "name: value" form used in property dumps.
func (p Property) String() string {
	return fmt.Sprintf("%s: %s", p.Name, p.Value)
}

// Propertied is implemented by records that can be dumped for debugging.
// Properties returns the public fields in their declared order; the
// order is part of the output and must be stable between calls.
type Propertied interface {
	Properties() []Property
}

// PropertyList is a ready-made Propertied for ad-hoc dumps, for example in
// tests or when the caller already has name/value pairs.
type PropertyList []Property

// Properties satisfies Propertied.
func (l PropertyList) Properties() []Property {
	return l
}

// ExitCode defines the process exit codes of the entrypoint binary.
//
// Codes returned by the engine itself are passed through unchanged by the
// run command; the constants below are only used for failures the entrypoint
// detects on its own.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitConfigError indicates the configuration file or flags were invalid.
	ExitConfigError ExitCode = 2

	// ExitEngineNotFound mirrors the shell's "command not found" status and
	// is returned when the engine binary cannot be started.
	ExitEngineNotFound ExitCode = 127
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error

	// Logged is set when the failure has already been reported through the
	// logger, so Execute only exits with Code and prints nothing.
	Logged bool
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// LoggedExit creates a CLIError for a failure that was already logged.
func LoggedExit(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message, Logged: true}
}

package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/shinji-kodama/docker-entrypoint/internal/model"
)

// DefaultBinary is the engine shell started when no other binary is
// configured.
const DefaultBinary = "d8"

// Runner starts the engine as a child process with the entrypoint's
// standard streams.
type Runner struct {
	// Binary is the executable name or path. Resolved through PATH when it
	// contains no separator.
	Binary string

	// Stdin, Stdout and Stderr default to the process streams when nil.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a Runner for binary wired to the process streams.
// An empty binary selects DefaultBinary.
func NewRunner(binary string) *Runner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Runner{
		Binary: binary,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts the engine with args and waits for it to exit.
//
// The returned int is the engine's exit code. A non-zero code is not an
// error: it is the engine's own verdict and is returned with a nil error so
// the caller can convert it into a Result. The error is non-nil only when the
// engine could not be started or waited on; it is then a model.CLIError with
// ExitEngineNotFound or ExitGeneralError.
func (r *Runner) Run(ctx context.Context, args []string) (int, error) {
	path, err := exec.LookPath(r.Binary)
	if err != nil {
		return int(model.ExitEngineNotFound), model.WrapCLIError(
			model.ExitEngineNotFound,
			fmt.Sprintf("engine binary %q not found", r.Binary),
			err,
		)
	}

	// exec.CommandContext kills the engine if ctx is cancelled. The
	// entrypoint installs no signal handlers of its own.
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err = cmd.Run()
	if err == nil {
		return int(model.ExitSuccess), nil
	}

	// *exec.ExitError means the engine ran and exited non-zero (or was
	// killed by a signal, in which case ExitCode reports -1).
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	return int(model.ExitGeneralError), model.WrapCLIError(
		model.ExitGeneralError,
		fmt.Sprintf("failed to run engine %q", r.Binary),
		err,
	)
}

// CommandLine returns the argument vector Run would use, for logging.
func (r *Runner) CommandLine(args []string) []string {
	return append([]string{r.Binary}, args...)
}

// Package cli — run.go implements the "docker-entrypoint run" command.
//
// The run command starts the engine with the configured engine flags
// followed by the command-line arguments, converts the engine's exit code
// into a Result, and logs that Result. A failing engine is logged together
// with the support message, and the entrypoint exits with the engine's
// exit code.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/docker-entrypoint/internal/engine"
	"github.com/shinji-kodama/docker-entrypoint/internal/model"
	"github.com/shinji-kodama/docker-entrypoint/internal/report"
	"github.com/shinji-kodama/docker-entrypoint/internal/result"
)

// runFlags holds the flag values for the run command.
type runFlags struct {
	// engine overrides the configured engine binary.
	engine string
}

// NewRunCommand creates the "run" cobra command.
func NewRunCommand() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [flags] [-- engine-args...]",
		Short: "Run the engine and report its outcome",
		Long: `Run the engine with the configured engine flags followed by the given
arguments. Everything after "--" is passed to the engine untouched.

A non-zero exit code is logged with a support message and returned as
the entrypoint's own exit code.

Examples:
  docker-entrypoint run -- main.js
  docker-entrypoint run -- --prof --log-gc main.js
  docker-entrypoint run --engine /opt/v8/d8 -- --harmony main.js`,

		Args: cobra.ArbitraryArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runEngine(cmd.Context(), cmd, flags, args)
		},
	}

	// Stop flag parsing at the first positional argument so that
	// "run main.js --prof" hands --prof to the engine.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&flags.engine, "engine", "",
		"Engine binary to run (overrides config; default d8)")

	return cmd
}

// runEngine is the main logic function for the run command.
func runEngine(ctx context.Context, cmd *cobra.Command, flags *runFlags, args []string) error {
	binary := cfg.Engine
	if flags.engine != "" {
		binary = flags.engine
	}

	runner := engine.NewRunner(binary)
	runner.Stdin = cmd.InOrStdin()
	runner.Stdout = cmd.OutOrStdout()
	runner.Stderr = cmd.ErrOrStderr()

	// Configured flags come first so arguments on the command line can
	// override them where the engine lets later flags win.
	engineArgs := make([]string, 0, len(cfg.EngineFlags)+len(args))
	engineArgs = append(engineArgs, cfg.EngineFlags...)
	engineArgs = append(engineArgs, args...)

	for _, flag := range cfg.EngineFlags {
		if desc, ok := engine.Describe(flag); ok {
			logger.WithField("flag", flag).Debug(desc)
		}
	}
	for _, flag := range engine.Unknown(cfg.EngineFlags) {
		logger.WithField("flag", flag).Warn("configured engine flag is not in the reference table")
	}

	report.LogProperties(logger, logrus.DebugLevel, model.PropertyList{
		{Name: "binary", Value: binary},
		{Name: "command", Value: strings.Join(runner.CommandLine(engineArgs), " ")},
	}, report.WithTitle("Starting engine"))

	code, err := runner.Run(ctx, engineArgs)
	var outcome *result.Result[result.None]
	if err != nil {
		outcome = result.Fail[result.None](result.FromError(err, result.WithTitle("Engine could not be run")))
	} else {
		outcome = report.FromExitCode(code)
	}

	report.LogResult(logger, outcome, report.WithEnvironment(environment))

	if !outcome.Success() {
		return model.LoggedExit(model.ExitCode(code), fmt.Sprintf("engine exited with code %d", code))
	}
	return nil
}

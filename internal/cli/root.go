// Package cli implements the cobra-based CLI commands for docker-entrypoint.
//
// Each subcommand (run, support, flags, env) is defined in its own file
// within this package. This file defines the root command, the global
// flags, and the shared setup that every subcommand relies on: loading the
// configuration, building the logrus logger, and preparing the environment
// reader for support messages.
package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/docker-entrypoint/internal/config"
	"github.com/shinji-kodama/docker-entrypoint/internal/environ"
	"github.com/shinji-kodama/docker-entrypoint/internal/model"
	"github.com/shinji-kodama/docker-entrypoint/internal/report"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command.
var (
	// configPath is the entrypoint configuration file. Empty means
	// ENTRYPOINT_CONFIG, and if that is empty too, built-in defaults.
	configPath string

	// logLevel and logFormat override the configuration file when set.
	logLevel  string
	logFormat string

	// buildInfoPath overrides the configuration's buildInfoFile.
	buildInfoPath string
)

// State prepared by setup before any subcommand runs.
var (
	cfg         *config.Config
	logger      *logrus.Logger
	environment *environ.Reader
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// The root command itself does not perform any action. It provides help
// text, global flags and the PersistentPreRunE hook that prepares the
// logger and configuration for the subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docker-entrypoint",
		Short: "Container entrypoint for the d8 JavaScript engine shell",
		Long: `docker-entrypoint starts the d8 JavaScript engine shell inside the
container, logs its outcome, and on failure prints where to report the
problem (maintainer, image version, build date and bug tracker, taken
from the image's environment).`,

		// We handle error output ourselves: failures of the engine are
		// already logged, and usage text would only add noise.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Path to the entrypoint config file (JSONC or YAML); defaults to $"+config.EnvConfigPath)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level: trace, debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Log format: text or json (overrides config)")
	rootCmd.PersistentFlags().StringVar(&buildInfoPath, "build-info", "",
		"Dotenv file with image build metadata (overrides config)")

	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewSupportCommand())
	rootCmd.AddCommand(NewFlagsCommand())
	rootCmd.AddCommand(NewEnvCommand())

	return rootCmd
}

// setup loads the configuration, applies flag overrides, and builds the
// shared logger and environment reader.
func setup(cmd *cobra.Command) error {
	path := configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}

	// Flags win over the file. cmd.Flags() includes the inherited
	// persistent flags, so Changed sees flags given before or after the
	// subcommand name.
	if cmd.Flags().Changed("log-level") {
		loaded.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-format") {
		loaded.LogFormat = logFormat
	}
	if cmd.Flags().Changed("build-info") {
		loaded.BuildInfoFile = buildInfoPath
	}
	if err := loaded.Validate(); err != nil {
		return model.WrapCLIError(model.ExitConfigError, "invalid configuration", err)
	}
	cfg = loaded

	logger = logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(cfg.Level())
	logger.SetFormatter(cfg.Formatter())

	environment = environ.NewReader()
	if cfg.BuildInfoFile != "" {
		if err := environment.LoadBuildInfo(cfg.BuildInfoFile); err != nil {
			return model.WrapCLIError(model.ExitConfigError, "invalid build info file", err)
		}
	}

	// Debug dump of the effective configuration. Formatting cannot fail
	// for a non-nil config, so the Result is only checked for completeness.
	if res := report.LogProperties(logger, logrus.DebugLevel, cfg, report.WithTitle("Configuration")); !res.Success() {
		return res.Err()
	}
	return nil
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError values carry their own exit code. Errors already reported
// through the logger (CLIError.Logged) exit silently; everything else is
// printed to stderr first. Other errors exit with code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			if !cliErr.Logged {
				printError(cliErr.Message, cliErr.Err)
			}
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError writes "Error: <message>" to stderr, with the underlying error
// appended when present.
func printError(message string, underlying error) {
	if underlying != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

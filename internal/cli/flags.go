// Package cli — flags.go implements the "docker-entrypoint flags" command,
// which lists the engine debug/trace flags from the reference table.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/docker-entrypoint/internal/engine"
)

// flagsFlags holds the flag values for the flags command.
type flagsFlags struct {
	// json prints the table as a JSON object instead of text.
	json bool
}

// NewFlagsCommand creates the "flags" cobra command.
func NewFlagsCommand() *cobra.Command {
	flags := &flagsFlags{}

	cmd := &cobra.Command{
		Use:   "flags",
		Short: "List recommended engine debug and trace flags",
		Long: `List the engine flags the entrypoint knows about, with a short
description of each. Put them in the config file's engineFlags or pass
them after "--" to the run command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printFlags(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "Output in JSON format")

	return cmd
}

// printFlags writes the reference table in the selected format.
func printFlags(cmd *cobra.Command, flags *flagsFlags) error {
	out := cmd.OutOrStdout()

	if flags.json {
		// encoding/json sorts map keys, matching the text order.
		data, err := json.MarshalIndent(engine.RecommendedOptions, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode flag table: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	if _, err := fmt.Fprintln(out, "Recommended engine flags:"); err != nil {
		return err
	}
	_, err := fmt.Fprint(out, engine.HelpText())
	return err
}

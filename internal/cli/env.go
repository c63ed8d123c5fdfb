// Package cli — env.go implements the "docker-entrypoint env" command.
//
// It dumps the image metadata the entrypoint sees, after defaults and the
// build-info file are applied, using the same property formatter the
// logger uses for debug output.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/docker-entrypoint/internal/environ"
	"github.com/shinji-kodama/docker-entrypoint/internal/report"
	"github.com/shinji-kodama/docker-entrypoint/internal/result"
)

// NewEnvCommand creates the "env" cobra command.
func NewEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Show the image metadata used in support messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := result.Then(environment.Environments(), func(info environ.Info) *result.Result[string] {
				return report.FormatProperties(info, report.WithTitle("Environment"))
			})
			text, ok := res.Value()
			if !ok {
				return res.Err()
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}
}

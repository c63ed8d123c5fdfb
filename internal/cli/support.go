// Package cli — support.go implements the "docker-entrypoint support"
// command, which prints the same support block that follows a logged
// failure.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/docker-entrypoint/internal/report"
)

// NewSupportCommand creates the "support" cobra command.
func NewSupportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "support",
		Short: "Print maintainer, version and bug-report information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := report.SupportMessage(environment)
			msg, ok := res.Value()
			if !ok {
				return res.Err()
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), msg)
			return err
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display numtower version information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "numtower v%s\n", version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Numeric tower toolkit: ratios, complex numbers and cross-kind comparison")
		},
	}
}

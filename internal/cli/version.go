package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	appver "divlog/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print divlog version",
		Run: func(cmd *cobra.Command, args []string) {
			// keep output simple for scripting
			fmt.Fprintln(cmd.OutOrStdout(), appver.AppVersion)
		},
	}
}

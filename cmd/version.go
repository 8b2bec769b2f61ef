package cmd

import (
	"fmt"

	"yukari-engine/core/version"

	"github.com/spf13/cobra"
)

// versionCmd prints the same string GET /api/version returns
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the engine version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}

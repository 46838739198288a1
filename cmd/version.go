package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print the version number of postdeck",
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "postdeck %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

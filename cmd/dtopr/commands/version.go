package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dtopr/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of dtopr.`,
	Args:  cobra.NoArgs,
	Run: func(c *cobra.Command, _ []string) {
		info := cmd.Info()
		out := c.OutOrStdout()
		fmt.Fprintf(out, "dtopr version %s\n", info.Version)
		fmt.Fprintf(out, "  commit: %s\n", info.Commit)
		fmt.Fprintf(out, "  built:  %s\n", info.Date)
		fmt.Fprintf(out, "  go:     %s\n", info.GoVersion)
	},
}

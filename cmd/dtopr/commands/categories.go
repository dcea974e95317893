package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dtopr/internal/cli/prompt"
	"github.com/thoreinstein/dtopr/internal/desktop"
)

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the menu categories dtopr offers",
	Long: `List the main menu categories offered by the category picker, with
the number used to toggle each one.`,
	Example: `  dtopr categories

  See Also: dtopr validate`,
	Args: cobra.NoArgs,
	Run: func(c *cobra.Command, _ []string) {
		out := c.OutOrStdout()
		fmt.Fprintf(out, "\t(0) %s\n", prompt.EndSelectionLabel)
		for i, label := range desktop.Categories() {
			fmt.Fprintf(out, "\t(%d) %s\n", i+1, label)
		}
	},
}

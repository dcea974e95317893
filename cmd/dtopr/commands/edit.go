package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/dtopr/internal/desktop"
	"github.com/thoreinstein/dtopr/internal/editor"
	"github.com/thoreinstein/dtopr/internal/errors"
	"github.com/thoreinstein/dtopr/internal/validator"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Open a desktop entry in $EDITOR, then validate it",
	Long: `Open a desktop entry in your editor. When the editor exits the entry is
validated and any problems are reported.

The editor is taken from $DTOPR_EDITOR, $EDITOR or $VISUAL, falling back
to nano, then vi.`,
	Example: `  dtopr edit myapp.desktop
  EDITOR="code --wait" dtopr edit myapp.desktop

  See Also: dtopr validate, dtopr show`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(c *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return errors.NewUserError(errors.Wrapf(err, "opening %s", path), "Run dtopr to create a new entry")
	}

	if err := editor.OpenWithIO(path, c.InOrStdin(), c.OutOrStdout(), c.ErrOrStderr()); err != nil {
		return err
	}

	doc, err := parseEntryFile(path)
	if err != nil {
		return err
	}
	res := desktop.Validate(doc)
	res.Source = path
	return validator.NewReporter(c.OutOrStdout(), validator.FormatText).Report(res)
}

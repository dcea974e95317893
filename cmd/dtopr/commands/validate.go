package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dtopr/internal/desktop"
	"github.com/thoreinstein/dtopr/internal/errors"
	"github.com/thoreinstein/dtopr/internal/validator"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a desktop entry",
	Long: `Check a desktop entry for problems before installing it.

Errors: missing [Desktop Entry] group, Type other than Application, empty
Name or Exec, Terminal that is not true or false.
Warnings: unknown or unterminated categories, duplicate keys, Exec, Path
or Icon that do not exist on this machine.

Exit codes:
  0 - Entry is valid (warnings allowed)
  1 - Entry has errors`,
	Example: `  dtopr validate myapp.desktop
  dtopr validate myapp.desktop --json

  See Also: dtopr show, dtopr install`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(c *cobra.Command, args []string) error {
	doc, err := parseEntryFile(args[0])
	if err != nil {
		return err
	}

	res := desktop.Validate(doc)
	res.Source = args[0]

	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	if err := validator.NewReporter(c.OutOrStdout(), format).Report(res); err != nil {
		return err
	}

	if res.HasErrors() {
		// The report has already been printed
		return errors.NewExitError(errors.Wrapf(errors.ErrInvalidEntry, "%s", args[0]), errors.ExitUser)
	}
	return nil
}

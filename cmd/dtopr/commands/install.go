package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dtopr/internal/cli/prompt"
	"github.com/thoreinstein/dtopr/internal/desktop"
	"github.com/thoreinstein/dtopr/internal/errors"
	"github.com/thoreinstein/dtopr/internal/install"
)

var installForce bool

func init() {
	installCmd.Flags().BoolVar(&installForce, "force", false,
		"install even if validation reports errors")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install <file>",
	Short: "Move an existing desktop entry into the applications directory",
	Long: `Move a desktop entry into the applications directory.

The entry is validated first. If an entry with the same name is already
installed you are asked before it is replaced, and the old one is kept as
<name>.desktop.~N~.`,
	Example: `  # Install system-wide (usually needs root)
  sudo dtopr install myapp.desktop

  # Install for the current user
  dtopr install myapp.desktop --user

  # Replace an installed entry without asking
  dtopr install myapp.desktop --dest ~/.local/share/applications -y

  See Also: dtopr validate`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func runInstall(c *cobra.Command, args []string) error {
	src := args[0]

	if !installForce {
		doc, err := parseEntryFile(src)
		if err != nil {
			return err
		}
		if res := desktop.Validate(doc); res.HasErrors() {
			return errors.NewUserError(
				errors.Wrapf(errors.ErrInvalidEntry, "%s has %d error(s)", src, len(res.Errors())),
				"Run: dtopr validate "+src+" (or pass --force)",
			)
		}
	}

	p := prompt.NewPrompterWithIO(c.InOrStdin(), c.OutOrStdout())
	inst := install.NewInstaller(
		install.WithConfirmer(p),
		install.WithOutput(c.OutOrStdout()),
		install.WithAssumeYes(assumeYes),
	)

	if _, err := inst.Move(src, installDir()); err != nil {
		if errors.Is(err, install.ErrSameFile) {
			return errors.NewUserError(err, "")
		}
		return errors.NewSystemError(err, "Installing into a system directory usually needs root, or use --user")
	}
	return nil
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dtopr/internal/cli/prompt"
	"github.com/thoreinstein/dtopr/internal/config"
	"github.com/thoreinstein/dtopr/internal/errors"
	"github.com/thoreinstein/dtopr/internal/paths"
	"github.com/thoreinstein/dtopr/pkg/fileutil"
)

var initForce bool

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing configuration")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default dtopr configuration",
	Long: `Create ~/.config/dtopr/config.yaml with the default settings.

Use --yes to skip the confirmation and --force to replace an existing file.`,
	Example: `  # Create the config after confirming
  dtopr init

  # Non-interactive
  dtopr init --yes

  # Start over
  dtopr init --force --yes

  See Also: dtopr config`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(c *cobra.Command, _ []string) error {
	configPath := configFile
	if configPath == "" {
		configPath = paths.ConfigFile()
	}
	out := c.OutOrStdout()

	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Fprintf(out, "Configuration already exists at %s\n", configPath)
		fmt.Fprintln(out, "Use --force to overwrite")
		return nil
	}

	cfg := config.Default()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	if !assumeYes {
		fmt.Fprintln(out, "This will create:")
		fmt.Fprintf(out, "  %s\n\n", configPath)
		fmt.Fprint(out, string(data))
		fmt.Fprintln(out)

		p := prompt.NewPrompterWithIO(c.InOrStdin(), out)
		ok, err := p.Confirm("Proceed? [y/N] ")
		if err != nil && !errors.Is(err, prompt.ErrInputClosed) {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborted")
			return nil
		}
	}

	if err := paths.EnsureDir(filepath.Dir(configPath), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteFile(configPath, data, 0o644); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	fmt.Fprintf(out, "Created %s\n", configPath)
	return nil
}

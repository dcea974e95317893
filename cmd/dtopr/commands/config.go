package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dtopr/internal/config"
	"github.com/thoreinstein/dtopr/internal/editor"
	"github.com/thoreinstein/dtopr/internal/errors"
	"github.com/thoreinstein/dtopr/internal/paths"
	"github.com/thoreinstein/dtopr/pkg/fileutil"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage dtopr configuration",
	Long: `Manage dtopr configuration stored in ~/.config/dtopr/config.yaml.

Keys:
  install_dir   where entries are installed (default /usr/share/applications/)
  clear_screen  clear the terminal before each prompt (default true)
  picker        category picker: numbered or fuzzy (default numbered)
  version       config format version

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  dtopr config

  # Get a specific value
  dtopr config get install_dir

  # Always use the fuzzy picker
  dtopr config set picker fuzzy

See Also: dtopr init`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long:  `Get a single configuration value by key.`,
	Example: `  dtopr config get picker

See Also: dtopr config set, dtopr config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

The new value is validated before anything is written.`,
	Example: `  dtopr config set install_dir ~/.local/share/applications
  dtopr config set clear_screen false

See Also: dtopr config get, dtopr config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	Example: `  dtopr config list

See Also: dtopr config get, dtopr config set`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Long: `Print the config file in use, or the default location if none was
found.`,
	Args: cobra.NoArgs,
	Run: func(c *cobra.Command, _ []string) {
		fmt.Fprintln(c.OutOrStdout(), configPath())
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your default editor.

If no configuration file exists, prints an error suggesting to run 'dtopr init'.`,
	Example: `  # Open config in default editor
  dtopr config edit

  # Open with specific editor
  EDITOR=nano dtopr config edit

See Also: dtopr config list, dtopr init`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

// configPath returns the file config is read from and written to.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return paths.ConfigFile()
}

func runConfigGet(c *cobra.Command, args []string) error {
	key := args[0]
	if !slices.Contains(config.Keys(), key) {
		return unknownKeyError(key)
	}
	fmt.Fprintln(c.OutOrStdout(), viper.GetString(key))
	return nil
}

func runConfigSet(c *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	cfg := config.Current()
	switch key {
	case "version":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.NewUserError(errors.Wrapf(err, "version %q", value), "version must be a whole number")
		}
		cfg.Version = n
	case "install_dir":
		cfg.InstallDir = value
	case "clear_screen":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.NewUserError(errors.Wrapf(err, "clear_screen %q", value), "Use true or false")
		}
		cfg.ClearScreen = b
	case "picker":
		cfg.Picker = value
	default:
		return unknownKeyError(key)
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		return errors.NewUserError(errors.Mark(errs[0], errors.ErrInvalidConfig), "")
	}

	viper.Set(key, cfgValue(cfg, key))
	if err := writeConfig(cfg); err != nil {
		return err
	}
	fmt.Fprintf(c.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func runConfigList(c *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(config.Current())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	fmt.Fprint(c.OutOrStdout(), string(data))
	return nil
}

func runConfigEdit(c *cobra.Command, _ []string) error {
	path := configPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return errors.NewUserError(
			errors.Newf("config file not found at %s", path),
			"Run 'dtopr init' to create it",
		)
	}

	return editor.OpenWithIO(path, c.InOrStdin(), c.OutOrStdout(), c.ErrOrStderr())
}

func cfgValue(cfg *config.Config, key string) any {
	switch key {
	case "version":
		return cfg.Version
	case "install_dir":
		return cfg.InstallDir
	case "clear_screen":
		return cfg.ClearScreen
	default:
		return cfg.Picker
	}
}

func unknownKeyError(key string) error {
	return errors.NewUserError(
		errors.Newf("unknown config key %q", key),
		"Valid keys: "+strings.Join(config.Keys(), ", "),
	)
}

// writeConfig writes cfg to the config file.
func writeConfig(cfg *config.Config) error {
	path := configPath()

	if err := os.MkdirAll(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteYAML(path, cfg); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	return nil
}

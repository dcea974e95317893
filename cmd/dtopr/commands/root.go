// Package commands implements the CLI commands for dtopr.
package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thoreinstein/dtopr/cmd"
	"github.com/thoreinstein/dtopr/internal/cli/prompt"
	"github.com/thoreinstein/dtopr/internal/config"
	"github.com/thoreinstein/dtopr/internal/errors"
	"github.com/thoreinstein/dtopr/internal/logging"
	"github.com/thoreinstein/dtopr/internal/paths"
	"github.com/thoreinstein/dtopr/internal/wizard"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// Install destination flags, shared by the wizard and the install command.
var (
	destFlag  string
	userFlag  bool
	assumeYes bool
)

// Wizard-only flags.
var (
	fuzzyFlag   bool
	noClearFlag bool
)

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml or "+paths.ConfigFile()+")")
	rootCmd.PersistentFlags().StringVar(&destFlag, "dest", "",
		"install directory (default: install_dir from config)")
	rootCmd.PersistentFlags().BoolVar(&userFlag, "user", false,
		"install into the per-user applications directory")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false,
		"install without asking and replace existing entries")

	rootCmd.Flags().BoolVar(&fuzzyFlag, "fuzzy", false,
		"pick categories with a fuzzy finder")
	rootCmd.Flags().BoolVar(&noClearFlag, "no-clear", false,
		"do not clear the screen before each prompt")

	rootCmd.Version = cmd.Info().Version
	rootCmd.SetVersionTemplate("dtopr version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	_, configLoadErr = config.Load(configFile)
}

var rootCmd = &cobra.Command{
	Use:   "dtopr",
	Short: "Create a desktop entry so an app appears in the menus",
	Long: `dtopr asks a few questions about an application (name, description,
command, working directory, icon, terminal mode and menu categories),
lets you review the answers, and writes <name>.desktop in the current
directory.

Afterwards it offers to move the file into the system applications
directory (/usr/share/applications/). An entry that is already there is
kept as a numbered backup (<name>.desktop.~1~).

Press Ctrl+C at any time to quit immediately.`,
	Example: `  # Create an entry interactively
  dtopr

  # Install into ~/.local/share/applications instead
  dtopr --user

  # Pick categories with a fuzzy finder
  dtopr --fuzzy

  See Also: dtopr validate, dtopr install, dtopr config`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	RunE: runWizard,
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("DTOPR_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logging.ReplaceLevel,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
	}

	logger := slog.New(logging.NewMultiHandler(handlers...))
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports a broken config file, except for the commands that
// help fix it.
func checkConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "init", "path", "edit", "doctor":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(errors.Mark(configLoadErr, errors.ErrInvalidConfig))
	}
	return nil
}

// installDir resolves where entries are installed: --dest, then --user,
// then install_dir from the config.
func installDir() string {
	switch {
	case destFlag != "":
		return destFlag
	case userFlag:
		return paths.UserApplicationsDir()
	case viper.GetString("install_dir") != "":
		return viper.GetString("install_dir")
	default:
		return paths.SystemApplicationsDir
	}
}

// exit is os.Exit, replaceable in tests.
var exit = os.Exit

// exitOnInterrupt makes SIGINT and SIGTERM end the process at once with
// ExitUser. Nothing is cleaned up. stop returns once the watcher is gone.
func exitOnInterrupt() (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer close(done)
		if _, ok := <-sigs; ok {
			exit(errors.ExitUser)
		}
	}()
	return func() {
		signal.Stop(sigs)
		close(sigs)
		<-done
	}
}

func runWizard(cmd *cobra.Command, _ []string) error {
	defer exitOnInterrupt()()

	cfg := config.Current()
	clearScreen := cfg.ClearScreen && !noClearFlag && logging.IsTTY(cmd.OutOrStdout())
	p := prompt.NewPrompterWithIO(cmd.InOrStdin(), cmd.OutOrStdout(), prompt.WithClearScreen(clearScreen))

	opts := wizard.Options{
		DestDir:   installDir(),
		AssumeYes: assumeYes,
	}
	if fuzzyFlag || cfg.Picker == config.PickerFuzzy {
		opts.Selector = prompt.NewFuzzySelector()
	}
	slog.Debug("starting wizard", "dest", opts.DestDir, "picker", cfg.Picker, "clear", clearScreen)

	err := wizard.New(p, opts).Run()
	if errors.Is(err, prompt.ErrInputClosed) {
		return errors.NewUserError(err, "dtopr reads answers from standard input, one per line")
	}
	return err
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}

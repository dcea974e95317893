package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/dtopr/internal/doctor"
	"github.com/thoreinstein/dtopr/internal/errors"
	"github.com/thoreinstein/dtopr/internal/paths"
)

var (
	doctorJSON    bool
	doctorVerbose bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "all", false,
		"show passed checks too")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and install problems",
	Long: `Run diagnostic checks before creating or installing entries.

Checks that the config file is valid, that the install directory exists
and is writable, and that desktop environments look for launchers there.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --all       Show all checks including passed ones
  --json      Machine-readable JSON output

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Example: `  dtopr doctor
  dtopr doctor --user --all

  See Also: dtopr config, dtopr init`,
	Args:    cobra.NoArgs,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// errDoctorWarnings is a sentinel error for exit code 1.
var errDoctorWarnings = errors.New("warnings found")

// errDoctorErrors is a sentinel error for exit code 2.
var errDoctorErrors = errors.New("errors found")

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	if doctorJSON && doctorVerbose {
		return errors.NewUserError(errors.New("flags --json and --all are mutually exclusive"), "")
	}
	return nil
}

func runDoctor(c *cobra.Command, _ []string) error {
	dir := installDir()
	runner := doctor.NewRunner(
		doctor.NewConfigCheck(configPath()),
		doctor.NewInstallDirCheck(dir),
		doctor.NewSearchPathCheck(dir, paths.ApplicationsDirs()),
	)

	report := runner.Run()

	out := c.OutOrStdout()
	var err error
	if doctorJSON {
		err = outputDoctorJSON(out, report)
	} else {
		outputDoctorText(out, report)
	}
	if err != nil {
		return err
	}

	switch report.Worst() {
	case doctor.SeverityError:
		return errors.NewExitError(errDoctorErrors, errors.ExitSystem)
	case doctor.SeverityWarning:
		return errors.NewExitError(errDoctorWarnings, errors.ExitUser)
	}
	return nil
}

func outputDoctorJSON(out io.Writer, report *doctor.Report) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(report), "encoding JSON")
}

func outputDoctorText(out io.Writer, report *doctor.Report) {
	minimum := doctor.SeverityWarning
	if doctorVerbose {
		minimum = doctor.SeverityPass
	}
	shown := report.Problems(minimum)
	for _, result := range shown {
		fmt.Fprintf(out, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && result.Status >= doctor.SeverityWarning {
			fmt.Fprintf(out, "  hint: %s\n", result.FixHint)
		}
	}

	if len(shown) > 0 {
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return color.GreenString("✓")
	case doctor.SeverityInfo:
		return color.CyanString("ℹ")
	case doctor.SeverityWarning:
		return color.YellowString("⚠")
	case doctor.SeverityError:
		return color.RedString("✗")
	default:
		return "?"
	}
}

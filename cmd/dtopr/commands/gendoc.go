package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/dtopr/cmd"
	"github.com/thoreinstein/dtopr/internal/errors"
	"github.com/thoreinstein/dtopr/internal/paths"
)

var (
	genDocDir    string
	genDocFormat string
)

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate man pages or Markdown documentation for the CLI",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runGenDoc,
}

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "Output directory for documentation")
	genDocCmd.Flags().StringVar(&genDocFormat, "format", "man", "man or markdown")
	rootCmd.AddCommand(genDocCmd)
}

func runGenDoc(c *cobra.Command, _ []string) error {
	if genDocDir == "" {
		return errors.NewUserError(errors.New("output directory is required"), "Pass --dir")
	}

	if err := paths.EnsureDir(genDocDir, 0); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	switch genDocFormat {
	case "man":
		header := &doc.GenManHeader{
			Title:   "DTOPR",
			Section: "1",
			Source:  "dtopr " + cmd.Info().Version,
			Manual:  "dtopr manual",
		}
		if err := doc.GenManTree(rootCmd, header, genDocDir); err != nil {
			return errors.Wrap(err, "generating man pages")
		}
	case "markdown":
		if err := doc.GenMarkdownTreeCustom(rootCmd, genDocDir, filePrepender, linkHandler); err != nil {
			return errors.Wrap(err, "generating markdown")
		}
	default:
		return errors.NewUserError(errors.Newf("unknown format %q", genDocFormat), "Use man or markdown")
	}

	fmt.Fprintf(c.OutOrStdout(), "Documentation generated in %s\n", genDocDir)
	return nil
}

func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	// dtopr_config_set.md -> dtopr config set
	title := strings.ReplaceAll(base, "_", " ")

	return fmt.Sprintf("---\ntitle: %q\n---\n", title)
}

func linkHandler(name string) string {
	return strings.ToLower(name)
}

package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/dtopr/internal/desktop"
	"github.com/thoreinstein/dtopr/internal/errors"
	"github.com/thoreinstein/dtopr/pkg/fileutil"
)

var showFormat string

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "text",
		"output format: text, json, yaml, toml")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a desktop entry",
	Long: `Parse a desktop entry and print its keys in file order.

Only the first group is read. Comments and blank lines are dropped.`,
	Example: `  # Show an entry
  dtopr show myapp.desktop

  # Convert to YAML
  dtopr show myapp.desktop --format yaml

  See Also: dtopr validate`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

// entryView is the serialized form of a desktop entry.
type entryView struct {
	File       string         `json:"file" yaml:"file" toml:"file"`
	Group      string         `json:"group" yaml:"group" toml:"group"`
	Categories []string       `json:"categories,omitempty" yaml:"categories,omitempty" toml:"categories,omitempty"`
	Entries    []desktop.Pair `json:"entries" yaml:"entries" toml:"entries"`
}

func runShow(c *cobra.Command, args []string) error {
	doc, err := parseEntryFile(args[0])
	if err != nil {
		return err
	}

	view := entryView{File: args[0], Group: doc.Group, Entries: doc.Pairs}
	if cats, ok := doc.Get(desktop.KeyCategories); ok {
		view.Categories = desktop.SplitCategories(cats)
	}
	return writeEntry(c.OutOrStdout(), showFormat, view)
}

func writeEntry(out io.Writer, format string, view entryView) error {
	switch format {
	case "text":
		key := color.New(color.FgCyan)
		fmt.Fprintf(out, "[%s]\n", view.Group)
		for _, p := range view.Entries {
			fmt.Fprintf(out, "%s=%s\n", key.Sprint(p.Key), p.Value)
		}
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(view), "encoding JSON")
	case "yaml":
		data, err := yaml.Marshal(view)
		if err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		_, err = out.Write(data)
		return err
	case "toml":
		data, err := toml.Marshal(view)
		if err != nil {
			return errors.Wrap(err, "encoding TOML")
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.NewUserError(
			errors.Newf("unknown format %q", format),
			"Use one of: text, json, yaml, toml",
		)
	}
}

// parseEntryFile reads and parses a desktop entry from disk.
func parseEntryFile(path string) (*desktop.Document, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.NewUserError(errors.Wrapf(errors.ErrNotFound, "%s", path), "Run dtopr to create a new entry")
	}
	if err != nil {
		return nil, errors.NewUserError(errors.Wrapf(err, "reading %s", path), "")
	}
	doc, err := desktop.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.NewUserError(errors.Wrapf(err, "parsing %s", path), "")
	}
	return doc, nil
}

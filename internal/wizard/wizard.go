package wizard

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/thoreinstein/dtopr/internal/cli/prompt"
	"github.com/thoreinstein/dtopr/internal/desktop"
	"github.com/thoreinstein/dtopr/internal/errors"
	"github.com/thoreinstein/dtopr/internal/install"
	"github.com/thoreinstein/dtopr/internal/paths"
)

// Prompts shown outside field collection.
const (
	PromptFileName = "Enter the desktop file name (just the part before .desktop):\n"
	PromptInstall  = "Would you like to move the file to the system directory?\n"
	reviewHeading  = "Here are the desktop file entries you've created so far:"
	reviewHelp     = "Select a number to change.\nSelect 0 to continue if you are happy with it the way it is."
)

// Options configures a Wizard.
type Options struct {
	// Dir is where the entry is created. Empty means the current directory.
	Dir string
	// DestDir is where the entry is installed. Empty means the system
	// applications directory.
	DestDir string
	// AssumeYes installs without asking and replaces existing entries.
	AssumeYes bool
	// Selector picks categories. Nil uses the numbered picker.
	Selector prompt.MultiSelector
}

// Wizard drives one dtopr session.
type Wizard struct {
	p         *prompt.Prompter
	reg       *desktop.Registry
	installer *install.Installer
	opts      Options
}

// New creates a Wizard reading and writing through p.
func New(p *prompt.Prompter, opts Options) *Wizard {
	if opts.DestDir == "" {
		opts.DestDir = paths.SystemApplicationsDir
	}
	return &Wizard{
		p:   p,
		reg: SetupFields(p, opts.Selector),
		installer: install.NewInstaller(
			install.WithConfirmer(p),
			install.WithOutput(p.Writer()),
			install.WithAssumeYes(opts.AssumeYes),
		),
		opts: opts,
	}
}

// Registry returns the fields being collected.
func (w *Wizard) Registry() *desktop.Registry {
	return w.reg
}

// Run executes the whole session. It returns an ExitError with ExitSystem
// when the output file cannot be created; installation problems are only
// reported.
func (w *Wizard) Run() error {
	f, name, err := w.CreateOutputFile()
	if err != nil {
		return err
	}
	defer f.Close()

	if err := w.reg.CollectAll(); err != nil {
		return err
	}
	if err := w.Review(); err != nil {
		return err
	}
	if err := desktop.Write(f, w.reg); err != nil {
		return errors.NewSystemError(err, "")
	}
	if err := f.Close(); err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "closing %s", name), "")
	}
	slog.Info("desktop entry written", "file", name)

	return w.Install(f.Name())
}

// CreateOutputFile asks for a base name until it names a file that is new
// or that the user agrees to overwrite, then creates it.
func (w *Wizard) CreateOutputFile() (*os.File, string, error) {
	for {
		base, err := w.p.Text(PromptFileName)
		if err != nil {
			return nil, "", err
		}
		name := desktop.FileName(base)
		path := filepath.Join(w.opts.Dir, name)

		if _, err := os.Stat(path); err == nil {
			ok, err := w.p.Confirm(fmt.Sprintf("A file named %s already exists. Overwrite (y/n)? ", name))
			if err != nil {
				return nil, "", err
			}
			if !ok {
				slog.Debug("overwrite declined", "file", name)
				continue
			}
		}

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			fmt.Fprintf(w.p.Writer(), "Error creating file %s.  Exiting.\n", name)
			return nil, "", errors.NewReportedError(errors.Wrapf(err, "creating %s", name), errors.ExitSystem)
		}
		return f, name, nil
	}
}

// Review lists the collected values until the user enters 0. Entering a
// field's number collects that field again; other input is ignored.
func (w *Wizard) Review() error {
	for {
		w.p.Banner()
		w.printValues(w.p.Writer())

		choice, err := w.p.Int()
		if err != nil {
			return err
		}
		if choice < 0 || choice > w.reg.Len() {
			continue
		}
		if choice == 0 {
			return nil
		}
		if err := w.reg.CollectOne(w.reg.At(choice - 1).Name); err != nil {
			return err
		}
	}
}

func (w *Wizard) printValues(out io.Writer) {
	key := color.New(color.FgYellow)
	fmt.Fprintln(out, reviewHeading)
	fmt.Fprintln(out)
	for i, f := range w.reg.Fields() {
		fmt.Fprintf(out, "\t(%d) %s=%s\n", i+1, key.Sprint(f.Name), f.Value)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, reviewHelp)
}

// Install offers to move path into the destination directory. Failures are
// printed and do not fail the session.
func (w *Wizard) Install(path string) error {
	if !w.opts.AssumeYes {
		resp, err := w.p.Text(PromptInstall)
		if err != nil {
			return err
		}
		if !prompt.IsYes(resp) {
			return nil
		}
	}

	out := w.p.Writer()
	fmt.Fprintf(out, "Moving the file...\n\n")
	if _, err := w.installer.Move(path, w.opts.DestDir); err != nil {
		fmt.Fprintln(out, color.RedString("mv: %v", err))
		slog.Warn("install failed", "file", path, "dest", w.opts.DestDir, "error", err)
	}
	return nil
}

package install

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/thoreinstein/dtopr/internal/errors"
	"github.com/thoreinstein/dtopr/internal/paths"
	"github.com/thoreinstein/dtopr/pkg/fileutil"
)

// ErrSameFile indicates the source already is the destination.
var ErrSameFile = errors.New("source and destination are the same file")

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// Result describes what Move did.
type Result struct {
	Source string
	Dest   string
	// Backup is the name the previous destination was renamed to, if any.
	Backup string
	// Skipped is true when the user declined to overwrite.
	Skipped bool
}

// String renders r the way a verbose mv reports a move.
func (r *Result) String() string {
	switch {
	case r.Skipped:
		return fmt.Sprintf("not moved: %s", r.Source)
	case r.Backup != "":
		return fmt.Sprintf("renamed '%s' -> '%s' (backup: '%s')", r.Source, r.Dest, r.Backup)
	default:
		return fmt.Sprintf("renamed '%s' -> '%s'", r.Source, r.Dest)
	}
}

// Installer moves files like an interactive mv with numbered backups.
type Installer struct {
	confirm   Confirmer
	out       io.Writer
	assumeYes bool
	move      func(src, dst string) error
}

// Option configures an Installer.
type Option func(*Installer)

// WithConfirmer sets who is asked before an existing entry is replaced.
func WithConfirmer(c Confirmer) Option {
	return func(i *Installer) {
		i.confirm = c
	}
}

// WithOutput sets where the move report is written.
func WithOutput(w io.Writer) Option {
	return func(i *Installer) {
		i.out = w
	}
}

// WithAssumeYes replaces existing entries without asking.
func WithAssumeYes(yes bool) Option {
	return func(i *Installer) {
		i.assumeYes = yes
	}
}

// NewInstaller creates an Installer. Without a Confirmer, existing
// destinations are never replaced unless WithAssumeYes is set.
func NewInstaller(opts ...Option) *Installer {
	i := &Installer{out: io.Discard, move: fileutil.MoveFile}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Move moves src into destDir, creating destDir if needed.
//
// If a file with the same name already exists there the user is asked
// before it is replaced; the old file is kept as <name>.~N~ using the next
// free N. A declined overwrite is not an error and reports Skipped.
func (i *Installer) Move(src, destDir string) (*Result, error) {
	srcAbs, err := filepath.Abs(src)
	if err != nil {
		return nil, errors.Wrap(err, "resolving source")
	}
	if _, err := os.Stat(srcAbs); err != nil {
		return nil, errors.Wrapf(err, "source %s", src)
	}

	dir, err := ExpandDir(destDir)
	if err != nil {
		return nil, err
	}
	if err := paths.EnsureDir(dir, 0); err != nil {
		return nil, errors.Wrapf(err, "creating %s", dir)
	}

	res := &Result{Source: srcAbs, Dest: filepath.Join(dir, filepath.Base(srcAbs))}
	log := slog.With("src", res.Source, "dest", res.Dest)

	if same, err := sameFile(res.Source, res.Dest); err != nil {
		return nil, err
	} else if same {
		return res, errors.Wrapf(ErrSameFile, "'%s' and '%s'", res.Source, res.Dest)
	}

	if _, err := os.Lstat(res.Dest); err == nil {
		ok, err := i.approve(res.Dest)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.Debug("overwrite declined")
			res.Skipped = true
			fmt.Fprintln(i.out, res)
			return res, nil
		}

		backup, err := NextBackupName(res.Dest)
		if err != nil {
			return nil, err
		}
		if err := os.Rename(res.Dest, backup); err != nil {
			return nil, errors.Wrap(err, "backing up existing entry")
		}
		res.Backup = backup
		log.Debug("backed up existing entry", "backup", backup)
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", res.Dest)
	}

	if err := i.move(res.Source, res.Dest); err != nil {
		if res.Backup != "" {
			// Put the previous entry back so the destination is never left empty
			if rerr := os.Rename(res.Backup, res.Dest); rerr != nil {
				log.Error("restoring backup failed", "backup", res.Backup, "error", rerr)
				return nil, errors.Wrapf(err, "moving to %s (previous entry left at %s)", dir, res.Backup)
			}
		}
		return nil, errors.Wrapf(err, "moving to %s", dir)
	}

	log.Info("installed desktop entry")
	fmt.Fprintln(i.out, res)
	return res, nil
}

func (i *Installer) approve(dest string) (bool, error) {
	if i.assumeYes {
		return true, nil
	}
	if i.confirm == nil {
		return false, nil
	}
	return i.confirm.Confirm(fmt.Sprintf("overwrite '%s'? ", dest))
}

func sameFile(a, b string) (bool, error) {
	if a == b {
		return true, nil
	}
	ai, err := os.Stat(a)
	if err != nil {
		return false, errors.Wrap(err, "stat source")
	}
	bi, err := os.Stat(b)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "stat destination")
	}
	return os.SameFile(ai, bi), nil
}

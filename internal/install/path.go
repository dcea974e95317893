package install

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/dtopr/internal/errors"
	"github.com/thoreinstein/dtopr/internal/paths"
)

// maxBackups bounds the search for a free backup suffix.
const maxBackups = 10000

// ExpandDir expands a leading ~ and makes dir absolute.
func ExpandDir(dir string) (string, error) {
	if dir == "" {
		return "", errors.New("destination directory is empty")
	}
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := paths.ResolveHome()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "resolving destination")
	}
	return abs, nil
}

// BackupName returns the numbered backup name for path, e.g. foo.desktop.~2~.
func BackupName(path string, n int) string {
	return fmt.Sprintf("%s.~%d~", path, n)
}

// NextBackupName returns the first BackupName of path that does not exist.
// Numbering continues past the highest existing backup, as mv does.
func NextBackupName(path string) (string, error) {
	matches, err := filepath.Glob(globEscape(path) + ".~*~")
	if err != nil {
		return "", errors.Wrap(err, "listing backups")
	}

	highest := 0
	prefix := path + ".~"
	for _, m := range matches {
		var n int
		if _, err := fmt.Sscanf(strings.TrimPrefix(m, prefix), "%d~", &n); err == nil && n > highest {
			highest = n
		}
	}

	for n := highest + 1; n <= highest+maxBackups; n++ {
		name := BackupName(path, n)
		if _, err := os.Lstat(name); os.IsNotExist(err) {
			return name, nil
		}
	}
	return "", errors.Newf("no free backup name for %s", path)
}

func globEscape(s string) string {
	r := strings.NewReplacer(`*`, `\*`, `?`, `\?`, `[`, `\[`, `\`, `\\`)
	return r.Replace(s)
}

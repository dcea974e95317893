// Package editor launches the user's preferred text editor.
package editor

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/dtopr/internal/errors"
)

// Open launches the user's editor on path using the process's terminal.
func Open(path string) error {
	return OpenWithIO(path, os.Stdin, os.Stdout, os.Stderr)
}

// OpenWithIO launches the editor on path with the given streams and waits
// for it to exit. The editor command may carry arguments, e.g. "code --wait".
func OpenWithIO(path string, in io.Reader, out, errOut io.Writer) error {
	argv := strings.Fields(detectEditor())
	if len(argv) == 0 {
		return errors.New("no editor configured")
	}

	fmt.Fprintf(out, "Location: %s\n", path)
	slog.Debug("launching editor", "editor", argv[0], "path", path)

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = in
	cmd.Stdout = out
	cmd.Stderr = errOut

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", argv[0])
	}

	return nil
}

// detectEditor returns the editor command to use.
// Fallback chain: $DTOPR_EDITOR → $EDITOR → $VISUAL → nano → vi
func detectEditor() string {
	for _, env := range []string{"DTOPR_EDITOR", "EDITOR", "VISUAL"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}

	// nano is easier for beginners
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	return "vi"
}

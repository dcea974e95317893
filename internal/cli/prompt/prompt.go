// Package prompt provides the line-oriented prompts used by the dtopr wizard.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/fatih/color"

	"github.com/thoreinstein/dtopr/internal/errors"
	"github.com/thoreinstein/dtopr/internal/logging"
)

// ErrInputClosed is returned when standard input reaches EOF mid-prompt.
var ErrInputClosed = errors.New("input closed")

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

var bannerLines = []string{
	"***********************************************",
	"  WELCOME TO DTOPR: APP INSTALLATION UTILITY!",
	"***********************************************",
}

// Prompter reads answers one line at a time. Every prompt except [Prompter.Int]
// and [Prompter.Confirm] redraws the banner first.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	clear bool
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithClearScreen enables clearing the terminal before each banner.
func WithClearScreen(enabled bool) Option {
	return func(p *Prompter) {
		p.clear = enabled
	}
}

// NewPrompterWithIO creates a Prompter reading answers from r and rendering
// to w. The screen is never cleared unless WithClearScreen is given.
func NewPrompterWithIO(r io.Reader, w io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:  bufio.NewReader(r),
		out: w,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Writer returns the writer prompts are rendered to.
func (p *Prompter) Writer() io.Writer {
	return p.out
}

// Banner optionally clears the screen and prints the title block.
func (p *Prompter) Banner() {
	if p.clear {
		fmt.Fprint(p.out, clearScreen)
	}
	title := color.New(color.FgCyan, color.Bold)
	for _, l := range bannerLines {
		title.Fprintln(p.out, l)
	}
	fmt.Fprintln(p.out)
}

// Text shows the banner and prompt, then returns one line verbatim.
func (p *Prompter) Text(prompt string) (string, error) {
	p.Banner()
	fmt.Fprint(p.out, prompt)
	return p.readLine()
}

// Path asks until the first whitespace-delimited token of the answer names
// an existing file or directory. That token is made absolute; the rest of
// the answer, separator included, is kept as-is so commands can carry
// arguments. An empty answer resolves to the current directory.
func (p *Prompter) Path(prompt string) (string, error) {
	errmsg := ""
	for {
		resp, err := p.Text(prompt + errmsg)
		if err != nil {
			return "", err
		}

		first, rest := splitFirstToken(resp)
		abs, err := filepath.Abs(first)
		if err != nil {
			errmsg = color.RedString("%s is not a valid path.", first) + "\n"
			continue
		}

		resolved := abs + rest

		if _, err := os.Stat(abs); err == nil {
			return resolved, nil
		}
		slog.Debug("path does not exist", "path", abs)
		errmsg = color.RedString("%s does not exist.", resolved) + "\n"
	}
}

// splitFirstToken splits s after leading whitespace at the first whitespace
// rune. rest starts with that rune and is "" when nothing but whitespace
// follows the token.
func splitFirstToken(s string) (first, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	first, rest = s[:i], s[i:]
	if strings.TrimSpace(rest) == "" {
		rest = ""
	}
	return first, rest
}

var yesNo = map[string]string{
	"Y":   "true",
	"YES": "true",
	"N":   "false",
	"NO":  "false",
}

// YesNo asks until the answer is Y, YES, N or NO (any case) and returns
// "true" or "false".
func (p *Prompter) YesNo(prompt string) (string, error) {
	for {
		resp, err := p.Text(prompt)
		if err != nil {
			return "", err
		}
		if v, ok := yesNo[strings.ToUpper(strings.TrimSpace(resp))]; ok {
			return v, nil
		}
	}
}

// Confirm writes prompt without the banner and reports whether the answer
// was Y or YES. Any other answer, including an empty one, is a refusal.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	fmt.Fprint(p.out, prompt)
	resp, err := p.readLine()
	if err != nil {
		return false, err
	}
	return IsYes(resp), nil
}

// IsYes reports whether s is Y or YES, ignoring case and surrounding space.
func IsYes(s string) bool {
	return yesNo[strings.ToUpper(strings.TrimSpace(s))] == "true"
}

// Int reads one line and parses it as an integer. Unparseable input
// yields -1.
func (p *Prompter) Int() (int, error) {
	resp, err := p.readLine()
	if err != nil {
		return -1, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(resp))
	if err != nil {
		return -1, nil
	}
	return n, nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "reading input")
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	slog.Log(context.Background(), logging.LevelTrace, "read line", "line", line)
	return line, nil
}

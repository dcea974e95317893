package desktop

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrMalformedLine is returned for lines that are neither a group header,
// a comment, nor a Key=Value pair.
var ErrMalformedLine = errors.New("malformed line")

// Pair is one Key=Value line.
type Pair struct {
	Key   string `json:"key" yaml:"key" toml:"key"`
	Value string `json:"value" yaml:"value" toml:"value"`
	Line  int    `json:"-" yaml:"-" toml:"-"`
}

// Document is a parsed desktop entry file. Pairs keep file order.
type Document struct {
	Group string
	Pairs []Pair
	// Lines is the number of lines read, including blanks and comments.
	Lines int
}

// Parse reads a desktop entry. Blank lines and lines starting with '#' are
// skipped. Only the first group is read; a second group header ends parsing.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{}
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			continue
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			if doc.Group != "" {
				doc.Lines = n
				return doc, nil
			}
			doc.Group = trimmed[1 : len(trimmed)-1]
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, errors.Wrapf(ErrMalformedLine, "line %d: %q", n, line)
		}
		doc.Pairs = append(doc.Pairs, Pair{
			Key:   strings.TrimSpace(key),
			Value: value,
			Line:  n,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading desktop entry")
	}
	doc.Lines = n
	return doc, nil
}

// Get returns the value of the first pair with key.
func (d *Document) Get(key string) (string, bool) {
	for _, p := range d.Pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Map returns the pairs as a map. Later duplicates win.
func (d *Document) Map() map[string]string {
	m := make(map[string]string, len(d.Pairs))
	for _, p := range d.Pairs {
		m[p.Key] = p.Value
	}
	return m
}

// SplitCategories splits a Categories value into labels. The trailing ';'
// does not produce an empty label.
func SplitCategories(value string) []string {
	var out []string
	for c := range strings.SplitSeq(value, ";") {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

package desktop

import (
	"bufio"
	"bytes"
	"io"
	"slices"

	"github.com/cockroachdb/errors"
)

// OutputOrder returns the fields in the order they are written: the leading
// keys that are registered, then every other field in registry order.
func OutputOrder(r *Registry) []*Field {
	out := make([]*Field, 0, r.Len())
	for _, k := range leadingKeys {
		if f, ok := r.Get(k); ok {
			out = append(out, f)
		}
	}
	for _, f := range r.fields {
		if !slices.Contains(leadingKeys, f.Name) {
			out = append(out, f)
		}
	}
	return out
}

// Lines returns the document lines without terminators.
func Lines(r *Registry) []string {
	lines := Header()
	for _, f := range OutputOrder(r) {
		lines = append(lines, f.Name+"="+f.Value)
	}
	return lines
}

// Write emits the header followed by one Key=Value line per field.
// Fields with empty values are written too.
func Write(w io.Writer, r *Registry) error {
	bw := bufio.NewWriter(w)
	for _, line := range Lines(r) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return errors.Wrap(err, "writing desktop entry")
		}
	}
	return errors.Wrap(bw.Flush(), "flushing desktop entry")
}

// Encode returns the serialized document.
func Encode(r *Registry) []byte {
	var buf bytes.Buffer
	_ = Write(&buf, r) // bytes.Buffer writes do not fail
	return buf.Bytes()
}

package desktop

import (
	"log/slog"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for registry operations.
var (
	// ErrInvalidField is returned when a field name is not registered.
	ErrInvalidField = errors.New("invalid field")

	// ErrDuplicateField is returned when a field name is registered twice.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrNilCollector is returned when a field is registered without a collector.
	ErrNilCollector = errors.New("field has no collector")
)

// Collector obtains a single field value from the user.
type Collector interface {
	Collect(prompt string) (string, error)
}

// Field is one named, promptable piece of metadata destined for one line of
// the output document.
type Field struct {
	Name      string
	Prompt    string
	Collector Collector
	Value     string
}

// Registry is an ordered collection of fields keyed by name.
// The zero value is ready to use.
type Registry struct {
	fields []*Field
	index  map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a field with an empty value.
func (r *Registry) Add(name, prompt string, c Collector) error {
	if c == nil {
		return errors.Wrapf(ErrNilCollector, "adding %q", name)
	}
	if _, ok := r.index[name]; ok {
		return errors.Wrapf(ErrDuplicateField, "adding %q", name)
	}
	if r.index == nil {
		r.index = make(map[string]int)
	}
	r.index[name] = len(r.fields)
	r.fields = append(r.fields, &Field{Name: name, Prompt: prompt, Collector: c})
	return nil
}

// Len returns the number of registered fields.
func (r *Registry) Len() int {
	return len(r.fields)
}

// At returns the i-th field in registry order. It panics if i is out of range.
func (r *Registry) At(i int) *Field {
	return r.fields[i]
}

// Get returns the named field.
func (r *Registry) Get(name string) (*Field, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.fields[i], true
}

// Value returns the current value of the named field, or "" if unknown.
func (r *Registry) Value(name string) string {
	if f, ok := r.Get(name); ok {
		return f.Value
	}
	return ""
}

// Set overwrites the value of the named field without prompting.
func (r *Registry) Set(name, value string) error {
	f, ok := r.Get(name)
	if !ok {
		return errors.Wrapf(ErrInvalidField, "%q", name)
	}
	f.Value = value
	return nil
}

// Fields returns the fields in registry order.
func (r *Registry) Fields() []*Field {
	out := make([]*Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// CollectAll runs every field's collector once, in registry order.
func (r *Registry) CollectAll() error {
	for _, f := range r.fields {
		if err := r.collect(f); err != nil {
			return err
		}
	}
	return nil
}

// CollectOne re-runs the named field's collector, overwriting its value.
func (r *Registry) CollectOne(name string) error {
	f, ok := r.Get(name)
	if !ok {
		return errors.Wrapf(ErrInvalidField, "%q", name)
	}
	return r.collect(f)
}

func (r *Registry) collect(f *Field) error {
	v, err := f.Collector.Collect(f.Prompt)
	if err != nil {
		return errors.Wrapf(err, "collecting %s", f.Name)
	}
	f.Value = v
	slog.Debug("field collected", "field", f.Name, "value", v)
	return nil
}

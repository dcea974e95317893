package prompt

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/dtopr/internal/errors"
)

// EndSelectionLabel is shown as choice 0 in the numbered picker.
const EndSelectionLabel = "<End Selection>"

// MultiSelector lets the user pick zero or more labels. The result is the
// chosen labels in list order, each followed by ';'.
type MultiSelector interface {
	MultiSelect(prompt string, labels []string) (string, error)
}

// Selection tracks which labels are chosen. Choices are 1-based: choice N
// refers to label N-1, and 0 is reserved for ending the selection.
type Selection struct {
	labels   []string
	selected []bool
}

// NewSelection returns an empty selection over labels.
func NewSelection(labels []string) *Selection {
	return &Selection{
		labels:   slices.Clone(labels),
		selected: make([]bool, len(labels)),
	}
}

// Len returns the number of labels.
func (s *Selection) Len() int {
	return len(s.labels)
}

// Valid reports whether choice is in [0, Len()].
func (s *Selection) Valid(choice int) bool {
	return choice >= 0 && choice <= len(s.labels)
}

// Toggle flips choice in or out of the selection. It reports false and
// leaves the selection unchanged for 0 and out-of-range choices.
func (s *Selection) Toggle(choice int) bool {
	if choice < 1 || choice > len(s.labels) {
		return false
	}
	s.selected[choice-1] = !s.selected[choice-1]
	return true
}

// IsSelected reports whether choice is currently selected.
func (s *Selection) IsSelected(choice int) bool {
	if choice < 1 || choice > len(s.labels) {
		return false
	}
	return s.selected[choice-1]
}

// Labels returns the selected labels in list order.
func (s *Selection) Labels() []string {
	var out []string
	for i, l := range s.labels {
		if s.selected[i] {
			out = append(out, l)
		}
	}
	return out
}

// String serializes the selection as "A;B;", or "" when empty.
func (s *Selection) String() string {
	var sb strings.Builder
	for _, l := range s.Labels() {
		sb.WriteString(l)
		sb.WriteByte(';')
	}
	return sb.String()
}

// render draws the numbered list with '*' on selected entries.
func (s *Selection) render(p *Prompter, prompt string) {
	p.Banner()
	fmt.Fprintln(p.out, prompt)
	fmt.Fprintf(p.out, "\t(0) %s\n", EndSelectionLabel)
	for i, l := range s.labels {
		mark := ""
		if s.selected[i] {
			mark = "* "
		}
		fmt.Fprintf(p.out, "\t(%d) %s%s\n", i+1, mark, l)
	}
}

// MultiSelect runs the numbered picker until the user enters 0.
// Out-of-range and non-numeric input is ignored.
func (p *Prompter) MultiSelect(prompt string, labels []string) (string, error) {
	sel := NewSelection(labels)
	for {
		sel.render(p, prompt)
		choice, err := p.Int()
		if err != nil {
			return "", err
		}
		if !sel.Valid(choice) {
			continue
		}
		if choice == 0 {
			return sel.String(), nil
		}
		sel.Toggle(choice)
	}
}

// FindMultiFunc matches the signature of fuzzyfinder.FindMulti.
type FindMultiFunc func(slice any, itemFunc func(i int) string, opts ...fuzzyfinder.Option) ([]int, error)

// FuzzySelector picks labels with a full-screen fuzzy finder. Tab marks
// entries, Enter accepts, Esc accepts nothing.
type FuzzySelector struct {
	find FindMultiFunc
}

// NewFuzzySelector returns a FuzzySelector backed by go-fuzzyfinder.
func NewFuzzySelector() *FuzzySelector {
	return &FuzzySelector{find: fuzzyfinder.FindMulti}
}

// NewFuzzySelectorWithFinder returns a FuzzySelector using find, for testing.
func NewFuzzySelectorWithFinder(find FindMultiFunc) *FuzzySelector {
	return &FuzzySelector{find: find}
}

// MultiSelect implements MultiSelector.
func (f *FuzzySelector) MultiSelect(prompt string, labels []string) (string, error) {
	idxs, err := f.find(
		labels,
		func(i int) string { return labels[i] },
		fuzzyfinder.WithPromptString("> "),
		fuzzyfinder.WithHeader(strings.TrimSpace(prompt)),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return "", nil
		}
		return "", errors.Wrap(err, "fuzzy selection failed")
	}

	sel := NewSelection(labels)
	for _, i := range idxs {
		if !sel.IsSelected(i + 1) {
			sel.Toggle(i + 1)
		}
	}
	return sel.String(), nil
}

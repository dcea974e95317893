package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

// Format specifies the output format for validation reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the validation result to the output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(result)
	default:
		return r.reportText(result)
	}
}

// reportJSON writes the result as indented JSON.
func (r *Reporter) reportJSON(result *Result) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(result), "encoding JSON report")
}

// reportText writes the result as human-readable text, with errors,
// warnings and notes grouped under headings.
func (r *Reporter) reportText(result *Result) error {
	name := result.Source
	if name == "" {
		name = "entry"
	}

	if !result.HasErrors() && !result.HasWarnings() {
		fmt.Fprintln(r.out, color.GreenString("✓ %s is a valid desktop entry", name))
		r.printGroup("Notes:", result.Infos(), color.FgHiBlack)
		return nil
	}

	var summary []string
	if n := len(result.Errors()); n > 0 {
		summary = append(summary, color.RedString("%d error(s)", n))
	}
	if n := len(result.Warnings()); n > 0 {
		summary = append(summary, color.YellowString("%d warning(s)", n))
	}
	fmt.Fprintf(r.out, "%s: %s\n\n", name, strings.Join(summary, ", "))

	r.printGroup("Errors:", result.Errors(), color.FgRed)
	r.printGroup("Warnings:", result.Warnings(), color.FgYellow)
	r.printGroup("Notes:", result.Infos(), color.FgHiBlack)

	return nil
}

// printGroup writes a titled list of issues; empty groups are skipped.
func (r *Reporter) printGroup(title string, issues []Issue, c color.Attribute) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintln(r.out, title)
	for _, i := range issues {
		r.printIssue(i, c)
	}
	fmt.Fprintln(r.out)
}

// printIssue writes one bullet line for an issue.
func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	printer := color.New(c).SprintFunc()

	// Format:  • [line N] Key: message [value]
	var sb strings.Builder
	sb.WriteString("  • ")

	if i.Line > 0 {
		sb.WriteString(color.New(color.FgHiBlack).Sprintf("line %d ", i.Line))
	}
	if i.Key != "" {
		sb.WriteString(printer(i.Key))
		sb.WriteString(": ")
	}

	sb.WriteString(i.Message)

	if i.Value != nil {
		valStr := fmt.Sprintf("%v", i.Value)
		if len(valStr) > 50 {
			valStr = valStr[:47] + "..."
		}
		sb.WriteString(color.New(color.FgHiBlack).Sprintf(" [%s]", valStr))
	}

	fmt.Fprintln(r.out, sb.String())
}

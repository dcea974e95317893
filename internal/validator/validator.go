// Package validator provides the issue/result types shared by dtopr checks.
package validator

import (
	"fmt"
	"strings"
)

// Severity represents the impact of a validation issue.
type Severity int

const (
	// SeverityError indicates a desktop environment will likely reject the entry.
	SeverityError Severity = iota
	// SeverityWarning indicates a recommended but non-blocking issue.
	SeverityWarning
	// SeverityInfo indicates an informational note.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText renders the severity by name in JSON reports.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Issue represents a single validation problem.
type Issue struct {
	Severity Severity `json:"severity"`
	// Key is the desktop entry key with the issue (optional).
	Key string `json:"key,omitempty"`
	// Line is the 1-based line in the source file, 0 if not tied to a line.
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
	// Value is the offending value (optional).
	Value any `json:"value,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", i.Line)
	}
	if i.Key != "" {
		sb.WriteString("key \"")
		sb.WriteString(i.Key)
		sb.WriteString("\": ")
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", i.Value)
	}
	return sb.String()
}

// Result aggregates validation issues for one source.
type Result struct {
	Source string  `json:"source,omitempty"`
	Issues []Issue `json:"issues"`
}

// HasErrors returns true if any issue has SeverityError.
func (r *Result) HasErrors() bool {
	return len(r.Errors()) > 0
}

// HasWarnings returns true if any issue has SeverityWarning.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings()) > 0
}

// Add appends an issue.
func (r *Result) Add(sev Severity, key string, line int, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: sev,
		Key:      key,
		Line:     line,
		Message:  message,
		Value:    value,
	})
}

// AddError adds an error issue to the result.
func (r *Result) AddError(key string, line int, message string, value any) {
	r.Add(SeverityError, key, line, message, value)
}

// AddWarning adds a warning issue to the result.
func (r *Result) AddWarning(key string, line int, message string, value any) {
	r.Add(SeverityWarning, key, line, message, value)
}

// AddInfo adds an info issue to the result.
func (r *Result) AddInfo(key string, line int, message string, value any) {
	r.Add(SeverityInfo, key, line, message, value)
}

// Errors returns all issues with SeverityError.
func (r *Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns all issues with SeverityWarning.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

// Infos returns all issues with SeverityInfo.
func (r *Result) Infos() []Issue {
	return r.filter(SeverityInfo)
}

func (r *Result) filter(sev Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == sev {
			res = append(res, i)
		}
	}
	return res
}

// Package doctor checks that dtopr can run and that installed entries will
// be found by desktop environments.
package doctor

import "time"

// Check is a single diagnostic.
type Check interface {
	Name() string
	Category() string
	Run() *CheckResult
}

// Runner executes checks in registration order.
type Runner struct {
	checks []Check
}

// NewRunner creates a runner for checks.
func NewRunner(checks ...Check) *Runner {
	return &Runner{checks: checks}
}

// AddCheck appends c to the run.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes every check and returns the report. Results missing a name
// or category inherit them from their check.
func (r *Runner) Run() *Report {
	report := &Report{
		Timestamp: time.Now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		result := check.Run()
		if result.Name == "" {
			result.Name = check.Name()
		}
		if result.Category == "" {
			result.Category = check.Category()
		}
		report.Results = append(report.Results, result)
		report.Summary.add(result.Status)
	}

	return report
}

// Report is the outcome of a doctor run.
type Report struct {
	Timestamp time.Time      `json:"timestamp"`
	Results   []*CheckResult `json:"results"`
	Summary   Summary        `json:"summary"`
}

// HasErrors reports whether any check failed.
func (r *Report) HasErrors() bool {
	return r.Summary.Errors > 0
}

// HasWarnings reports whether any check warned.
func (r *Report) HasWarnings() bool {
	return r.Summary.Warnings > 0
}

// Worst returns the highest severity in the report, SeverityPass when empty.
func (r *Report) Worst() Severity {
	worst := SeverityPass
	for _, res := range r.Results {
		worst = max(worst, res.Status)
	}
	return worst
}

// Problems returns the results at or above minimum, in run order.
func (r *Report) Problems(minimum Severity) []*CheckResult {
	var out []*CheckResult
	for _, res := range r.Results {
		if res.Status >= minimum {
			out = append(out, res)
		}
	}
	return out
}

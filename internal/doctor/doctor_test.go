package doctor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCheck struct {
	name   string
	result CheckResult
}

func (s *stubCheck) Name() string     { return s.name }
func (s *stubCheck) Category() string { return "test" }
func (s *stubCheck) Run() *CheckResult {
	r := s.result
	return &r
}

func TestRunner_Run(t *testing.T) {
	tests := []struct {
		name         string
		statuses     []Severity
		wantSummary  Summary
		wantErrors   bool
		wantWarnings bool
		wantWorst    Severity
	}{
		{
			name: "empty runner",
		},
		{
			name:        "all pass",
			statuses:    []Severity{SeverityPass, SeverityPass},
			wantSummary: Summary{Passed: 2},
		},
		{
			name:         "mixed",
			statuses:     []Severity{SeverityPass, SeverityInfo, SeverityWarning, SeverityError},
			wantSummary:  Summary{Passed: 1, Info: 1, Warnings: 1, Errors: 1},
			wantErrors:   true,
			wantWarnings: true,
			wantWorst:    SeverityError,
		},
		{
			name:         "warnings only",
			statuses:     []Severity{SeverityWarning},
			wantSummary:  Summary{Warnings: 1},
			wantWarnings: true,
			wantWorst:    SeverityWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner()
			for _, s := range tt.statuses {
				r.AddCheck(&stubCheck{name: s.String(), result: CheckResult{Status: s}})
			}

			report := r.Run()
			assert.Len(t, report.Results, len(tt.statuses))
			assert.Equal(t, tt.wantSummary, report.Summary)
			assert.Equal(t, tt.wantErrors, report.HasErrors())
			assert.Equal(t, tt.wantWarnings, report.HasWarnings())
			assert.Equal(t, tt.wantWorst, report.Worst())
			assert.False(t, report.Timestamp.IsZero())
		})
	}
}

func TestRunner_FillsNameAndCategory(t *testing.T) {
	report := NewRunner(&stubCheck{name: "probe"}).Run()

	require.Len(t, report.Results, 1)
	assert.Equal(t, "probe", report.Results[0].Name)
	assert.Equal(t, "test", report.Results[0].Category)
}

func TestReport_Problems(t *testing.T) {
	r := NewRunner(
		&stubCheck{name: "a", result: CheckResult{Status: SeverityPass}},
		&stubCheck{name: "b", result: CheckResult{Status: SeverityError}},
		&stubCheck{name: "c", result: CheckResult{Status: SeverityInfo}},
		&stubCheck{name: "d", result: CheckResult{Status: SeverityWarning}},
	)
	report := r.Run()

	names := func(rs []*CheckResult) []string {
		var out []string
		for _, res := range rs {
			out = append(out, res.Name)
		}
		return out
	}
	assert.Equal(t, []string{"b", "d"}, names(report.Problems(SeverityWarning)))
	assert.Equal(t, []string{"a", "b", "c", "d"}, names(report.Problems(SeverityPass)))
	assert.Empty(t, report.Problems(SeverityError+1))
}

func TestSeverity_JSON(t *testing.T) {
	data, err := json.Marshal(CheckResult{Name: "x", Status: SeverityWarning})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"warning"`)
}

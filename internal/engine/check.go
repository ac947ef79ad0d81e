package engine

import (
	"context"

	"github.com/leapstack-labs/advent/internal/loader"
)

// Report is the outcome of comparing solved answers against fixtures.
type Report struct {
	Results []Result
}

// Counts tallies results by status.
func (r *Report) Counts() map[string]int {
	counts := map[string]int{
		StatusOK:        0,
		StatusMismatch:  0,
		StatusError:     0,
		StatusUnchecked: 0,
	}
	for _, res := range r.Results {
		counts[res.Status()]++
	}
	return counts
}

// Passed reports whether every checked part matched. A part with an expected
// answer that failed to solve counts as a failure, and so does a malformed
// answers.yaml; other unchecked parts are ignored.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if IsFixtureError(res) || (res.Checked() && !res.Match()) {
			return false
		}
	}
	return true
}

// Check solves the given days and compares them with their answers.yaml.
// With no days, every day that has a fixture file is checked.
func (e *Engine) Check(ctx context.Context, days []int) (*Report, error) {
	if len(days) == 0 {
		for _, d := range e.knownDays() {
			if loader.Exists(loader.AnswersPath(e.inputsDir, d)) {
				days = append(days, d)
			}
		}
	}
	if len(days) == 0 {
		return nil, errNoDays
	}

	results, err := e.SolveDays(ctx, days)
	if err != nil {
		return nil, err
	}

	report := &Report{Results: results}
	e.logger.Info("check complete", "days", len(days), "passed", report.Passed())
	return report, nil
}

// DayInfo describes one day for listings.
type DayInfo struct {
	Day        int
	Title      string
	Parts      []int
	HasInput   bool
	HasAnswers bool
}

// Catalog lists registered days and days with inputs, in day order.
func (e *Engine) Catalog() []DayInfo {
	parts := make(map[int][]int)
	titles := make(map[int]string)
	for _, entry := range e.registry.Entries() {
		parts[entry.Day] = append(parts[entry.Day], entry.Part)
		titles[entry.Day] = entry.Title
	}

	days := e.knownDays()
	out := make([]DayInfo, 0, len(days))
	for _, d := range days {
		out = append(out, DayInfo{
			Day:        d,
			Title:      titles[d],
			Parts:      parts[d],
			HasInput:   loader.Exists(loader.InputPath(e.inputsDir, d)),
			HasAnswers: loader.Exists(loader.AnswersPath(e.inputsDir, d)),
		})
	}
	return out
}

package output

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/advent/internal/engine"
	"github.com/leapstack-labs/advent/internal/puzzle"
)

// ResultInfo is the JSON form of one solved part.
type ResultInfo struct {
	Day       int            `json:"day"`
	Part      int            `json:"part"`
	Status    string         `json:"status"`
	Answer    *puzzle.Answer `json:"answer,omitempty"`
	Expected  *puzzle.Answer `json:"expected,omitempty"`
	Error     string         `json:"error,omitempty"`
	ElapsedMS float64        `json:"elapsed_ms"`
	Source    string         `json:"source,omitempty"`
}

// ResultSummary counts results by status.
type ResultSummary struct {
	Total     int  `json:"total"`
	OK        int  `json:"ok"`
	Mismatch  int  `json:"mismatch"`
	Errors    int  `json:"errors"`
	Unchecked int  `json:"unchecked"`
	Passed    bool `json:"passed"`
}

// ResultsOutput is the JSON document written for solve commands.
type ResultsOutput struct {
	Results []ResultInfo  `json:"results"`
	Summary ResultSummary `json:"summary"`
}

// NewResultsOutput converts engine results for JSON output.
func NewResultsOutput(results []engine.Result) ResultsOutput {
	out := ResultsOutput{
		Results: make([]ResultInfo, 0, len(results)),
		Summary: ResultSummary{Total: len(results), Passed: true},
	}
	for _, res := range results {
		info := ResultInfo{
			Day:       res.Day,
			Part:      res.Part,
			Status:    res.Status(),
			Expected:  res.Expected,
			ElapsedMS: float64(res.Elapsed.Microseconds()) / 1000,
			Source:    res.Source,
		}
		if res.Err != nil {
			info.Error = ErrorMessage(res)
		} else {
			answer := res.Answer
			info.Answer = &answer
		}
		out.Results = append(out.Results, info)

		switch info.Status {
		case engine.StatusOK:
			out.Summary.OK++
		case engine.StatusMismatch:
			out.Summary.Mismatch++
		case engine.StatusError:
			out.Summary.Errors++
		default:
			out.Summary.Unchecked++
		}
		if res.Checked() && !res.Match() {
			out.Summary.Passed = false
		}
	}
	return out
}

// ErrorMessage phrases a solve error for the Err: line.
func ErrorMessage(res engine.Result) string {
	switch {
	case engine.IsUnsolved(res):
		return "No solution was added to solver!"
	case engine.IsMissingInput(res), engine.IsFixtureError(res):
		return res.Err.Error()
	default:
		return "implementation failed with: " + res.Err.Error()
	}
}

// FormatResultLine renders "dayNN partNN: <answer>" or
// "dayNN partNN: Err: <message>" without styling.
func FormatResultLine(res engine.Result) string {
	if res.Err != nil {
		return fmt.Sprintf("%s: Err: %s", res.Key, ErrorMessage(res))
	}
	return fmt.Sprintf("%s: %s", res.Key, res.Answer)
}

// Results writes solve results in the effective mode.
func (r *Renderer) Results(results []engine.Result) error {
	if r.EffectiveMode() == ModeJSON {
		return r.JSON(NewResultsOutput(results))
	}
	for _, res := range results {
		r.Println(r.resultLine(res))
	}
	return nil
}

// resultLine is FormatResultLine plus fixture verdicts. Text mode adds
// verdict marks and timings, colored only on a terminal.
func (r *Renderer) resultLine(res engine.Result) string {
	if r.EffectiveMode() != ModeText {
		line := FormatResultLine(res)
		if res.Status() == engine.StatusMismatch {
			line += fmt.Sprintf(" (expected %s)", res.Expected)
		}
		return line
	}

	s := r.styles
	var b strings.Builder
	b.WriteString(s.Key.Render(res.Key.String()))
	b.WriteString(": ")
	if res.Err != nil {
		b.WriteString(s.Error.Render("Err: " + ErrorMessage(res)))
		return b.String()
	}
	b.WriteString(s.Answer.Render(res.Answer.String()))

	switch res.Status() {
	case engine.StatusOK:
		b.WriteString(" " + s.Success.Render("✓"))
	case engine.StatusMismatch:
		b.WriteString(" " + s.Warning.Render(fmt.Sprintf("✗ expected %s", res.Expected)))
	}
	b.WriteString(" " + s.Muted.Render("("+FormatDuration(res.Elapsed)+")"))
	return b.String()
}

// CheckSummary writes the totals of a check run.
func (r *Renderer) CheckSummary(report *engine.Report) error {
	summary := NewResultsOutput(report.Results).Summary
	if r.EffectiveMode() == ModeJSON {
		return nil
	}

	line := fmt.Sprintf("%d ok, %d mismatch, %d errors, %d unchecked",
		summary.OK, summary.Mismatch, summary.Errors, summary.Unchecked)
	if r.EffectiveMode() == ModeMarkdown {
		r.Println("")
		r.Println(FormatKeyValue("Summary", line))
		return nil
	}
	r.Println("")
	if summary.Passed {
		r.Success(line)
	} else {
		r.Println(r.styles.Error.Render(line))
	}
	return nil
}

package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/advent/internal/engine"
	"github.com/leapstack-labs/advent/internal/state"
)

// DayInfo is the JSON form of one catalog entry.
type DayInfo struct {
	Day        int    `json:"day"`
	Title      string `json:"title,omitempty"`
	Parts      []int  `json:"parts"`
	HasInput   bool   `json:"has_input"`
	HasAnswers bool   `json:"has_answers"`
}

// ListOutput is the JSON document written by list.
type ListOutput struct {
	InputsDir string    `json:"inputs_dir"`
	Days      []DayInfo `json:"days"`
}

// SolveInfo is the JSON form of one history row.
type SolveInfo struct {
	ID        string  `json:"id"`
	Day       int     `json:"day"`
	Part      int     `json:"part"`
	Answer    string  `json:"answer,omitempty"`
	Error     string  `json:"error,omitempty"`
	Source    string  `json:"source,omitempty"`
	ElapsedMS float64 `json:"elapsed_ms"`
	SolvedAt  string  `json:"solved_at"`
}

// HistoryOutput is the JSON document written by history.
type HistoryOutput struct {
	Solves []SolveInfo `json:"solves"`
}

// newTable returns a table writer in the house style.
func (r *Renderer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	return t
}

// render writes t as a box table on a terminal and as markdown otherwise.
func (r *Renderer) render(t table.Writer) {
	if r.EffectiveMode() == ModeMarkdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}

// Catalog writes the list of known days.
func (r *Renderer) Catalog(inputsDir string, days []engine.DayInfo) error {
	if r.EffectiveMode() == ModeJSON {
		out := ListOutput{InputsDir: inputsDir, Days: make([]DayInfo, 0, len(days))}
		for _, d := range days {
			parts := d.Parts
			if parts == nil {
				parts = []int{}
			}
			out.Days = append(out.Days, DayInfo{
				Day:        d.Day,
				Title:      d.Title,
				Parts:      parts,
				HasInput:   d.HasInput,
				HasAnswers: d.HasAnswers,
			})
		}
		return r.JSON(out)
	}

	r.Header(1, fmt.Sprintf("Solutions (%d days)", len(days)))

	t := r.newTable()
	t.AppendHeader(table.Row{"Day", "Title", "Parts", "Input", "Answers"})
	for _, d := range days {
		parts := make([]string, len(d.Parts))
		for i, p := range d.Parts {
			parts[i] = fmt.Sprint(p)
		}
		partsCol := strings.Join(parts, ",")
		if partsCol == "" {
			partsCol = "-"
		}
		t.AppendRow(table.Row{
			fmt.Sprintf("%02d", d.Day),
			d.Title,
			partsCol,
			FormatBool(d.HasInput),
			FormatBool(d.HasAnswers),
		})
	}
	r.render(t)
	return nil
}

// History writes recorded solves, newest first.
func (r *Renderer) History(solves []*state.Solve) error {
	if r.EffectiveMode() == ModeJSON {
		out := HistoryOutput{Solves: make([]SolveInfo, 0, len(solves))}
		for _, s := range solves {
			out.Solves = append(out.Solves, SolveInfo{
				ID:        s.ID,
				Day:       s.Day,
				Part:      s.Part,
				Answer:    s.Answer,
				Error:     s.Error,
				Source:    s.Source,
				ElapsedMS: float64(s.Elapsed.Microseconds()) / 1000,
				SolvedAt:  s.SolvedAt.Format(time.RFC3339),
			})
		}
		return r.JSON(out)
	}

	if len(solves) == 0 {
		r.Muted("No solves recorded")
		return nil
	}

	t := r.newTable()
	t.AppendHeader(table.Row{"Solved At", "Day", "Part", "Answer", "Time", "Source"})
	for _, s := range solves {
		answer := s.Answer
		if s.Failed() {
			answer = "Err: " + s.Error
		}
		t.AppendRow(table.Row{
			s.SolvedAt.Local().Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%02d", s.Day),
			fmt.Sprintf("%02d", s.Part),
			answer,
			FormatDuration(s.Elapsed),
			s.Source,
		})
	}
	r.render(t)
	return nil
}

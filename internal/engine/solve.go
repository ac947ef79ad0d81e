package engine

import (
	"context"
	"errors"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/advent/internal/loader"
	"github.com/leapstack-labs/advent/internal/registry"
	"github.com/leapstack-labs/advent/internal/state"
)

// SolveAll solves both parts of every day from registry.FirstDay to
// registry.LastDay. Days run concurrently, bounded by the configured
// parallelism; results come back in day order. A day without input or
// without a solution yields error results instead of failing the run.
func (e *Engine) SolveAll(ctx context.Context) ([]Result, error) {
	days := make([]int, 0, registry.LastDay-registry.FirstDay+1)
	for d := registry.FirstDay; d <= registry.LastDay; d++ {
		days = append(days, d)
	}
	return e.SolveDays(ctx, days)
}

// SolveDays solves both parts of each listed day. A day whose answers.yaml
// cannot be loaded reports the fixture error for each part; the other days
// are unaffected.
func (e *Engine) SolveDays(ctx context.Context, days []int) ([]Result, error) {
	for _, day := range days {
		if _, err := partsFor(day, 0); err != nil {
			return nil, err
		}
	}

	perDay := make([][]Result, len(days))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)

	for i, day := range days {
		g.Go(func() error {
			results, err := e.SolveDay(ctx, day, 0)
			if err != nil {
				e.logger.Warn("day failed", "day", day, "error", err)
				results = e.failAll(day, []int{1, 2}, loader.AnswersPath(e.inputsDir, day), err)
			}
			perDay[i] = results
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Result
	for _, results := range perDay {
		out = append(out, results...)
	}
	return out, nil
}

// SolveDay solves a day from its default input file. Part 0 means both parts.
func (e *Engine) SolveDay(ctx context.Context, day, part int) ([]Result, error) {
	parts, err := partsFor(day, part)
	if err != nil {
		return nil, err
	}

	expected, err := loader.LoadExpected(e.inputsDir, day)
	if err != nil {
		return nil, err
	}

	path := loader.InputPath(e.inputsDir, day)
	content, err := loader.ReadInput(path, nil)
	if err != nil {
		e.logger.Debug("input unavailable", "day", day, "path", path, "error", err)
		return e.failAll(day, parts, path, err), nil
	}

	return e.solve(ctx, day, parts, path, content, expected), nil
}

// SolveFile solves a day from an explicit path; "-" reads stdin.
// Fixtures are not consulted since the file need not be the day's input.
func (e *Engine) SolveFile(ctx context.Context, day, part int, path string) ([]Result, error) {
	parts, err := partsFor(day, part)
	if err != nil {
		return nil, err
	}

	content, err := loader.ReadInput(path, e.stdin)
	if err != nil {
		return nil, err
	}
	return e.solve(ctx, day, parts, path, content, nil), nil
}

// SolveInput solves a day from in-memory content.
func (e *Engine) SolveInput(ctx context.Context, day, part int, source, content string) ([]Result, error) {
	parts, err := partsFor(day, part)
	if err != nil {
		return nil, err
	}
	return e.solve(ctx, day, parts, source, content, nil), nil
}

// solve runs each part in order on the calling goroutine.
func (e *Engine) solve(ctx context.Context, day int, parts []int, source, content string, expected loader.Expected) []Result {
	results := make([]Result, 0, len(parts))
	for _, part := range parts {
		r := Result{
			Key:    registry.Key{Day: day, Part: part},
			Source: source,
		}
		if want, ok := expected.Get(part); ok {
			r.Expected = &want
		}

		if err := ctx.Err(); err != nil {
			r.Err = err
			results = append(results, r)
			continue
		}

		entry, err := e.registry.Lookup(day, part)
		if err != nil {
			r.Err = err
			results = append(results, r)
			continue
		}

		start := e.now()
		r.Answer, r.Err = entry.Solve(content)
		r.Elapsed = e.now().Sub(start)

		e.logger.Debug("solved", "key", r.Key.String(), "elapsed", r.Elapsed, "status", r.Status())
		e.record(ctx, r)
		results = append(results, r)
	}
	return results
}

// failAll reports the same error for every part of a day.
func (e *Engine) failAll(day int, parts []int, source string, err error) []Result {
	results := make([]Result, len(parts))
	for i, part := range parts {
		results[i] = Result{
			Key:    registry.Key{Day: day, Part: part},
			Source: source,
			Err:    err,
		}
	}
	return results
}

// record stores a solver run in the history. Failures are logged, not returned.
func (e *Engine) record(ctx context.Context, r Result) {
	if e.store == nil {
		return
	}

	s := &state.Solve{
		Day:     r.Day,
		Part:    r.Part,
		Source:  r.Source,
		Elapsed: r.Elapsed,
	}
	if r.Err != nil {
		s.Error = r.Err.Error()
	} else {
		s.Answer = r.Answer.String()
		s.Numeric = r.Answer.IsNum()
	}

	if err := e.store.RecordSolve(ctx, s); err != nil {
		e.logger.Warn("failed to record solve", "key", r.Key.String(), "error", err)
	}
}

// knownDays returns registered days plus any day with an inputs directory.
func (e *Engine) knownDays() []int {
	seen := make(map[int]struct{})
	for _, d := range e.registry.Days() {
		seen[d] = struct{}{}
	}
	for d := registry.FirstDay; d <= registry.LastDay; d++ {
		if info, err := os.Stat(loader.DayDir(e.inputsDir, d)); err == nil && info.IsDir() {
			seen[d] = struct{}{}
		}
	}

	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// partsFor expands part 0 into both parts and validates the rest.
func partsFor(day, part int) ([]int, error) {
	if part == 0 {
		if err := (registry.Key{Day: day, Part: 1}).Validate(); err != nil {
			return nil, err
		}
		return []int{1, 2}, nil
	}
	if err := (registry.Key{Day: day, Part: part}).Validate(); err != nil {
		return nil, err
	}
	return []int{part}, nil
}

// IsMissingInput reports whether a result failed because its input file
// does not exist.
func IsMissingInput(r Result) bool {
	return errors.Is(r.Err, loader.ErrInputNotFound)
}

// IsFixtureError reports whether a result failed because the day's
// answers.yaml is malformed.
func IsFixtureError(r Result) bool {
	var parseErr *loader.AnswersParseError
	return errors.As(r.Err, &parseErr)
}

// IsUnsolved reports whether no solution is registered for the result's key.
func IsUnsolved(r Result) bool {
	return errors.Is(r.Err, registry.ErrNoSolution)
}

// errNoDays is returned by Check when there is nothing to compare.
var errNoDays = errors.New("no answers.yaml fixtures found")

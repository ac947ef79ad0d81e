package engine

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/advent/internal/loader"
	"github.com/leapstack-labs/advent/internal/testutil"
)

func TestCheck(t *testing.T) {
	dir := testutil.WriteInputs(t, map[int]testutil.Day{
		1: {Input: "a\nb\n", Answers: "part1: 2\npart2: a\n"},
		2: {Input: "1 2\n", Answers: "part1: 4\n"},
		3: {Input: "x\n"},
	})
	e := newTestEngine(t, dir, nil)
	ctx := context.Background()

	t.Run("all fixtures", func(t *testing.T) {
		report, err := e.Check(ctx, nil)
		require.NoError(t, err)
		assert.False(t, report.Passed())

		// day 3 has no fixture so it is not checked
		var statuses []string
		for _, r := range report.Results {
			statuses = append(statuses, r.Key.String()+" "+r.Status())
		}
		want := []string{
			"day01 part01 ok",
			"day01 part02 ok",
			"day02 part01 mismatch",
			"day02 part02 error",
		}
		if diff := cmp.Diff(want, statuses); diff != "" {
			t.Errorf("Check() mismatch (-want +got):\n%s", diff)
		}

		counts := report.Counts()
		assert.Equal(t, 2, counts[StatusOK])
		assert.Equal(t, 1, counts[StatusMismatch])
		assert.Equal(t, 1, counts[StatusError])
		assert.Equal(t, 0, counts[StatusUnchecked])
	})

	t.Run("selected day passes", func(t *testing.T) {
		report, err := e.Check(ctx, []int{1})
		require.NoError(t, err)
		assert.True(t, report.Passed())
	})

	t.Run("errors without fixture do not fail", func(t *testing.T) {
		report, err := e.Check(ctx, []int{3})
		require.NoError(t, err)
		assert.True(t, report.Passed())
		assert.Equal(t, 1, report.Counts()[StatusUnchecked])
	})
}

func TestCheck_MalformedFixtureFails(t *testing.T) {
	dir := testutil.WriteInputs(t, map[int]testutil.Day{
		1: {Input: "a\n", Answers: "part1: 1\n"},
		2: {Input: "1\n", Answers: "part1: [\n"},
	})
	e := newTestEngine(t, dir, nil)

	report, err := e.Check(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, report.Results, 4)
	assert.Equal(t, StatusOK, report.Results[0].Status())
	assert.False(t, report.Passed())
}

func TestCheck_NoFixtures(t *testing.T) {
	dir := testutil.WriteInputs(t, map[int]testutil.Day{
		1: {Input: "a\n"},
	})
	e := newTestEngine(t, dir, nil)

	_, err := e.Check(context.Background(), nil)
	assert.ErrorIs(t, err, errNoDays)
}

func TestCatalog(t *testing.T) {
	dir := testutil.WriteInputs(t, map[int]testutil.Day{
		1: {Input: "a\n", Answers: "part1: 1\n"},
		9: {Answers: "part1: 1\n"},
	})
	e := newTestEngine(t, dir, nil)

	want := []DayInfo{
		{Day: 1, Title: "Counting", Parts: []int{1, 2}, HasInput: true, HasAnswers: true},
		{Day: 2, Title: "Summing", Parts: []int{1, 2}},
		{Day: 3, Parts: []int{1}},
		{Day: 9, HasAnswers: true},
	}
	if diff := cmp.Diff(want, e.Catalog()); diff != "" {
		t.Errorf("Catalog() mismatch (-want +got):\n%s", diff)
	}
}

func TestWatch(t *testing.T) {
	dir := testutil.WriteInputs(t, map[int]testutil.Day{
		1: {Input: "a\n"},
	})
	e := newTestEngine(t, dir, nil)

	ctx, cancel := context.WithCancel(context.Background())
	updates := make(chan []Result, 4)
	done := make(chan error, 1)
	go func() {
		done <- e.Watch(ctx, 1, 1, func(results []Result) {
			updates <- results
		})
	}()

	next := func() []Result {
		t.Helper()
		select {
		case results := <-updates:
			return results
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for watch results")
			return nil
		}
	}

	first := next()
	require.Len(t, first, 1)
	assert.Equal(t, "1", first[0].Answer.String())

	require.NoError(t, os.WriteFile(loader.InputPath(dir, 1), []byte("a\nb\nc\n"), 0o644))
	second := next()
	require.Len(t, second, 1)
	assert.Equal(t, "3", second[0].Answer.String())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatch_InvalidKey(t *testing.T) {
	e := newTestEngine(t, t.TempDir(), nil)
	err := e.Watch(context.Background(), 0, 1, func([]Result) {})
	assert.Error(t, err)
}

package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/leapstack-labs/advent/internal/loader"
)

// watchDebounce coalesces the burst of events editors emit for one save.
const watchDebounce = 100 * time.Millisecond

// Watch solves a day, then solves it again each time its input.txt or
// answers.yaml changes. fn receives every batch of results. Watch returns
// nil when ctx is cancelled.
func (e *Engine) Watch(ctx context.Context, day, part int, fn func([]Result)) error {
	if _, err := partsFor(day, part); err != nil {
		return err
	}

	dir := loader.DayDir(e.inputsDir, day)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors replace files on save, so watch the directory rather than the file.
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if err := e.solveAndReport(ctx, day, part, fn); err != nil {
		return err
	}

	e.logger.Info("watching for changes", "dir", dir)
	return e.watchLoop(ctx, watcher, day, part, fn)
}

// watchLoop handles file system events until ctx is done.
func (e *Engine) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, day, part int, fn func([]Result)) error {
	var (
		debounce *time.Timer
		fire     <-chan time.Time
	)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only handle write/create events for the day's files
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name := filepath.Base(event.Name)
			if name != loader.InputFile && name != loader.AnswersFile {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.NewTimer(watchDebounce)
			fire = debounce.C
			e.logger.Debug("change detected", "file", name)

		case <-fire:
			fire = nil
			if err := e.solveAndReport(ctx, day, part, fn); err != nil {
				// A half-written answers.yaml should not end the session.
				e.logger.Warn("re-solve failed", "day", day, "error", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Warn("watcher error", "error", err)
		}
	}
}

func (e *Engine) solveAndReport(ctx context.Context, day, part int, fn func([]Result)) error {
	results, err := e.SolveDay(ctx, day, part)
	if err != nil {
		return err
	}
	fn(results)
	return nil
}

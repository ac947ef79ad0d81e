// Package registry maps (day, part) pairs to the functions that solve them.
// Day packages add themselves from init(), so importing a day is enough to
// make it runnable from the CLI.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/leapstack-labs/advent/internal/puzzle"
)

// Bounds of an Advent of Code event.
const (
	FirstDay = 1
	LastDay  = 25
	MaxPart  = 2
)

var (
	// ErrNoSolution is returned when nothing was registered for a day/part.
	ErrNoSolution = errors.New("no solution was added to solver")

	// ErrInvalidKey is returned for days or parts outside the event bounds.
	ErrInvalidKey = errors.New("invalid day or part")
)

// Key identifies one puzzle part.
type Key struct {
	Day  int
	Part int
}

// String renders the key the way solve output prefixes lines: day05 part02.
func (k Key) String() string {
	return fmt.Sprintf("day%02d part%02d", k.Day, k.Part)
}

// Validate checks the key against the event bounds.
func (k Key) Validate() error {
	if k.Day < FirstDay || k.Day > LastDay {
		return fmt.Errorf("%w: day %d not in %d..%d", ErrInvalidKey, k.Day, FirstDay, LastDay)
	}
	if k.Part < 1 || k.Part > MaxPart {
		return fmt.Errorf("%w: part %d not in 1..%d", ErrInvalidKey, k.Part, MaxPart)
	}
	return nil
}

// Entry is a registered solution.
type Entry struct {
	Key
	Title string
	Solve puzzle.PartFunc
}

// Registry stores solutions keyed by day and part.
type Registry struct {
	mu      sync.RWMutex
	entries map[Key]Entry
	titles  map[int]string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[Key]Entry),
		titles:  make(map[int]string),
	}
}

// Register adds a solution. Registering the same day/part twice is an error.
func (r *Registry) Register(day, part int, fn puzzle.PartFunc) error {
	key := Key{Day: day, Part: part}
	if err := key.Validate(); err != nil {
		return err
	}
	if fn == nil {
		return fmt.Errorf("%s: nil solve function", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[key]; exists {
		return fmt.Errorf("%s: already registered", key)
	}
	r.entries[key] = Entry{Key: key, Solve: fn}
	return nil
}

// SetTitle records the puzzle name for a day; it shows up in listings.
func (r *Registry) SetTitle(day int, title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.titles[day] = title
}

// Lookup returns the solution for day/part.
func (r *Registry) Lookup(day, part int) (Entry, error) {
	key := Key{Day: day, Part: part}
	if err := key.Validate(); err != nil {
		return Entry{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[key]
	if !ok {
		return Entry{}, fmt.Errorf("%s: %w", key, ErrNoSolution)
	}
	entry.Title = r.titles[day]
	return entry, nil
}

// Days returns the sorted days with at least one registered part.
func (r *Registry) Days() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[int]struct{})
	for key := range r.entries {
		seen[key.Day] = struct{}{}
	}
	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Entries returns every registered solution ordered by day, then part.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		e.Title = r.titles[e.Day]
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Part < out[j].Part
	})
	return out
}

// defaultRegistry is filled by the day packages.
var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// MustRegister adds both parts of a day to the default registry.
// Call this from init() functions in day packages; it panics on a
// duplicate or out of range registration since that is a programming error.
func MustRegister(day int, title string, partOne, partTwo puzzle.PartFunc) {
	defaultRegistry.SetTitle(day, title)
	for part, fn := range map[int]puzzle.PartFunc{1: partOne, 2: partTwo} {
		if fn == nil {
			continue
		}
		if err := defaultRegistry.Register(day, part, fn); err != nil {
			panic(fmt.Sprintf("registry: %v", err))
		}
	}
}

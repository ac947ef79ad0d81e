// Package state keeps a history of solve attempts in SQLite so answers can
// be compared across runs.
package state

import (
	"context"
	"errors"
	"time"

	"github.com/leapstack-labs/advent/internal/puzzle"
)

// ErrNotOpen is returned when the store is used before Open.
var ErrNotOpen = errors.New("database not opened")

// Solve is one recorded attempt at a puzzle part.
type Solve struct {
	ID       string
	Day      int
	Part     int
	Answer   string
	Numeric  bool
	Error    string
	Source   string
	Elapsed  time.Duration
	SolvedAt time.Time
}

// Failed reports whether the attempt ended in an error.
func (s *Solve) Failed() bool {
	return s.Error != ""
}

// Result converts the stored answer back into a puzzle answer.
func (s *Solve) Result() puzzle.Answer {
	if s.Numeric {
		return puzzle.ParseAnswer(s.Answer)
	}
	return puzzle.Str(s.Answer)
}

// Filter narrows ListSolves. Zero values mean "any".
type Filter struct {
	Day   int
	Part  int
	Limit int
}

// Store records and lists solve attempts.
type Store interface {
	RecordSolve(ctx context.Context, s *Solve) error
	ListSolves(ctx context.Context, f Filter) ([]*Solve, error)
	LastAnswer(ctx context.Context, day, part int) (*Solve, error)
	Close() error
}

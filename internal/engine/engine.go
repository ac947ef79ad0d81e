// Package engine runs registered solutions against puzzle inputs.
// It resolves inputs, attaches expected answers, records history and
// fans days out over a bounded worker group.
package engine

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/leapstack-labs/advent/internal/puzzle"
	"github.com/leapstack-labs/advent/internal/registry"
	"github.com/leapstack-labs/advent/internal/state"
)

// Engine solves puzzles.
type Engine struct {
	inputsDir   string
	registry    *registry.Registry
	logger      *slog.Logger
	store       state.Store
	parallelism int
	stdin       io.Reader
	now         func() time.Time
}

// Config holds engine configuration.
type Config struct {
	// InputsDir is the root holding dayNN/input.txt files
	InputsDir string
	// Registry supplies the solutions (defaults to registry.Default())
	Registry *registry.Registry
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
	// Store records every solve attempt (optional)
	Store state.Store
	// Parallelism bounds how many days SolveAll works on at once.
	// Zero or less means GOMAXPROCS.
	Parallelism int
	// Stdin is read when an input path is "-" (defaults to os.Stdin)
	Stdin io.Reader
}

// New creates an engine.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	reg := cfg.Registry
	if reg == nil {
		reg = registry.Default()
	}

	parallelism := cfg.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	stdin := cfg.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}

	logger.Debug("initializing engine", "inputs_dir", cfg.InputsDir, "parallelism", parallelism)

	return &Engine{
		inputsDir:   cfg.InputsDir,
		registry:    reg,
		logger:      logger,
		store:       cfg.Store,
		parallelism: parallelism,
		stdin:       stdin,
		now:         time.Now,
	}
}

// InputsDir returns the configured inputs root.
func (e *Engine) InputsDir() string {
	return e.inputsDir
}

// Registry returns the registry solutions are looked up in.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Result is the outcome of solving one part.
type Result struct {
	registry.Key
	Answer  puzzle.Answer
	Err     error
	Elapsed time.Duration
	// Source is the input path, or "-" for stdin
	Source string
	// Expected is set when answers.yaml pins this part
	Expected *puzzle.Answer
}

// Result states.
const (
	StatusOK        = "ok"
	StatusMismatch  = "mismatch"
	StatusError     = "error"
	StatusUnchecked = "unchecked"
)

// Failed reports whether the solver (or reading its input) returned an error.
func (r Result) Failed() bool {
	return r.Err != nil
}

// Checked reports whether an expected answer was available.
func (r Result) Checked() bool {
	return r.Expected != nil
}

// Match reports whether the answer equals the expected one.
func (r Result) Match() bool {
	return r.Err == nil && r.Expected != nil && r.Answer.Equal(*r.Expected)
}

// Status summarizes the result as one of the Status constants.
func (r Result) Status() string {
	switch {
	case r.Err != nil:
		return StatusError
	case r.Expected == nil:
		return StatusUnchecked
	case r.Match():
		return StatusOK
	default:
		return StatusMismatch
	}
}

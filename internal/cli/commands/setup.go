package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/advent/internal/cli/config"
	"github.com/leapstack-labs/advent/internal/cli/output"
	"github.com/leapstack-labs/advent/internal/engine"
	"github.com/leapstack-labs/advent/internal/state"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Engine   *engine.Engine
	Store    state.Store // nil when history is disabled
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with engine, history store and renderer.
// Returns the context and a cleanup function that must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	store, err := openStore(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	eng := engine.New(engine.Config{
		InputsDir:   cfg.InputsDir,
		Logger:      logger,
		Store:       store,
		Parallelism: cfg.Parallel,
		Stdin:       cmd.InOrStdin(),
	})

	cleanup := func() {
		if store != nil {
			_ = store.Close()
		}
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Engine:   eng,
		Store:    store,
		Renderer: newRenderer(cmd, cfg),
	}, cleanup, nil
}

// NewCommandContextWithoutHistory creates a CommandContext whose engine has
// no history store. Useful for commands that only inspect inputs.
func NewCommandContextWithoutHistory(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	return &CommandContext{
		Cfg:    cfg,
		Logger: logger,
		Engine: engine.New(engine.Config{
			InputsDir:   cfg.InputsDir,
			Logger:      logger,
			Parallelism: cfg.Parallel,
			Stdin:       cmd.InOrStdin(),
		}),
		Renderer: newRenderer(cmd, cfg),
	}
}

// warnMissingInputs prints a hint when the inputs directory does not exist.
func (c *CommandContext) warnMissingInputs() {
	if err := c.Cfg.ValidateDirectories(); err != nil {
		c.Renderer.Warning(err.Error())
	}
}

// Helper functions shared across commands

// getConfig returns the current configuration, or defaults when the root
// command did not load one (commands executed on their own in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

func newRenderer(cmd *cobra.Command, cfg *config.Config) *output.Renderer {
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output))
}

// openStore opens the history database, or returns nil when history is off.
func openStore(cfg *config.Config, logger *slog.Logger) (state.Store, error) {
	if !cfg.HistoryEnabled() {
		return nil, nil
	}

	// Ensure history directory exists
	if cfg.HistoryPath != ":memory:" {
		if dir := filepath.Dir(cfg.HistoryPath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return nil, fmt.Errorf("failed to create history directory: %w", err)
			}
		}
	}

	store := state.NewSQLiteStore(logger)
	if err := store.Open(cfg.HistoryPath); err != nil {
		return nil, fmt.Errorf("failed to open history: %w", err)
	}
	return store, nil
}

// parseDay parses a day argument.
func parseDay(s string) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid day %q: must be a number", s)
	}
	return day, nil
}

// parsePart parses a part argument; "both" and "0" select both parts.
func parsePart(s string) (int, error) {
	if s == "both" {
		return 0, nil
	}
	part, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid part %q: must be 1, 2 or both", s)
	}
	return part, nil
}

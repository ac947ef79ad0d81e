package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/advent/internal/state"
)

// ErrHistoryDisabled is returned by history when no database is configured.
var ErrHistoryDisabled = errors.New("history is disabled (set history_path or --history)")

// HistoryOptions holds options for the history command.
type HistoryOptions struct {
	Day   int
	Part  int
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand() *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded solves",
		Long:  `Show previous solve attempts from the history database, newest first.`,
		Example: `  # Last 20 solves
  advent history

  # Everything for day 5 part 2
  advent history --day 5 --part 2 --limit 0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Day, "day", 0, "Only this day")
	cmd.Flags().IntVar(&opts.Part, "part", 0, "Only this part")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "Maximum rows (0 for all)")

	return cmd
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	if opts.Limit < 0 {
		return fmt.Errorf("--limit must be >= 0")
	}

	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if cmdCtx.Store == nil {
		return ErrHistoryDisabled
	}

	solves, err := cmdCtx.Store.ListSolves(cmd.Context(), state.Filter{
		Day:   opts.Day,
		Part:  opts.Part,
		Limit: opts.Limit,
	})
	if err != nil {
		return err
	}
	return cmdCtx.Renderer.History(solves)
}

package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/advent/internal/engine"
)

// NewAllCommand creates the all command.
func NewAllCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve every day",
		Long: `Solve both parts of every day that has a solution or an input directory.

Days are solved concurrently (see --parallel); results print in day order.
A day without input reports an error line instead of stopping the run.`,
		Example: `  # Solve everything
  advent all

  # Only some days
  advent all --days 1,3,5

  # Machine readable
  advent all -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAll(cmd)
		},
	}

	cmd.Flags().IntSlice("days", nil, "Days to solve (default: all)")

	return cmd
}

func runAll(cmd *cobra.Command) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	cmdCtx.warnMissingInputs()

	days := cmdCtx.Cfg.Days
	if f := cmd.Flags().Lookup("days"); f != nil && f.Changed {
		if days, err = cmd.Flags().GetIntSlice("days"); err != nil {
			return err
		}
	}

	var results []engine.Result
	if len(days) > 0 {
		results, err = cmdCtx.Engine.SolveDays(cmd.Context(), days)
	} else {
		results, err = cmdCtx.Engine.SolveAll(cmd.Context())
	}
	if err != nil {
		return err
	}
	return cmdCtx.Renderer.Results(results)
}

// DayOptions holds options for the day command.
type DayOptions struct {
	Watch bool
}

// NewDayCommand creates the day command.
func NewDayCommand() *cobra.Command {
	opts := &DayOptions{}

	cmd := &cobra.Command{
		Use:   "day <day> [part]",
		Short: "Solve one day",
		Long: `Solve a day using <inputs>/dayNN/input.txt. Both parts run unless a part is given.

With --watch the day is solved again whenever input.txt or answers.yaml changes.`,
		Example: `  # Both parts of day 5
  advent day 5

  # Only part two
  advent day 5 2

  # Re-solve on every save
  advent day 5 --watch`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDay(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-solve when the input changes")

	return cmd
}

func runDay(cmd *cobra.Command, args []string, opts *DayOptions) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	part := 0
	if len(args) == 2 {
		if part, err = parsePart(args[1]); err != nil {
			return err
		}
	}

	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	if opts.Watch {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return watchDay(ctx, cmdCtx, day, part)
	}

	results, err := cmdCtx.Engine.SolveDay(cmd.Context(), day, part)
	if err != nil {
		return err
	}
	return cmdCtx.Renderer.Results(results)
}

func watchDay(ctx context.Context, cmdCtx *CommandContext, day, part int) error {
	r := cmdCtx.Renderer
	return cmdCtx.Engine.Watch(ctx, day, part, func(results []engine.Result) {
		if err := r.Results(results); err != nil {
			cmdCtx.Logger.Warn("failed to render results", "error", err)
		}
		r.Muted("Watching for changes, press Ctrl+C to stop")
	})
}

// NewFileCommand creates the file command.
func NewFileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "file <day> <part> <path>",
		Short: "Solve a day from an explicit file or stdin",
		Long: `Solve a day from any file. Use "-" as the path to read standard input.

Fixtures from answers.yaml are not consulted since the file need not be the day's input.`,
		Example: `  # Solve the example from the puzzle text
  advent file 1 2 example.txt

  # Pipe the input in
  cat input.txt | advent file 3 both -`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(cmd, args)
		},
	}
}

func runFile(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	part, err := parsePart(args[1])
	if err != nil {
		return err
	}

	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := cmdCtx.Engine.SolveFile(cmd.Context(), day, part, args[2])
	if err != nil {
		return err
	}
	return cmdCtx.Renderer.Results(results)
}

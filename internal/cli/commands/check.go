package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/advent/internal/engine"
)

// ErrCheckFailed is returned when a checked answer does not match its fixture.
var ErrCheckFailed = errors.New("check failed")

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [day...]",
		Short: "Compare answers with answers.yaml fixtures",
		Long: `Solve days and compare each part with <inputs>/dayNN/answers.yaml.

Without arguments every day that has an answers.yaml is checked. The command
exits non-zero when any checked part fails or differs from its fixture.

answers.yaml:
  part1: 142
  part2: 281`,
		Example: `  # Check every day with fixtures
  advent check

  # Check two days
  advent check 4 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args)
		},
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := parseDay(arg)
		if err != nil {
			return err
		}
		days = append(days, day)
	}

	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	report, err := cmdCtx.Engine.Check(cmd.Context(), days)
	if err != nil {
		return err
	}

	r := cmdCtx.Renderer
	if err := r.Results(report.Results); err != nil {
		return err
	}
	if err := r.CheckSummary(report); err != nil {
		return err
	}

	if !report.Passed() {
		mismatched, failed := 0, 0
		for _, res := range report.Results {
			switch {
			case engine.IsFixtureError(res):
				failed++
			case !res.Checked():
			case res.Failed():
				failed++
			case !res.Match():
				mismatched++
			}
		}
		return fmt.Errorf("%w: %d mismatched, %d failed", ErrCheckFailed, mismatched, failed)
	}
	return nil
}

package commands

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List solutions, inputs and fixtures",
		Long: `List every registered day together with whether its input and
answers.yaml exist under the inputs directory.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown table (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # List days
  advent list

  # As JSON
  advent list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}
}

func runList(cmd *cobra.Command) error {
	cmdCtx := NewCommandContextWithoutHistory(cmd)
	cmdCtx.warnMissingInputs()

	return cmdCtx.Renderer.Catalog(cmdCtx.Cfg.InputsDir, cmdCtx.Engine.Catalog())
}

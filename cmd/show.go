package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [targets...]",
		Short: "Print a per-file coverage summary table",
		Long: `Build the cross-target coverage summary and print it as a table instead
of writing a report. Useful for a quick look before wiring CI.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			summarizeArgs, err := buildSummarizeArgs(args)
			if err != nil {
				return err
			}

			agg, err := pipeline.Summarize(context.Background(), summarizeArgs)
			if err != nil {
				return err
			}

			return ui.DisplaySummary(context.Background(), agg)
		},
	}
}

func init() {
	rootCmd.AddCommand(showCmd)
}

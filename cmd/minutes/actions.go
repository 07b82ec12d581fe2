package main

import (
	"github.com/spf13/cobra"
)

func newActionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "actions <transcript>",
		Short: "Extract action items from an existing transcript",
		Long: `Extract action items from a plain-text transcript. Use "-" to read from stdin.
With --no-model only the pattern matcher runs.

Examples:
  minutes actions transcript.txt
  minutes actions transcript.txt --no-model -f json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			text, err := readTranscript(args[0])
			if err != nil {
				return err
			}

			res := a.extractor.Extract(cmd.Context(), text, a.cfg.UseModelForActions())
			if outputFormat == "json" {
				return writeJSON(cmd.OutOrStdout(), res.Items)
			}
			printActions(cmd.OutOrStdout(), res.Items)
			return nil
		},
	}
}

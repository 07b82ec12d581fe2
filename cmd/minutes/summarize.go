package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/minutes-flow/internal/tone"
)

func newSummarizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <transcript>",
		Short: "Summarize an existing transcript",
		Long: `Summarize a plain-text transcript and print the minutes with the selected tone.
Use "-" to read from stdin.

Examples:
  minutes summarize transcript.txt
  cat transcript.txt | minutes summarize - --tone detailed`,
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

			res := a.summarizer.Summarize(cmd.Context(), text, a.cfg.Summarizer.MaxChunkWords)
			minutes := tone.Apply(res.Text, a.tone(), a.cfg.Minutes.Prefix)

			if outputFormat == "json" {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"minutes":         minutes,
					"chunks":          res.Chunks,
					"chunk_fallbacks": res.ChunkFallbacks,
					"final_fallback":  res.FinalFallback,
				})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), minutes)
			return err
		},
	}
}

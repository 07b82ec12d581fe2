package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
	"github.com/nguyentantai21042004/minutes-flow/internal/processor"
)

var (
	noExport bool
	docx     bool
)

func newRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <audio>",
		Short: "Process one recording",
		Long: `Convert, transcribe and summarize one recording, then extract action items.

Transcript, minutes, action items and subtitles are written to the output
directory as prefix_YYYYMMDD_HHMMSS files unless --no-export is given.

Examples:
  minutes run standup.mp3
  minutes run standup.mp3 --model faster-base.en --docx
  minutes run standup.mp3 -f json --no-export`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			opts := processor.DefaultOptions(a.cfg)
			opts.Export = !noExport
			opts.Docx = opts.Docx || docx

			res, err := a.processor().Process(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
			return printRun(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Whisper model id, e.g. tiny.en, base.en, faster-small")
	cmd.Flags().BoolVar(&timestamps, "timestamps", false, "Prefix transcript lines with [mm:ss]")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for exported files")
	cmd.Flags().BoolVar(&noExport, "no-export", false, "Do not write output files")
	cmd.Flags().BoolVar(&docx, "docx", false, "Also write the minutes as .docx")

	return cmd
}

type runOutput struct {
	RunID      string              `json:"run_id"`
	Duration   float64             `json:"duration_seconds"`
	Transcript string              `json:"transcript"`
	Minutes    string              `json:"minutes"`
	Actions    []models.ActionItem `json:"action_items"`
	Source     string              `json:"action_source"`
	Degraded   bool                `json:"degraded"`
	Files      []string            `json:"files"`
}

func printRun(w io.Writer, res *processor.Result) error {
	if outputFormat == "json" {
		return writeJSON(w, runOutput{
			RunID:      res.RunID,
			Duration:   res.Transcription.Duration(),
			Transcript: res.Transcript,
			Minutes:    res.Minutes,
			Actions:    res.Actions.Items,
			Source:     string(res.Actions.Source),
			Degraded:   res.Summary.Degraded() || res.Actions.Degraded(),
			Files:      res.Files,
		})
	}

	fmt.Fprintf(w, "Audio duration: %.1fs\n\n", res.Transcription.Duration())
	fmt.Fprintln(w, "## Minutes")
	fmt.Fprintln(w)
	fmt.Fprintln(w, res.Minutes)
	fmt.Fprintln(w)
	printActions(w, res.Actions.Items)

	if len(res.Files) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Files:")
		for _, f := range res.Files {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
	return nil
}

func printActions(w io.Writer, items []models.ActionItem) {
	fmt.Fprintln(w, "## Action Items")
	fmt.Fprintln(w)
	if len(items) == 0 {
		fmt.Fprintln(w, "No action items found.")
		return
	}
	for _, it := range items {
		var meta []string
		if it.Owner != nil {
			meta = append(meta, "owner: "+*it.Owner)
		}
		if it.Deadline != nil {
			meta = append(meta, "due: "+*it.Deadline)
		}
		line := fmt.Sprintf("%d. %s", it.ID, it.Action)
		if len(meta) > 0 {
			line += " (" + strings.Join(meta, ", ") + ")"
		}
		fmt.Fprintln(w, line)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readTranscript(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return string(data), nil
}

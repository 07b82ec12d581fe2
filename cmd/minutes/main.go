package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Global flags
var (
	configPath   string
	logLevel     string
	model        string
	chunkWords   int
	toneName     string
	prefix       string
	timestamps   bool
	noModel      bool
	outputDir    string
	outputFormat string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minutes",
		Short: "Turn meeting recordings into minutes and action items",
		Long: `minutes transcribes a meeting recording, condenses it into minutes and
pulls out action items with owners and deadlines.

Examples:
  minutes run standup.mp3
  minutes run call.m4a --tone executive --timestamps
  minutes summarize transcript.txt --chunk-words 500
  minutes actions transcript.txt --no-model
  minutes watch`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to YAML config")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override log level: debug, info, warn, error")
	cmd.PersistentFlags().IntVar(&chunkWords, "chunk-words", 0, "Words per summarization chunk (default from config)")
	cmd.PersistentFlags().StringVar(&toneName, "tone", "", "Minutes tone: concise, detailed, action, executive")
	cmd.PersistentFlags().StringVar(&prefix, "prefix", "", "Text placed above the minutes")
	cmd.PersistentFlags().BoolVar(&noModel, "no-model", false, "Extract action items with patterns only")
	cmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text", "Output format: text, json")

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newWatchCommand())
	cmd.AddCommand(newSummarizeCommand())
	cmd.AddCommand(newActionsCommand())

	return cmd
}

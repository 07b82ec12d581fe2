package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/processor"
	"github.com/nguyentantai21042004/minutes-flow/internal/watcher"
)

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Process recordings dropped into the input directory",
		Long: `Watch the configured input directory and process every new recording
(.mp3 .wav .m4a .ogg .flac .webm .mp4). Sources are moved to the archive
directory after a successful run. When metrics.address is set, Prometheus
metrics are served on /metrics.

Press Ctrl+C to stop; in-flight runs are allowed to finish.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&model, "model", "m", "", "Whisper model id")
	cmd.Flags().BoolVar(&timestamps, "timestamps", false, "Prefix transcript lines with [mm:ss]")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for exported files")

	return cmd
}

func runWatch(ctx context.Context) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	if err := ensureDirectories(a.cfg); err != nil {
		return err
	}

	proc := a.processor()
	opts := processor.DefaultOptions(a.cfg)
	opts.Archive = true

	handler := func(ctx context.Context, path string) error {
		_, err := proc.Process(ctx, path, opts)
		return err
	}

	w, err := watcher.New(a.cfg.Paths.Input, handler, a.logger, a.cfg.Performance.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	if a.cfg.Metrics.Address != "" {
		srv := &http.Server{Addr: a.cfg.Metrics.Address, Handler: metricsMux(a)}
		go func() {
			a.logger.Info(ctx, "Serving metrics on %s/metrics", a.cfg.Metrics.Address)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error(ctx, "Metrics server error: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	a.logger.Info(ctx, "Minutes watcher is ready. Input: %s Output: %s", a.cfg.Paths.Input, a.cfg.Paths.Output)
	a.logger.Info(ctx, "Press Ctrl+C to stop")

	err = w.Start(ctx)
	if errors.Is(err, context.Canceled) {
		a.logger.Info(ctx, "Minutes watcher stopped")
		return nil
	}
	return err
}

func metricsMux(a *app) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.metrics.Handler())
	return mux
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Archived,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

package main

import (
	"fmt"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/export"
	"github.com/nguyentantai21042004/minutes-flow/internal/extractor"
	"github.com/nguyentantai21042004/minutes-flow/internal/llm"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/metrics"
	"github.com/nguyentantai21042004/minutes-flow/internal/processor"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/tone"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
	"github.com/nguyentantai21042004/minutes-flow/pkg/executor"
)

// app holds the process-wide registries. Backends are built lazily on first use.
type app struct {
	cfg        *config.Config
	logger     logger.Logger
	llm        *llm.Registry
	models     *transcriber.ModelStore
	executor   executor.Executor
	metrics    *metrics.Metrics
	summarizer summarizer.Summarizer
	extractor  extractor.Extractor
}

func newApp() (*app, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyFlags(cfg)

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	registry := llm.NewRegistry(cfg.LLM, log)

	return &app{
		cfg:        cfg,
		logger:     log,
		llm:        registry,
		models:     transcriber.NewModelStore(cfg.Whisper),
		executor:   executor.New(),
		metrics:    metrics.New(),
		summarizer: summarizer.New(summarizer.NewLLMBackend(registry), summarizer.OptionsFromConfig(cfg.Summarizer), log),
		extractor:  extractor.New(registry, cfg.Extractor.MaxOutputTokens, log),
	}, nil
}

// applyFlags lets command-line flags override the loaded config.
func applyFlags(cfg *config.Config) {
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if model != "" {
		cfg.Whisper.Model = model
	}
	if chunkWords > 0 {
		cfg.Summarizer.MaxChunkWords = chunkWords
	}
	if toneName != "" {
		cfg.Minutes.Tone = toneName
	}
	if prefix != "" {
		cfg.Minutes.Prefix = prefix
	}
	if timestamps {
		cfg.Minutes.IncludeTimestamps = true
	}
	if noModel {
		off := false
		cfg.Extractor.UseModel = &off
	}
	if outputDir != "" {
		cfg.Paths.Output = outputDir
	}
}

func (a *app) processor() processor.Processor {
	return processor.New(a.cfg, processor.Deps{
		Executor:    a.executor,
		Transcriber: transcriber.New(a.cfg, a.models, a.executor, a.logger),
		Summarizer:  a.summarizer,
		Extractor:   a.extractor,
		Exporter:    export.New(a.cfg.Paths.Output),
		Metrics:     a.metrics,
	}, a.logger)
}

func (a *app) tone() tone.Tone {
	return tone.ParseTone(a.cfg.Minutes.Tone)
}

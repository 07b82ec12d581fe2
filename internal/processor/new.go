package processor

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/export"
	"github.com/nguyentantai21042004/minutes-flow/internal/extractor"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/metrics"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/tone"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
	"github.com/nguyentantai21042004/minutes-flow/pkg/executor"
)

// Deps are the stage implementations a Processor sequences.
type Deps struct {
	Executor    executor.Executor
	Transcriber transcriber.Transcriber
	Summarizer  summarizer.Summarizer
	Extractor   extractor.Extractor
	Exporter    export.Exporter
	// Metrics may be nil.
	Metrics *metrics.Metrics
}

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	extractor   extractor.Extractor
	exporter    export.Exporter
	metrics     *metrics.Metrics
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, deps Deps, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		executor:    deps.Executor,
		transcriber: deps.Transcriber,
		summarizer:  deps.Summarizer,
		extractor:   deps.Extractor,
		exporter:    deps.Exporter,
		metrics:     deps.Metrics,
		logger:      log,
	}
}

// DefaultOptions builds run options from cfg.
func DefaultOptions(cfg *config.Config) Options {
	return Options{
		Model:             cfg.Whisper.Model,
		MaxChunkWords:     cfg.Summarizer.MaxChunkWords,
		Tone:              tone.ParseTone(cfg.Minutes.Tone),
		Prefix:            cfg.Minutes.Prefix,
		IncludeTimestamps: cfg.Minutes.IncludeTimestamps,
		UseModel:          cfg.UseModelForActions(),
		Export:            true,
		Docx:              cfg.Minutes.Docx,
	}
}

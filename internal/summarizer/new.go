package summarizer

import (
	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

// Options bound chunking and generation lengths.
type Options struct {
	DefaultChunkWords int
	ChunkMinWords     int
	ChunkMaxWords     int
	FinalMinWords     int
	FinalMaxWords     int
	FallbackSentences int
}

// OptionsFromConfig converts the summarizer config section.
func OptionsFromConfig(c config.SummarizerConfig) Options {
	return Options{
		DefaultChunkWords: c.MaxChunkWords,
		ChunkMinWords:     c.ChunkMinWords,
		ChunkMaxWords:     c.ChunkMaxWords,
		FinalMinWords:     c.FinalMinWords,
		FinalMaxWords:     c.FinalMaxWords,
		FallbackSentences: c.FallbackSentences,
	}
}

type implSummarizer struct {
	backend Backend
	opts    Options
	logger  logger.Logger
}

// New creates a Summarizer on top of backend.
func New(backend Backend, opts Options, log logger.Logger) Summarizer {
	if opts.DefaultChunkWords <= 0 {
		opts.DefaultChunkWords = 800
	}
	if opts.FallbackSentences <= 0 {
		opts.FallbackSentences = 3
	}
	return &implSummarizer{
		backend: backend,
		opts:    opts,
		logger:  log,
	}
}

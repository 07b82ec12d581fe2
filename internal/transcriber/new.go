package transcriber

import (
	"os"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/pkg/executor"
)

type implTranscriber struct {
	defaultModel string
	primary      backend
	alternate    backend
	logger       logger.Logger
}

// New creates a Transcriber backed by whisper.cpp, with faster-whisper as the
// alternate engine when cfg.FasterWhisper.BinaryPath is set.
func New(cfg *config.Config, store *ModelStore, exec executor.Executor, log logger.Logger) Transcriber {
	tempDir := cfg.Paths.Temp
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	t := &implTranscriber{
		defaultModel: cfg.Whisper.Model,
		primary: &whisperCPP{
			binary:   cfg.Whisper.BinaryPath,
			threads:  cfg.Whisper.Threads,
			tempDir:  tempDir,
			store:    store,
			executor: exec,
		},
		logger: log,
	}
	if cfg.FasterWhisper.BinaryPath != "" {
		t.alternate = &fasterWhisper{
			binary:   cfg.FasterWhisper.BinaryPath,
			tempDir:  tempDir,
			executor: exec,
		}
	}
	return t
}

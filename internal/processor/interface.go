package processor

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/extractor"
	"github.com/nguyentantai21042004/minutes-flow/internal/models"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/tone"
)

// Processor runs the full audio-to-minutes pipeline for one file.
type Processor interface {
	Process(ctx context.Context, audioPath string, opts Options) (*Result, error)
}

// Options tune a single run. DefaultOptions fills them from config.
type Options struct {
	// Model is the whisper model id; empty uses the configured default.
	Model             string
	MaxChunkWords     int
	Tone              tone.Tone
	Prefix            string
	IncludeTimestamps bool
	UseModel          bool
	// Export writes transcript, minutes, actions and subtitles to the output dir.
	Export bool
	Docx   bool
	// Archive moves the source file to the archive dir after a successful run.
	Archive bool
}

// Result is everything a run produced.
type Result struct {
	RunID         string
	Transcription models.TranscriptionResult
	// Transcript is the rendered transcript, timestamped when requested.
	Transcript string
	Summary    summarizer.Result
	Minutes    string
	Actions    extractor.Result
	Files      []string
	Elapsed    time.Duration
}

package transcriber

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

// Transcriber converts a decoded audio file into text and timed segments.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, model string) (models.TranscriptionResult, error)
}

// backend is one speech-recognition engine.
type backend interface {
	name() string
	available() bool
	transcribe(ctx context.Context, audioPath, model string) (models.TranscriptionResult, error)
}

package transcriber

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

const (
	hintInstall = "Make sure whisper.cpp is installed and on PATH, and ffmpeg is available for decoding"
	hintModel   = "Download the model weights into the models directory or enable auto_download"
)

// Transcribe converts audioPath to text using model. An empty model selects
// the configured default. A "faster-" prefix prefers the faster-whisper engine
// and falls back to whisper.cpp with the plain model name.
func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, model string) (models.TranscriptionResult, error) {
	if _, err := os.Stat(audioPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.TranscriptionResult{}, fmt.Errorf("%w: %s", ErrNotFound, audioPath)
		}
		return models.TranscriptionResult{}, fmt.Errorf("stat audio: %w", err)
	}

	if model == "" {
		model = t.defaultModel
	}

	b := t.primary
	if strings.HasPrefix(model, fasterPrefix) {
		model = strings.TrimPrefix(model, fasterPrefix)
		if t.alternate != nil && t.alternate.available() {
			b = t.alternate
		} else {
			t.logger.Warn(ctx, "faster-whisper not available, using %s with model %s", t.primary.name(), model)
		}
	}

	if !knownModels[model] {
		return models.TranscriptionResult{}, &TranscriptionError{
			Backend: b.name(),
			Model:   model,
			Hint:    fmt.Sprintf("Unknown model, use one of %s", strings.Join(KnownModels(), ", ")),
		}
	}

	if !b.available() {
		return models.TranscriptionResult{}, &TranscriptionError{
			Backend: b.name(),
			Model:   model,
			Hint:    hintInstall,
			Err:     errors.New("speech engine binary not found"),
		}
	}

	t.logger.Info(ctx, "Transcribing %s with %s (model %s)", audioPath, b.name(), model)
	start := time.Now()

	res, err := b.transcribe(ctx, audioPath, model)
	if err != nil {
		hint := hintInstall
		if errors.Is(err, errModelMissing) {
			hint = hintModel
		}
		return models.TranscriptionResult{}, &TranscriptionError{
			Backend: b.name(),
			Model:   model,
			Hint:    hint,
			Err:     err,
		}
	}

	if strings.TrimSpace(res.Text) == "" {
		t.logger.Warn(ctx, "Transcription produced no text: %s", audioPath)
	}
	t.logger.Info(ctx, "Transcribed %d segments in %s", len(res.Segments), time.Since(start))
	return res, nil
}

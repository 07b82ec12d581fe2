package processor

import (
	"context"
	"strings"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/export"
	"github.com/nguyentantai21042004/minutes-flow/internal/metrics"
	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

// transcribe runs the speech backend and renders the transcript text.
func (p *implProcessor) transcribe(ctx context.Context, wavPath string, opts Options) (models.TranscriptionResult, string, error) {
	start := time.Now()
	res, err := p.transcriber.Transcribe(ctx, wavPath, opts.Model)
	p.metrics.ObserveStage(metrics.StageTranscribe, time.Since(start))
	if err != nil {
		return models.TranscriptionResult{}, "", err
	}

	text := res.Text
	if opts.IncludeTimestamps && len(res.Segments) > 0 {
		text = export.FormatTimestamped(res.Segments)
	}
	if strings.TrimSpace(text) == "" {
		p.logger.Warn(ctx, "Transcription returned no text. Try a different model.")
	}
	return res, text, nil
}

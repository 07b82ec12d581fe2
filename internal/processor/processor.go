package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/minutes-flow/internal/extractor"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
	"github.com/nguyentantai21042004/minutes-flow/internal/metrics"
	"github.com/nguyentantai21042004/minutes-flow/internal/summarizer"
	"github.com/nguyentantai21042004/minutes-flow/internal/tone"
	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
)

const (
	statusOK     = "ok"
	statusFailed = "failed"
)

// Process converts, transcribes, summarizes and extracts action items from
// audioPath. Only a missing or untranscribable file is an error; summary and
// extraction degradations are reported in the Result.
func (p *implProcessor) Process(ctx context.Context, audioPath string, opts Options) (*Result, error) {
	runID := uuid.NewString()
	ctx = logger.WithRunID(ctx, runID)
	startTime := time.Now()

	p.logger.Info(ctx, "Starting minutes run: %s", audioPath)

	res, err := p.process(ctx, audioPath, opts)
	if err != nil {
		p.metrics.RunFinished(statusFailed)
		p.logger.Error(ctx, "Run failed: %v", err)
		return nil, err
	}
	res.RunID = runID
	res.Elapsed = time.Since(startTime)

	p.metrics.RunFinished(statusOK)
	p.metrics.ObserveRun(res.Transcription.Duration(), len(res.Actions.Items))

	p.logger.Info(ctx, "Run completed in %s: %d chunks, %d action items (%s)",
		res.Elapsed, res.Summary.Chunks, len(res.Actions.Items), res.Actions.Source)
	for _, f := range res.Files {
		p.logger.Info(ctx, "Output: %s", f)
	}
	return res, nil
}

func (p *implProcessor) process(ctx context.Context, audioPath string, opts Options) (*Result, error) {
	if _, err := os.Stat(audioPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", transcriber.ErrNotFound, audioPath)
		}
		return nil, fmt.Errorf("stat audio: %w", err)
	}

	// Step 1: Decode to WAV
	start := time.Now()
	wavPath, err := p.convertAudio(ctx, audioPath)
	p.metrics.ObserveStage(metrics.StageConvert, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("convert audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, wavPath)

	// Step 2: Transcribe
	trans, transcript, err := p.transcribe(ctx, wavPath, opts)
	if err != nil {
		return nil, fmt.Errorf("transcribe: %w", err)
	}

	res := &Result{
		Transcription: trans,
		Transcript:    transcript,
	}

	// Step 3: Summarize and apply tone. Later stages read the rendered
	// transcript, so timestamps reach them when requested.
	res.Summary = p.summarize(ctx, transcript, opts)
	res.Minutes = tone.Apply(res.Summary.Text, opts.Tone, opts.Prefix)

	// Step 4: Action items
	res.Actions = p.extract(ctx, transcript, opts)

	// Step 5: Export
	if opts.Export {
		start = time.Now()
		files, err := p.export(res, opts, filepath.Base(audioPath))
		p.metrics.ObserveStage(metrics.StageExport, time.Since(start))
		if err != nil {
			return nil, fmt.Errorf("export: %w", err)
		}
		res.Files = files
	}

	// Step 6: Archive the source
	if opts.Archive {
		if _, err := p.archive(ctx, audioPath); err != nil {
			p.logger.Warn(ctx, "Failed to archive %s: %v", audioPath, err)
		}
	}

	return res, nil
}

func (p *implProcessor) summarize(ctx context.Context, text string, opts Options) summarizer.Result {
	start := time.Now()
	res := p.summarizer.Summarize(ctx, text, opts.MaxChunkWords)
	p.metrics.ObserveStage(metrics.StageSummarize, time.Since(start))

	if res.ChunkFallbacks > 0 {
		p.metrics.Fallback("summarizer", "chunk")
	}
	if res.FinalFallback {
		p.metrics.Fallback("summarizer", "final")
	}
	return res
}

func (p *implProcessor) extract(ctx context.Context, text string, opts Options) extractor.Result {
	start := time.Now()
	res := p.extractor.Extract(ctx, text, opts.UseModel)
	p.metrics.ObserveStage(metrics.StageExtract, time.Since(start))

	if res.Degraded() {
		p.metrics.Fallback("extractor", string(res.Fallback))
	}
	return res
}

func (p *implProcessor) export(res *Result, opts Options, source string) ([]string, error) {
	var files []string

	if strings.TrimSpace(res.Transcript) != "" {
		f, err := p.exporter.WriteTranscript(res.Transcript)
		if err != nil {
			return files, err
		}
		files = append(files, f)
	}

	if strings.TrimSpace(res.Minutes) != "" {
		f, err := p.exporter.WriteMinutes(res.Minutes)
		if err != nil {
			return files, err
		}
		files = append(files, f)
	}

	if len(res.Actions.Items) > 0 {
		f, err := p.exporter.WriteActions(res.Actions.Items)
		if err != nil {
			return files, err
		}
		files = append(files, f)
	}

	if len(res.Transcription.Segments) > 0 {
		f, err := p.exporter.WriteSRT(res.Transcription.Segments)
		if err != nil {
			return files, err
		}
		files = append(files, f)
	}

	if opts.Docx && strings.TrimSpace(res.Minutes) != "" {
		title := "Meeting Minutes: " + strings.TrimSuffix(source, filepath.Ext(source))
		f, err := p.exporter.WriteMinutesDocx(title, res.Minutes, res.Actions.Items)
		if err != nil {
			return files, err
		}
		files = append(files, f)
	}

	return files, nil
}

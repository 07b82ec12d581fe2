package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
	"github.com/nguyentantai21042004/minutes-flow/pkg/executor"
)

// fasterPrefix routes a model identifier to the faster-whisper backend.
const fasterPrefix = "faster-"

// fasterWhisper runs a faster-whisper CLI (whisper-ctranslate2 flags).
// Weights are fetched and cached by the tool itself.
type fasterWhisper struct {
	binary   string
	tempDir  string
	executor executor.Executor
}

func (f *fasterWhisper) name() string { return "faster-whisper" }

func (f *fasterWhisper) available() bool {
	if f.binary == "" {
		return false
	}
	_, err := f.executor.LookPath(f.binary)
	return err == nil
}

func (f *fasterWhisper) transcribe(ctx context.Context, audioPath, model string) (models.TranscriptionResult, error) {
	outDir, err := os.MkdirTemp(f.tempDir, "faster-whisper-*")
	if err != nil {
		return models.TranscriptionResult{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	args := []string{
		audioPath,
		"--model", model,
		"--device", "cpu",
		"--compute_type", "int8",
		"--beam_size", "5",
		"--language", "en",
		"--output_format", "json",
		"--output_dir", outDir,
	}
	if _, err := f.executor.ExecuteWithEnv(ctx, cpuOnlyEnv, f.binary, args...); err != nil {
		return models.TranscriptionResult{}, fmt.Errorf("faster-whisper transcribe: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	data, err := os.ReadFile(filepath.Join(outDir, base+".json"))
	if err != nil {
		return models.TranscriptionResult{}, fmt.Errorf("read faster-whisper output: %w", err)
	}

	var out models.TranscriptionResult
	if err := json.Unmarshal(data, &out); err != nil {
		return models.TranscriptionResult{}, fmt.Errorf("parse faster-whisper output: %w", err)
	}

	texts := make([]string, 0, len(out.Segments))
	for i := range out.Segments {
		out.Segments[i].Text = strings.TrimSpace(out.Segments[i].Text)
		texts = append(texts, out.Segments[i].Text)
	}
	if strings.TrimSpace(out.Text) == "" {
		out.Text = strings.Join(texts, " ")
	}
	out.Text = strings.TrimSpace(out.Text)
	if out.Segments == nil {
		out.Segments = []models.Segment{}
	}
	return out, nil
}

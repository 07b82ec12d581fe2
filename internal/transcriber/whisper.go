package transcriber

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
	"github.com/nguyentantai21042004/minutes-flow/pkg/executor"
)

// cpuOnlyEnv hides accelerators from the child process. It is appended after
// the inherited environment so it always wins.
var cpuOnlyEnv = []string{"CUDA_VISIBLE_DEVICES="}

// whisperCPP runs the whisper.cpp CLI.
type whisperCPP struct {
	binary   string
	threads  int
	tempDir  string
	store    *ModelStore
	executor executor.Executor
}

func (w *whisperCPP) name() string { return "whisper.cpp" }

func (w *whisperCPP) available() bool {
	_, err := w.executor.LookPath(w.binary)
	return err == nil
}

// transcribe runs a single English pass on the CPU and reads the JSON output.
func (w *whisperCPP) transcribe(ctx context.Context, audioPath, model string) (models.TranscriptionResult, error) {
	modelPath, err := w.store.Path(ctx, model)
	if err != nil {
		return models.TranscriptionResult{}, err
	}

	outDir, err := os.MkdirTemp(w.tempDir, "whisper-*")
	if err != nil {
		return models.TranscriptionResult{}, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	// whisper.cpp appends .json to the output prefix
	outputPrefix := filepath.Join(outDir, "transcript")

	// -ng: no GPU
	// -l: force language
	// -oj: JSON output with per-segment offsets
	// -np: no progress prints on stdout
	args := []string{
		"-m", modelPath,
		"-f", audioPath,
		"-l", "en",
		"-t", strconv.Itoa(w.threads),
		"-ng",
		"-oj",
		"-np",
		"-of", outputPrefix,
	}

	if _, err := w.executor.ExecuteWithEnv(ctx, cpuOnlyEnv, w.binary, args...); err != nil {
		return models.TranscriptionResult{}, fmt.Errorf("whisper transcribe: %w", err)
	}

	data, err := os.ReadFile(outputPrefix + ".json")
	if err != nil {
		return models.TranscriptionResult{}, fmt.Errorf("read whisper output: %w", err)
	}
	return parseWhisperCPPJSON(data)
}

type whisperCPPOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

// parseWhisperCPPJSON converts whisper.cpp -oj output; offsets are milliseconds.
func parseWhisperCPPJSON(data []byte) (models.TranscriptionResult, error) {
	var out whisperCPPOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return models.TranscriptionResult{}, fmt.Errorf("parse whisper output: %w", err)
	}

	res := models.TranscriptionResult{Segments: []models.Segment{}}
	texts := make([]string, 0, len(out.Transcription))
	for _, seg := range out.Transcription {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		res.Segments = append(res.Segments, models.Segment{
			Start: float64(seg.Offsets.From) / 1000,
			End:   float64(seg.Offsets.To) / 1000,
			Text:  text,
		})
		texts = append(texts, text)
	}
	res.Text = strings.Join(texts, " ")
	return res, nil
}

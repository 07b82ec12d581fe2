package processor

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/nguyentantai21042004/minutes-flow/internal/transcriber"
)

// convertAudio decodes any ffmpeg-readable input into a temporary mono PCM
// WAV at the configured sample rate. The caller removes the returned file.
func (p *implProcessor) convertAudio(ctx context.Context, audioPath string) (string, error) {
	if _, err := p.executor.LookPath(p.cfg.FFmpeg.BinaryPath); err != nil {
		return "", &transcriber.TranscriptionError{
			Backend: "ffmpeg",
			Model:   "n/a",
			Hint:    "Install ffmpeg and make sure it is on PATH",
			Err:     err,
		}
	}

	tmp, err := os.CreateTemp(p.cfg.Paths.Temp, "minutes-*.wav")
	if err != nil {
		return "", fmt.Errorf("create temp wav: %w", err)
	}
	wavPath := tmp.Name()
	tmp.Close()

	p.logger.Info(ctx, "Converting audio: %s", audioPath)

	// -vn: drop any video stream
	// -ac 1: mono
	// -c:a pcm_s16le: 16-bit PCM, what whisper expects
	args := []string{
		"-i", audioPath,
		"-vn",
		"-ar", strconv.Itoa(p.cfg.FFmpeg.SampleRate),
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		wavPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		p.cleanupTempFile(ctx, wavPath)
		return "", fmt.Errorf("ffmpeg convert audio: %w", err)
	}

	p.logger.Debug(ctx, "Audio converted: %s", wavPath)
	return wavPath, nil
}

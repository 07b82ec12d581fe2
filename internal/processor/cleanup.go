package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// archive moves the source audio into the archive folder.
func (p *implProcessor) archive(ctx context.Context, audioPath string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return "", fmt.Errorf("create archive dir: %w", err)
	}
	destPath := filepath.Join(p.cfg.Paths.Archived, filepath.Base(audioPath))

	p.logger.Info(ctx, "Archiving: %s -> %s", audioPath, destPath)

	if err := os.Rename(audioPath, destPath); err != nil {
		// rename fails across filesystems
		if err := copyFile(audioPath, destPath); err != nil {
			return "", fmt.Errorf("archive audio: %w", err)
		}
		if err := os.Remove(audioPath); err != nil {
			return "", fmt.Errorf("remove archived source: %w", err)
		}
	}
	return destPath, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy: %w", err)
	}
	return out.Close()
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}

package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

const (
	PrefixTranscript = "transcript"
	PrefixMinutes    = "minutes"
	PrefixActions    = "action_items"
	PrefixSubtitles  = "subtitles"
)

// TimestampedFilename returns prefix_YYYYMMDD_HHMMSS.ext.
func TimestampedFilename(prefix, ext string, t time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, t.Format("20060102_150405"), ext)
}

// FormatTimestamped renders one "[mm:ss] text" line per segment. Minutes are
// not wrapped at the hour.
func FormatTimestamped(segments []models.Segment) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		start := int(seg.Start)
		lines = append(lines, fmt.Sprintf("[%02d:%02d] %s", start/60, start%60, strings.TrimSpace(seg.Text)))
	}
	return strings.Join(lines, "\n")
}

func (e *implExporter) WriteTranscript(text string) (string, error) {
	return e.write(PrefixTranscript, "txt", []byte(text))
}

func (e *implExporter) WriteMinutes(markdown string) (string, error) {
	return e.write(PrefixMinutes, "md", []byte(markdown))
}

// WriteActions writes items as a 2-space indented JSON array without HTML escaping.
func (e *implExporter) WriteActions(items []models.ActionItem) (string, error) {
	if items == nil {
		items = []models.ActionItem{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return "", fmt.Errorf("encode action items: %w", err)
	}
	return e.write(PrefixActions, "json", buf.Bytes())
}

func (e *implExporter) WriteSRT(segments []models.Segment) (string, error) {
	return e.write(PrefixSubtitles, "srt", []byte(FormatSRT(segments)))
}

// FormatSRT renders segments as SubRip cues numbered from 1.
func FormatSRT(segments []models.Segment) string {
	var b strings.Builder
	n := 0
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		n++
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n", n, srtTime(seg.Start), srtTime(seg.End), text)
	}
	return b.String()
}

func srtTime(sec float64) string {
	ms := int64(sec*1000 + 0.5)
	h := ms / 3600000
	ms %= 3600000
	m := ms / 60000
	ms %= 60000
	s := ms / 1000
	ms %= 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// maxNameAttempts bounds the _N suffixes tried for one timestamped name.
const maxNameAttempts = 1000

// create opens a new file named prefix_YYYYMMDD_HHMMSS.ext. When that name is
// taken, by another run in the same second, a _2, _3, ... suffix is added.
// Existing files are never truncated.
func (e *implExporter) create(prefix, ext string) (*os.File, error) {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	base := strings.TrimSuffix(TimestampedFilename(prefix, ext, e.now()), "."+ext)
	for n := 1; n <= maxNameAttempts; n++ {
		name := base
		if n > 1 {
			name = fmt.Sprintf("%s_%d", base, n)
		}
		f, err := os.OpenFile(filepath.Join(e.dir, name+"."+ext), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("create %s: %w", ext, err)
		}
	}
	return nil, fmt.Errorf("create %s: no free name for %s", ext, base)
}

func (e *implExporter) write(prefix, ext string, data []byte) (string, error) {
	f, err := e.create(prefix, ext)
	if err != nil {
		return "", err
	}
	p := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(p)
		return "", fmt.Errorf("write %s: %w", ext, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(p)
		return "", fmt.Errorf("close %s: %w", ext, err)
	}
	return p, nil
}

package transcriber

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
)

// knownModels are the whisper sizes we accept. ".en" variants are English-only
// and faster; the others are multilingual.
var knownModels = map[string]bool{
	"tiny.en":  true,
	"base.en":  true,
	"small.en": true,
	"tiny":     true,
	"base":     true,
	"small":    true,
}

// KnownModels lists the accepted model identifiers in sorted order.
func KnownModels() []string {
	out := make([]string, 0, len(knownModels))
	for m := range knownModels {
		out = append(out, m)
	}
	sort.Strings(out)
	return out
}

var errModelMissing = errors.New("model weights not found")

// ModelStore resolves whisper model weights on disk, downloading them once
// when allowed. Resolved paths are cached for the life of the process.
type ModelStore struct {
	dir          string
	baseURL      string
	autoDownload bool
	httpClient   *http.Client

	mu       sync.Mutex
	resolved map[string]string
}

// NewModelStore creates a store rooted at cfg.ModelsDir.
func NewModelStore(cfg config.WhisperConfig) *ModelStore {
	return &ModelStore{
		dir:          cfg.ModelsDir,
		baseURL:      strings.TrimRight(cfg.DownloadURL, "/"),
		autoDownload: cfg.AutoDownload,
		httpClient:   http.DefaultClient,
		resolved:     make(map[string]string),
	}
}

// Path returns the weights file for model, fetching it on first use.
func (s *ModelStore) Path(ctx context.Context, model string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.resolved[model]; ok {
		return p, nil
	}

	p := filepath.Join(s.dir, modelFile(model))
	if _, err := os.Stat(p); err == nil {
		s.resolved[model] = p
		return p, nil
	}
	if !s.autoDownload {
		return "", fmt.Errorf("%w: %s", errModelMissing, p)
	}

	if err := s.download(ctx, model, p); err != nil {
		return "", fmt.Errorf("download model %s: %w", model, err)
	}
	s.resolved[model] = p
	return p, nil
}

func (s *ModelStore) download(ctx context.Context, model, dest string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create models dir: %w", err)
	}

	url := s.baseURL + "/" + modelFile(model)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp(s.dir, modelFile(model)+".part-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return fmt.Errorf("write weights: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close weights: %w", err)
	}
	return os.Rename(tmp.Name(), dest)
}

func modelFile(model string) string {
	return "ggml-" + model + ".bin"
}

package llm

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

// Registry owns the process-wide generative backend handle. The handle is
// built on first use and shared read-only afterwards.
type Registry struct {
	cfg    config.LLMConfig
	logger logger.Logger

	once   sync.Once
	client Client
}

// NewRegistry creates a Registry for the configured provider.
func NewRegistry(cfg config.LLMConfig, log logger.Logger) *Registry {
	return &Registry{cfg: cfg, logger: log}
}

// NewStaticRegistry wraps an already constructed client.
func NewStaticRegistry(c Client) *Registry {
	r := &Registry{client: c}
	r.once.Do(func() {})
	return r
}

// Client returns the shared backend, building it on first call.
func (r *Registry) Client() Client {
	r.once.Do(func() {
		r.client = r.build()
	})
	return r.client
}

// Generate implements Client by delegating to the shared backend.
// llm.max_output_tokens caps every request and is the default when a
// request sets no limit.
func (r *Registry) Generate(ctx context.Context, req Request) (string, error) {
	req.MaxOutputTokens = capTokens(req.MaxOutputTokens, r.cfg.MaxOutputTokens)
	return r.Client().Generate(ctx, req)
}

func capTokens(requested, limit int) int {
	if limit <= 0 {
		return requested
	}
	if requested <= 0 || requested > limit {
		return limit
	}
	return requested
}

func (r *Registry) build() Client {
	timeout := time.Duration(r.cfg.TimeoutSeconds) * time.Second

	if r.cfg.Provider == config.ProviderNone {
		return unavailableClient{reason: "llm.provider is none"}
	}
	if len(r.cfg.APIKeys) == 0 && r.cfg.BaseURL == "" {
		r.logger.Warn(context.Background(), "No API keys configured for %s, generative steps will use fallbacks", r.cfg.Provider)
		return unavailableClient{reason: fmt.Sprintf("no api keys for %s", r.cfg.Provider)}
	}

	switch r.cfg.Provider {
	case config.ProviderOpenAI:
		return newOpenAIClient(r.cfg, timeout)
	default:
		if len(r.cfg.APIKeys) == 0 {
			return unavailableClient{reason: "no api keys for gemini"}
		}
		return newGeminiClient(r.cfg, timeout, r.logger)
	}
}

type unavailableClient struct {
	reason string
}

func (u unavailableClient) Generate(context.Context, Request) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrUnavailable, u.reason)
}

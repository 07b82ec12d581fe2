package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

type geminiClient struct {
	apiKeys []string
	model   string
	timeout time.Duration
	logger  logger.Logger

	mu         sync.Mutex
	currentKey int
	clients    map[int]*genai.Client
}

func newGeminiClient(cfg config.LLMConfig, timeout time.Duration, log logger.Logger) *geminiClient {
	return &geminiClient{
		apiKeys: cfg.APIKeys,
		model:   cfg.Model,
		timeout: timeout,
		logger:  log,
		clients: make(map[int]*genai.Client),
	}
}

// Generate sends the prompt to Gemini and returns the concatenated text parts.
// Rotates API keys on 429 / quota errors.
func (g *geminiClient) Generate(ctx context.Context, req Request) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0),
	}
	if req.MaxOutputTokens > 0 {
		genCfg.MaxOutputTokens = int32(req.MaxOutputTokens)
	}

	var lastErr error
	for range len(g.apiKeys) {
		idx, client, err := g.client(ctx)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey(idx)
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), genCfg)
		if err != nil {
			if isRateLimited(err) {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				g.rotateKey(idx)
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				if part != nil && part.Text != "" {
					text.WriteString(part.Text)
				}
			}
			if text.Len() > 0 {
				return text.String(), nil
			}
		}

		return "", ErrEmptyResponse
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// client returns the cached genai client for the current key, creating it once.
func (g *geminiClient) client(ctx context.Context) (int, *genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.currentKey
	if c, ok := g.clients[idx]; ok {
		return idx, c, nil
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKeys[idx],
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return idx, nil, err
	}
	g.clients[idx] = c
	return idx, c, nil
}

// rotateKey advances past idx unless another caller already rotated.
func (g *geminiClient) rotateKey(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == idx {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

package llm

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
)

// greedyTemperature stands in for 0, which the request struct drops via omitempty.
const greedyTemperature = math.SmallestNonzeroFloat32

type openAIClient struct {
	cli     *openai.Client
	model   string
	timeout time.Duration
}

// newOpenAIClient talks to OpenAI or any compatible server when base_url is set.
func newOpenAIClient(cfg config.LLMConfig, timeout time.Duration) *openAIClient {
	var key string
	if len(cfg.APIKeys) > 0 {
		key = cfg.APIKeys[0]
	}
	clientCfg := openai.DefaultConfig(key)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &openAIClient{
		cli:     openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: timeout,
	}
}

func (o *openAIClient) Generate(ctx context.Context, req Request) (string, error) {
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	seed := 0
	chatReq := openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Prompt,
			},
		},
		MaxTokens:   req.MaxOutputTokens,
		Temperature: greedyTemperature,
		Seed:        &seed,
	}

	resp, err := o.cli.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

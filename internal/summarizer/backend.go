package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/llm"
)

const summaryPrompt = `You are writing meeting minutes. Summarize the meeting transcript excerpt below.

Requirements:
- Between %d and %d words
- Keep decisions, owners, dates and open questions
- Plain prose, no preamble, do not invent facts

Transcript:
---
%s
---`

type llmBackend struct {
	client llm.Client
}

// NewLLMBackend adapts a generative client to the summarization contract.
func NewLLMBackend(client llm.Client) Backend {
	return &llmBackend{client: client}
}

func (b *llmBackend) Summarize(ctx context.Context, text string, minWords, maxWords int) (string, error) {
	out, err := b.client.Generate(ctx, llm.Request{
		Prompt: fmt.Sprintf(summaryPrompt, minWords, maxWords, text),
		// roughly 4 tokens per 3 words, with headroom
		MaxOutputTokens: maxWords*2 + 32,
	})
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", llm.ErrEmptyResponse
	}
	return out, nil
}

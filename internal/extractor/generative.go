package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/llm"
)

var (
	// ErrUnparseable means no JSON array could be recovered from the model output.
	ErrUnparseable = errors.New("model output is not a json array")
	// ErrNoItems means the model returned an empty array.
	ErrNoItems = errors.New("model returned no action items")
)

const extractionInstruction = "You are an assistant that reads meeting transcripts and extracts action items. " +
	"Output a JSON array where each item has: id (int), action (short action text), " +
	"owner (person or null), deadline (date or text or null), context (the sentence from the transcript). " +
	"If there are no action items, output an empty JSON array: [].\n\n" +
	"Transcript:\n"

type generative struct {
	client          llm.Client
	maxOutputTokens int
}

// NewGenerative creates the model-backed strategy.
func NewGenerative(client llm.Client, maxOutputTokens int) Strategy {
	if maxOutputTokens <= 0 {
		maxOutputTokens = 512
	}
	return &generative{client: client, maxOutputTokens: maxOutputTokens}
}

func (g *generative) Name() Source { return SourceGenerative }

func (g *generative) Extract(ctx context.Context, transcript string) ([]any, error) {
	raw, err := g.client.Generate(ctx, llm.Request{
		Prompt:          buildPrompt(transcript),
		MaxOutputTokens: g.maxOutputTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("generate action items: %w", err)
	}

	items, ok := parseJSONArray(raw)
	if !ok {
		return nil, ErrUnparseable
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	return items, nil
}

func buildPrompt(transcript string) string {
	return extractionInstruction + strings.TrimSpace(transcript)
}

// parseJSONArray decodes text as a JSON array, or failing that the span
// from the first '[' to the last ']'.
func parseJSONArray(text string) ([]any, bool) {
	var items []any
	if err := json.Unmarshal([]byte(text), &items); err == nil && items != nil {
		return items, true
	}

	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return nil, false
	}
	items = nil
	if err := json.Unmarshal([]byte(text[start:end+1]), &items); err != nil || items == nil {
		return nil, false
	}
	return items, true
}

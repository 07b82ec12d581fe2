package llm

import (
	"context"
	"errors"
)

// Client generates text from a prompt. Implementations decode greedily so
// identical requests yield identical output.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Request is a single generation call.
type Request struct {
	Prompt          string
	MaxOutputTokens int
}

var (
	// ErrUnavailable means no generative backend is configured.
	ErrUnavailable = errors.New("llm backend unavailable")
	// ErrEmptyResponse means the backend answered without any text.
	ErrEmptyResponse = errors.New("empty response from llm")
)

// IsUnavailable reports whether err is caused by a missing backend.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

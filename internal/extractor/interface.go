package extractor

import (
	"context"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

// Extractor turns a transcript into a normalized action-item list.
type Extractor interface {
	// Extract always returns a well-formed list; generative failures fall
	// back to the deterministic strategy and are reported in the Result.
	Extract(ctx context.Context, transcript string, useModel bool) Result
}

// Strategy is one way of finding action items. Items are raw values
// (decoded JSON objects or models.ActionItem) that Normalize understands.
type Strategy interface {
	Name() Source
	Extract(ctx context.Context, transcript string) ([]any, error)
}

// Source names the strategy that produced a Result.
type Source string

const (
	SourceNone          Source = "none"
	SourceGenerative    Source = "generative"
	SourceDeterministic Source = "deterministic"
)

// FallbackReason records why the generative strategy was abandoned.
type FallbackReason string

const (
	NoFallback        FallbackReason = ""
	FallbackBackend   FallbackReason = "backend_error"
	FallbackUnparsed  FallbackReason = "unparseable_output"
	FallbackEmpty     FallbackReason = "empty_output"
	FallbackRecovered FallbackReason = "panic"
)

// Result is the normalized list plus how it was produced.
type Result struct {
	Items    []models.ActionItem
	Source   Source
	Fallback FallbackReason
	// Err is the generative failure behind Fallback, for logging and tests.
	Err error
}

// Degraded reports whether the generative strategy was tried and abandoned.
func (r Result) Degraded() bool {
	return r.Fallback != NoFallback
}

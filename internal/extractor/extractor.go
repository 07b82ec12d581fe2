package extractor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

// Extract runs the generative strategy when useModel is set and falls back to
// the deterministic one on any failure. Both paths are normalized.
func (e *implExtractor) Extract(ctx context.Context, transcript string, useModel bool) Result {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return Result{Items: []models.ActionItem{}, Source: SourceNone}
	}

	if !useModel {
		return e.runDeterministic(ctx, transcript, NoFallback, nil)
	}

	raw, err := e.tryGenerative(ctx, transcript)
	if err == nil {
		items := Normalize(raw)
		e.logger.Info(ctx, "Extracted %d action item(s) with %s strategy", len(items), e.generative.Name())
		return Result{Items: items, Source: e.generative.Name()}
	}

	reason := fallbackReason(err)
	e.logger.Warn(ctx, "Generative extraction failed (%s), using pattern fallback: %v", reason, err)
	return e.runDeterministic(ctx, transcript, reason, err)
}

func (e *implExtractor) runDeterministic(ctx context.Context, transcript string, reason FallbackReason, cause error) Result {
	raw, err := e.deterministic.Extract(ctx, transcript)
	if err != nil {
		e.logger.Error(ctx, "Pattern extraction failed: %v", err)
		raw = nil
	}
	items := Normalize(raw)
	e.logger.Info(ctx, "Extracted %d action item(s) with %s strategy", len(items), e.deterministic.Name())
	return Result{
		Items:    items,
		Source:   e.deterministic.Name(),
		Fallback: reason,
		Err:      cause,
	}
}

// tryGenerative converts panics from the backend into errors so the caller
// always gets a list.
func (e *implExtractor) tryGenerative(ctx context.Context, transcript string) (raw []any, err error) {
	defer func() {
		if r := recover(); r != nil {
			raw = nil
			err = fmt.Errorf("%w: %v", errPanicked, r)
		}
	}()
	return e.generative.Extract(ctx, transcript)
}

var errPanicked = errors.New("generative strategy panicked")

func fallbackReason(err error) FallbackReason {
	switch {
	case errors.Is(err, ErrUnparseable):
		return FallbackUnparsed
	case errors.Is(err, ErrNoItems):
		return FallbackEmpty
	case errors.Is(err, errPanicked):
		return FallbackRecovered
	default:
		return FallbackBackend
	}
}

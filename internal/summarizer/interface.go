package summarizer

import "context"

// Summarizer condenses a transcript into meeting minutes.
type Summarizer interface {
	// Summarize never fails: backend errors degrade to extractive fallbacks
	// and are reported in the Result.
	Summarize(ctx context.Context, transcript string, maxChunkWords int) Result
}

// Backend produces a condensed version of text bounded by minWords and
// maxWords. Implementations must decode deterministically.
type Backend interface {
	Summarize(ctx context.Context, text string, minWords, maxWords int) (string, error)
}

// Result is the minutes text plus how it was produced.
type Result struct {
	Text string
	// Chunks is the number of windows the transcript was split into.
	Chunks int
	// ChunkFallbacks counts chunks summarized by the first-sentences heuristic.
	ChunkFallbacks int
	// FinalFallback is set when consolidation failed and partials were joined as-is.
	FinalFallback bool
}

// Degraded reports whether any stage fell back to a heuristic.
func (r Result) Degraded() bool {
	return r.ChunkFallbacks > 0 || r.FinalFallback
}

package summarizer

import (
	"context"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/minutes-flow/internal/textutil"
)

var (
	reTrailingSpace = regexp.MustCompile(`[ \t\r\f\v]+\n`)
	reBlankRuns     = regexp.MustCompile(`\n{3,}`)
)

// Summarize splits the transcript into word windows, summarizes each one and
// consolidates the partial summaries with a final pass.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string, maxChunkWords int) Result {
	if strings.TrimSpace(transcript) == "" {
		return Result{}
	}
	if maxChunkWords <= 0 {
		maxChunkWords = s.opts.DefaultChunkWords
	}

	chunks := chunkText(transcript, maxChunkWords)
	res := Result{Chunks: len(chunks)}
	s.logger.Info(ctx, "Summarizing transcript in %d chunk(s) of up to %d words", len(chunks), maxChunkWords)

	partials := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		text, err := s.backend.Summarize(ctx, chunk, s.opts.ChunkMinWords, s.opts.ChunkMaxWords)
		if err != nil {
			s.logger.Warn(ctx, "[%d/%d] Chunk summary failed, using first %d sentences: %v",
				i+1, len(chunks), s.opts.FallbackSentences, err)
			text = textutil.FirstSentences(chunk, s.opts.FallbackSentences)
			res.ChunkFallbacks++
		}
		partials = append(partials, strings.TrimSpace(text))
	}

	combined := strings.Join(partials, "\n\n")
	final, err := s.backend.Summarize(ctx, combined, s.opts.FinalMinWords, s.opts.FinalMaxWords)
	if err != nil {
		s.logger.Warn(ctx, "Consolidation pass failed, returning partial summaries: %v", err)
		final = combined
		res.FinalFallback = true
	}

	res.Text = cleanSummary(final)
	return res
}

// chunkText partitions text into consecutive windows of maxWords words.
// Text that already fits is returned unchanged as a single chunk.
func chunkText(text string, maxWords int) []string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return []string{text}
	}

	chunks := make([]string, 0, (len(words)+maxWords-1)/maxWords)
	for i := 0; i < len(words); i += maxWords {
		end := min(i+maxWords, len(words))
		chunks = append(chunks, strings.Join(words[i:end], " "))
	}
	return chunks
}

func cleanSummary(s string) string {
	s = reTrailingSpace.ReplaceAllString(s, "\n")
	s = reBlankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/llm"
	"github.com/nguyentantai21042004/minutes-flow/internal/logger"
)

type call struct {
	text     string
	min, max int
}

// fakeBackend fails on the calls listed in failOn (0-based) and otherwise
// returns "S<n>" for the nth call.
type fakeBackend struct {
	calls  []call
	failOn map[int]bool
}

func (f *fakeBackend) Summarize(_ context.Context, text string, minWords, maxWords int) (string, error) {
	n := len(f.calls)
	f.calls = append(f.calls, call{text, minWords, maxWords})
	if f.failOn[n] {
		return "", errors.New("backend down")
	}
	return fmt.Sprintf("S%d", n), nil
}

func testOptions() Options {
	return Options{
		DefaultChunkWords: 800,
		ChunkMinWords:     30,
		ChunkMaxWords:     130,
		FinalMinWords:     60,
		FinalMaxWords:     180,
		FallbackSentences: 3,
	}
}

func llmNone() config.LLMConfig {
	return config.LLMConfig{Provider: config.ProviderNone}
}

func words(n int) string {
	w := make([]string, n)
	for i := range w {
		w[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(w, " ")
}

func TestChunkText(t *testing.T) {
	tests := []struct {
		name      string
		words     int
		k         int
		wantCount int
	}{
		{"shorter than window", 5, 10, 1},
		{"exactly one window", 10, 10, 1},
		{"one word over", 11, 10, 2},
		{"exact multiple", 30, 10, 3},
		{"ragged tail", 2501, 800, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := words(tt.words)
			chunks := chunkText(text, tt.k)
			require.Len(t, chunks, tt.wantCount)

			var rebuilt []string
			for i, c := range chunks {
				n := len(strings.Fields(c))
				assert.LessOrEqual(t, n, tt.k)
				if i < len(chunks)-1 {
					assert.Equal(t, tt.k, n)
				}
				rebuilt = append(rebuilt, strings.Fields(c)...)
			}
			assert.Equal(t, strings.Fields(text), rebuilt)
		})
	}
}

func TestChunkTextKeepsShortTextVerbatim(t *testing.T) {
	text := "Line one.\n\nLine   two."
	assert.Equal(t, []string{text}, chunkText(text, 100))
}

func TestSummarizeEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		backend := &fakeBackend{}
		s := New(backend, testOptions(), logger.NewNop())

		res := s.Summarize(context.Background(), in, 800)
		assert.Equal(t, "", res.Text)
		assert.Empty(t, backend.calls)
	}
}

func TestSummarizeChunksThenConsolidates(t *testing.T) {
	backend := &fakeBackend{}
	s := New(backend, testOptions(), logger.NewNop())

	res := s.Summarize(context.Background(), words(25), 10)

	require.Len(t, backend.calls, 4)
	for _, c := range backend.calls[:3] {
		assert.Equal(t, 30, c.min)
		assert.Equal(t, 130, c.max)
	}
	assert.Equal(t, "S0\n\nS1\n\nS2", backend.calls[3].text)
	assert.Equal(t, 60, backend.calls[3].min)
	assert.Equal(t, 180, backend.calls[3].max)
	assert.Equal(t, "S3", res.Text)
	assert.Equal(t, 3, res.Chunks)
	assert.False(t, res.Degraded())
}

func TestSummarizeChunkFallback(t *testing.T) {
	backend := &fakeBackend{failOn: map[int]bool{0: true}}
	s := New(backend, testOptions(), logger.NewNop())

	transcript := "One. Two. Three. Four. Five."
	res := s.Summarize(context.Background(), transcript, 800)

	require.Len(t, backend.calls, 2)
	assert.Equal(t, "One. Two. Three.", backend.calls[1].text)
	assert.Equal(t, 1, res.ChunkFallbacks)
	assert.True(t, res.Degraded())
	assert.Equal(t, "S1", res.Text)
}

func TestSummarizeFinalFallbackReturnsConcatenation(t *testing.T) {
	backend := &fakeBackend{failOn: map[int]bool{2: true}}
	s := New(backend, testOptions(), logger.NewNop())

	res := s.Summarize(context.Background(), words(20), 10)

	assert.True(t, res.FinalFallback)
	assert.Equal(t, "S0\n\nS1", res.Text)
}

func TestSummarizeAllFailuresStillProduceOutput(t *testing.T) {
	s := New(NewLLMBackend(llm.NewRegistry(llmNone(), logger.NewNop())), testOptions(), logger.NewNop())

	res := s.Summarize(context.Background(), "We agreed on the plan. Bob owns it. Launch is in May. Extra detail.", 800)

	assert.Equal(t, "We agreed on the plan. Bob owns it. Launch is in May.", res.Text)
	assert.Equal(t, 1, res.ChunkFallbacks)
	assert.True(t, res.FinalFallback)
}

func TestSummarizeNonPositiveChunkUsesDefault(t *testing.T) {
	backend := &fakeBackend{}
	opts := testOptions()
	opts.DefaultChunkWords = 5
	s := New(backend, opts, logger.NewNop())

	res := s.Summarize(context.Background(), words(12), 0)
	assert.Equal(t, 3, res.Chunks)
}

func TestSummarizeIsDeterministic(t *testing.T) {
	run := func() string {
		s := New(&fakeBackend{}, testOptions(), logger.NewNop())
		return s.Summarize(context.Background(), words(50), 20).Text
	}
	assert.Equal(t, run(), run())
}

func TestCleanSummary(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing spaces before newline", "a   \nb", "a\nb"},
		{"many blank lines", "a\n\n\n\n\nb", "a\n\nb"},
		{"single blank line kept", "a\n\nb", "a\n\nb"},
		{"outer whitespace", "  \n a \n ", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanSummary(tt.in))
		})
	}
}

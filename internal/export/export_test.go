package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

var fixedTime = time.Date(2025, 3, 7, 14, 5, 9, 0, time.UTC)

func newTestExporter(t *testing.T) (*implExporter, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "out")
	return &implExporter{dir: dir, now: func() time.Time { return fixedTime }}, dir
}

func TestTimestampedFilename(t *testing.T) {
	assert.Equal(t, "minutes_20250307_140509.md", TimestampedFilename("minutes", "md", fixedTime))
}

func TestFormatTimestamped(t *testing.T) {
	segs := []models.Segment{
		{Start: 0.4, End: 2, Text: " Hello team. "},
		{Start: 65.9, End: 70, Text: "Bob will send it."},
		{Start: 3725, End: 3730, Text: "Wrap up."},
	}
	assert.Equal(t, "[00:00] Hello team.\n[01:05] Bob will send it.\n[62:05] Wrap up.", FormatTimestamped(segs))
	assert.Equal(t, "", FormatTimestamped(nil))
}

func TestFormatSRT(t *testing.T) {
	segs := []models.Segment{
		{Start: 0, End: 2.5, Text: "Hello team."},
		{Start: 2.5, End: 3, Text: "  "},
		{Start: 3661.25, End: 3662, Text: "Later."},
	}
	want := "1\n00:00:00,000 --> 00:00:02,500\nHello team.\n\n" +
		"2\n01:01:01,250 --> 01:01:02,000\nLater.\n\n"
	assert.Equal(t, want, FormatSRT(segs))
}

func TestWriteTranscriptAndMinutes(t *testing.T) {
	e, dir := newTestExporter(t)

	p, err := e.WriteTranscript("hello")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "transcript_20250307_140509.txt"), p)
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	p, err = e.WriteMinutes("# Minutes")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "minutes_20250307_140509.md"), p)
}

func TestWriteActions(t *testing.T) {
	e, _ := newTestExporter(t)

	items := []models.ActionItem{
		{ID: 1, Action: "Send <report>", Owner: models.StringPtr("Bob"), Context: "Send <report>"},
	}
	p, err := e.WriteActions(items)
	require.NoError(t, err)
	assert.Equal(t, "action_items_20250307_140509.json", filepath.Base(p))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	want := `[
  {
    "id": 1,
    "action": "Send <report>",
    "owner": "Bob",
    "deadline": null,
    "context": "Send <report>"
  }
]
`
	assert.Equal(t, want, string(data))
}

func TestWriteActionsEmpty(t *testing.T) {
	e, _ := newTestExporter(t)

	p, err := e.WriteActions(nil)
	require.NoError(t, err)
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestWriteSRT(t *testing.T) {
	e, _ := newTestExporter(t)

	p, err := e.WriteSRT([]models.Segment{{Start: 1, End: 2, Text: "Hi"}})
	require.NoError(t, err)
	assert.Equal(t, "subtitles_20250307_140509.srt", filepath.Base(p))
}

func TestWriteMinutesDocx(t *testing.T) {
	e, _ := newTestExporter(t)

	items := []models.ActionItem{
		{ID: 1, Action: "Send report", Owner: models.StringPtr("Bob"), Deadline: models.StringPtr("Friday")},
		{ID: 2, Action: "Book venue"},
	}
	p, err := e.WriteMinutesDocx("Meeting Minutes", "## Summary\n\n- **Budget** approved\n1. Next steps", items)
	require.NoError(t, err)
	assert.Equal(t, "minutes_20250307_140509.docx", filepath.Base(p))

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestActionLine(t *testing.T) {
	assert.Equal(t, "Book venue", actionLine(models.ActionItem{Action: "Book venue"}))
	assert.Equal(t, "Send (**Owner:** Bob, **Due:** Jan 5)", actionLine(models.ActionItem{
		Action:   "Send",
		Owner:    models.StringPtr("Bob"),
		Deadline: models.StringPtr("Jan 5"),
	}))
}

func TestWriteSameSecondDoesNotOverwrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	clock := func() time.Time { return fixedTime }
	a := &implExporter{dir: dir, now: clock}
	b := &implExporter{dir: dir, now: clock}

	pa, err := a.WriteMinutes("run A minutes")
	require.NoError(t, err)
	pb, err := b.WriteMinutes("run B minutes")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "minutes_20250307_140509.md"), pa)
	assert.Equal(t, filepath.Join(dir, "minutes_20250307_140509_2.md"), pb)

	data, err := os.ReadFile(pa)
	require.NoError(t, err)
	assert.Equal(t, "run A minutes", string(data))
	data, err = os.ReadFile(pb)
	require.NoError(t, err)
	assert.Equal(t, "run B minutes", string(data))

	pc, err := a.WriteMinutesDocx("Minutes", "text", nil)
	require.NoError(t, err)
	pd, err := b.WriteMinutesDocx("Minutes", "text", nil)
	require.NoError(t, err)
	assert.NotEqual(t, pc, pd)
}

func TestWriteConcurrentRunsGetDistinctFiles(t *testing.T) {
	e, _ := newTestExporter(t)

	const runs = 8
	paths := make([]string, runs)
	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := e.WriteTranscript(fmt.Sprintf("transcript %d", i))
			assert.NoError(t, err)
			paths[i] = p
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	for i, p := range paths {
		require.False(t, seen[p], p)
		seen[p] = true
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("transcript %d", i), string(data))
	}
}

func TestParseMarkdownLine(t *testing.T) {
	tests := []struct {
		line   string
		want   block
		wantOK bool
	}{
		{"", block{}, false},
		{"  ---  ", block{}, false},
		{"## Summary", block{text: "Summary", heading: true, size: 14}, true},
		{"- **Budget** approved", block{text: listIndent + "• **Budget** approved", size: fontSize}, true},
		{"2.  Next steps", block{text: listIndent + "2. Next steps", size: fontSize}, true},
		{"Plain text.", block{text: "Plain text.", size: fontSize}, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := parseMarkdownLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

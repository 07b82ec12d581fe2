package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/minutes-flow/internal/config"
	"github.com/nguyentantai21042004/minutes-flow/internal/models"
)

func TestApplyFlags(t *testing.T) {
	t.Cleanup(func() {
		model, chunkWords, toneName, noModel, outputDir = "", 0, "", false, ""
	})
	model = "faster-base.en"
	chunkWords = 300
	toneName = "exec"
	noModel = true
	outputDir = "/tmp/out"

	cfg := config.Default()
	applyFlags(cfg)

	assert.Equal(t, "faster-base.en", cfg.Whisper.Model)
	assert.Equal(t, 300, cfg.Summarizer.MaxChunkWords)
	assert.Equal(t, "exec", cfg.Minutes.Tone)
	assert.False(t, cfg.UseModelForActions())
	assert.Equal(t, "/tmp/out", cfg.Paths.Output)
}

func TestApplyFlagsKeepsConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Minutes.Prefix = "Weekly sync"
	applyFlags(cfg)

	assert.Equal(t, "Weekly sync", cfg.Minutes.Prefix)
	assert.True(t, cfg.UseModelForActions())
}

func TestPrintActions(t *testing.T) {
	var buf bytes.Buffer
	printActions(&buf, []models.ActionItem{
		{ID: 1, Action: "Send report", Owner: models.StringPtr("Bob"), Deadline: models.StringPtr("Jan 5")},
		{ID: 2, Action: "Book venue"},
	})

	assert.Equal(t, "## Action Items\n\n1. Send report (owner: Bob, due: Jan 5)\n2. Book venue\n", buf.String())
}

func TestPrintActionsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printActions(&buf, nil)
	assert.Contains(t, buf.String(), "No action items found.")
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"run", "watch", "summarize", "actions"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name:    "openai provider",
			config:  Config{LLM: LLMConfig{Provider: ProviderOpenAI}},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			config:  Config{LLM: LLMConfig{Provider: "claude-local"}},
			wantErr: true,
		},
		{
			name:    "negative chunk size",
			config:  Config{Summarizer: SummarizerConfig{MaxChunkWords: -5}},
			wantErr: true,
		},
		{
			name:    "inverted chunk bounds",
			config:  Config{Summarizer: SummarizerConfig{ChunkMinWords: 200, ChunkMaxWords: 100}},
			wantErr: true,
		},
		{
			name:    "chunk min above default max",
			config:  Config{Summarizer: SummarizerConfig{ChunkMinWords: 200}},
			wantErr: true,
		},
		{
			name:    "chunk max below default min",
			config:  Config{Summarizer: SummarizerConfig{ChunkMaxWords: 20}},
			wantErr: true,
		},
		{
			name:    "final min above default max",
			config:  Config{Summarizer: SummarizerConfig{FinalMinWords: 300}},
			wantErr: true,
		},
		{
			name:    "chunk min within default max",
			config:  Config{Summarizer: SummarizerConfig{ChunkMinWords: 100}},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Equal(t, "tiny.en", cfg.Whisper.Model)
	assert.Equal(t, 800, cfg.Summarizer.MaxChunkWords)
	assert.Equal(t, 30, cfg.Summarizer.ChunkMinWords)
	assert.Equal(t, 130, cfg.Summarizer.ChunkMaxWords)
	assert.Equal(t, 60, cfg.Summarizer.FinalMinWords)
	assert.Equal(t, 180, cfg.Summarizer.FinalMaxWords)
	assert.Equal(t, 3, cfg.Summarizer.FallbackSentences)
	assert.Equal(t, 512, cfg.Extractor.MaxOutputTokens)
	assert.Equal(t, "concise", cfg.Minutes.Tone)
	assert.Equal(t, 16000, cfg.FFmpeg.SampleRate)
	assert.True(t, cfg.UseModelForActions())
}

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "")
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
whisper:
  binary_path: "./whisper-cli"
  models_dir: "models"
  model: "base.en"
  threads: 8

llm:
  provider: "gemini"
  api_keys: ["k1", "k2"]

summarizer:
  max_chunk_words: 400

extractor:
  use_model: false

minutes:
  tone: "executive"
  prefix: "Weekly sync"

paths:
  input: "data/input"
  output: "data/output"

logging:
  level: "debug"
  format: "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "base.en", cfg.Whisper.Model)
	assert.Equal(t, 8, cfg.Whisper.Threads)
	assert.Equal(t, []string{"k1", "k2"}, cfg.LLM.APIKeys)
	assert.Equal(t, 400, cfg.Summarizer.MaxChunkWords)
	assert.False(t, cfg.UseModelForActions())
	assert.Equal(t, "executive", cfg.Minutes.Tone)
	assert.Equal(t, "Weekly sync", cfg.Minutes.Prefix)
	assert.Equal(t, "data/archived", cfg.Paths.Archived)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadKeysFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", " sk-test ")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  provider: openai\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"sk-test"}, cfg.LLM.APIKeys)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	assert.Error(t, err)
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEYS", "k1, k2,")

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, []string{"k1", "k2"}, cfg.LLM.APIKeys)
	assert.Equal(t, "tiny.en", cfg.Whisper.Model)
}

func TestLoadOrDefaultInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm: [unterminated"), 0644))

	_, err := LoadOrDefault(path)
	assert.Error(t, err)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Whisper       WhisperConfig       `yaml:"whisper"`
	FasterWhisper FasterWhisperConfig `yaml:"faster_whisper"`
	FFmpeg        FFmpegConfig        `yaml:"ffmpeg"`
	LLM           LLMConfig           `yaml:"llm"`
	Summarizer    SummarizerConfig    `yaml:"summarizer"`
	Extractor     ExtractorConfig     `yaml:"extractor"`
	Minutes       MinutesConfig       `yaml:"minutes"`
	Paths         PathsConfig         `yaml:"paths"`
	Logging       LoggingConfig       `yaml:"logging"`
	Performance   PerformanceConfig   `yaml:"performance"`
	Metrics       MetricsConfig       `yaml:"metrics"`
}

type WhisperConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	ModelsDir    string `yaml:"models_dir"`
	Model        string `yaml:"model"`
	Threads      int    `yaml:"threads"`
	AutoDownload bool   `yaml:"auto_download"`
	DownloadURL  string `yaml:"download_url"`
}

type FasterWhisperConfig struct {
	// BinaryPath of a faster-whisper CLI; empty disables the alternate backend.
	BinaryPath string `yaml:"binary_path"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type LLMConfig struct {
	Provider        string   `yaml:"provider"`
	Model           string   `yaml:"model"`
	APIKeys         []string `yaml:"api_keys"`
	BaseURL         string   `yaml:"base_url"`
	// MaxOutputTokens caps every generation request.
	MaxOutputTokens int      `yaml:"max_output_tokens"`
	TimeoutSeconds  int      `yaml:"timeout_seconds"`
}

type SummarizerConfig struct {
	MaxChunkWords     int `yaml:"max_chunk_words"`
	ChunkMinWords     int `yaml:"chunk_min_words"`
	ChunkMaxWords     int `yaml:"chunk_max_words"`
	FinalMinWords     int `yaml:"final_min_words"`
	FinalMaxWords     int `yaml:"final_max_words"`
	FallbackSentences int `yaml:"fallback_sentences"`
}

type ExtractorConfig struct {
	UseModel        *bool `yaml:"use_model"`
	MaxOutputTokens int   `yaml:"max_output_tokens"`
}

type MinutesConfig struct {
	Tone              string `yaml:"tone"`
	Prefix            string `yaml:"prefix"`
	IncludeTimestamps bool   `yaml:"include_timestamps"`
	Docx              bool   `yaml:"docx"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type MetricsConfig struct {
	// Address for the Prometheus endpoint in watch mode; empty disables it.
	Address string `yaml:"address"`
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

// Default returns a Config with every default filled in.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Load reads a YAML config file, applies environment overrides and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault behaves like Load but falls back to defaults plus environment
// overrides when path does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := &Config{}
		cfg.applyEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("validate config: %w", err)
		}
		return cfg, nil
	}
	return Load(path)
}

func (c *Config) applyEnv() {
	if len(c.LLM.APIKeys) > 0 {
		return
	}
	var raw string
	switch c.LLM.Provider {
	case ProviderOpenAI:
		raw = os.Getenv("OPENAI_API_KEY")
	default:
		raw = os.Getenv("GEMINI_API_KEYS")
	}
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			c.LLM.APIKeys = append(c.LLM.APIKeys, k)
		}
	}
}

// UseModelForActions reports whether action extraction should try the
// generative backend first. Defaults to true.
func (c *Config) UseModelForActions() bool {
	if c.Extractor.UseModel == nil {
		return true
	}
	return *c.Extractor.UseModel
}

func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "":
		c.LLM.Provider = ProviderGemini
	case ProviderGemini, ProviderOpenAI, ProviderNone:
	default:
		return fmt.Errorf("llm.provider must be one of gemini, openai, none (got %q)", c.LLM.Provider)
	}

	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelsDir == "" {
		c.Whisper.ModelsDir = "models"
	}
	if c.Whisper.Model == "" {
		c.Whisper.Model = "tiny.en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Whisper.DownloadURL == "" {
		c.Whisper.DownloadURL = "https://huggingface.co/ggerganov/whisper.cpp/resolve/main"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}

	if c.LLM.Model == "" {
		switch c.LLM.Provider {
		case ProviderOpenAI:
			c.LLM.Model = "gpt-4o-mini"
		default:
			c.LLM.Model = "gemini-2.5-flash"
		}
	}
	if c.LLM.MaxOutputTokens == 0 {
		c.LLM.MaxOutputTokens = 1024
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = 120
	}

	if c.Summarizer.MaxChunkWords == 0 {
		c.Summarizer.MaxChunkWords = 800
	}
	if c.Summarizer.ChunkMinWords == 0 {
		c.Summarizer.ChunkMinWords = 30
	}
	if c.Summarizer.ChunkMaxWords == 0 {
		c.Summarizer.ChunkMaxWords = 130
	}
	if c.Summarizer.FinalMinWords == 0 {
		c.Summarizer.FinalMinWords = 60
	}
	if c.Summarizer.FinalMaxWords == 0 {
		c.Summarizer.FinalMaxWords = 180
	}
	if c.Summarizer.FallbackSentences == 0 {
		c.Summarizer.FallbackSentences = 3
	}
	if c.Extractor.MaxOutputTokens == 0 {
		c.Extractor.MaxOutputTokens = 512
	}
	if c.Minutes.Tone == "" {
		c.Minutes.Tone = "concise"
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}

	// bounds are checked after defaults so a single configured side is
	// compared against the default of the other
	if c.Summarizer.MaxChunkWords < 0 {
		return fmt.Errorf("summarizer.max_chunk_words must be positive")
	}
	if c.Summarizer.ChunkMinWords > c.Summarizer.ChunkMaxWords {
		return fmt.Errorf("summarizer.chunk_min_words (%d) exceeds chunk_max_words (%d)",
			c.Summarizer.ChunkMinWords, c.Summarizer.ChunkMaxWords)
	}
	if c.Summarizer.FinalMinWords > c.Summarizer.FinalMaxWords {
		return fmt.Errorf("summarizer.final_min_words (%d) exceeds final_max_words (%d)",
			c.Summarizer.FinalMinWords, c.Summarizer.FinalMaxWords)
	}

	return nil
}

package config

import (
	"fmt"
	"time"
)

// Summarizer providers.
const (
	ProviderOpenAI           = "openai"
	ProviderOpenAIFileSearch = "openai_file_search"
	ProviderGemini           = "gemini"
)

// Transcriber providers.
const (
	TranscriberWhisper = "whisper"
	TranscriberOpenAI  = "openai"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Transcriber TranscriberConfig `yaml:"transcriber"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	AllowedOrigin   string        `yaml:"allowed_origin"`
	MaxUploadMB     int64         `yaml:"max_upload_mb"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	SampleRate int    `yaml:"sample_rate"`
	Channels   int    `yaml:"channels"`
}

type TranscriberConfig struct {
	Provider string `yaml:"provider"`
	Language string `yaml:"language"`
}

type SummarizerConfig struct {
	Provider   string `yaml:"provider"`
	PromptFile string `yaml:"prompt_file"`
}

type OpenAIConfig struct {
	APIKey             string `yaml:"api_key"`
	BaseURL            string `yaml:"base_url"`
	Model              string `yaml:"model"`
	TranscriptionModel string `yaml:"transcription_model"`
	VectorStoreID      string `yaml:"vector_store_id"`
	MaxSearchResults   int    `yaml:"max_search_results"`
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type PathsConfig struct {
	Temp string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// MaxUploadBytes is the request body limit for uploads.
func (c *Config) MaxUploadBytes() int64 {
	return c.Server.MaxUploadMB << 20
}

func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Server.AllowedOrigin == "" {
		c.Server.AllowedOrigin = "http://localhost:5173"
	}
	if c.Server.MaxUploadMB <= 0 {
		c.Server.MaxUploadMB = 100
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 2 * time.Minute
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Minute
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 30 * time.Second
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.FFmpeg.Channels == 0 {
		c.FFmpeg.Channels = 1
	}
	if c.Transcriber.Provider == "" {
		c.Transcriber.Provider = TranscriberWhisper
	}
	if c.Transcriber.Language == "" {
		c.Transcriber.Language = "en"
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = ProviderOpenAIFileSearch
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.OpenAI.TranscriptionModel == "" {
		c.OpenAI.TranscriptionModel = "whisper-1"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	switch c.Transcriber.Provider {
	case TranscriberWhisper:
		if c.Whisper.ModelPath == "" {
			return fmt.Errorf("whisper.model_path is required")
		}
	case TranscriberOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for the openai transcriber")
		}
	default:
		return fmt.Errorf("unknown transcriber.provider %q", c.Transcriber.Provider)
	}

	switch c.Summarizer.Provider {
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
	case ProviderOpenAIFileSearch:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
		if c.OpenAI.VectorStoreID == "" {
			return fmt.Errorf("OPENAI_VECTOR_STORE_ID is required")
		}
	case ProviderGemini:
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required")
		}
	default:
		return fmt.Errorf("unknown summarizer.provider %q", c.Summarizer.Provider)
	}

	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must be positive")
	}

	return nil
}

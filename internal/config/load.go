package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path (skipped when path is empty), applies
// .env and environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.OpenAI.APIKey = getEnv("OPENAI_API_KEY", cfg.OpenAI.APIKey)
	cfg.OpenAI.BaseURL = getEnv("OPENAI_BASE_URL", cfg.OpenAI.BaseURL)
	cfg.OpenAI.VectorStoreID = getEnv("OPENAI_VECTOR_STORE_ID", cfg.OpenAI.VectorStoreID)
	cfg.Gemini.APIKey = getEnv("GEMINI_API_KEY", cfg.Gemini.APIKey)
	cfg.Whisper.ModelPath = getEnv("WHISPER_MODEL_PATH", cfg.Whisper.ModelPath)
	cfg.Server.Addr = getEnv("SCRIBE_ADDR", cfg.Server.Addr)
	cfg.Server.AllowedOrigin = getEnv("SCRIBE_ALLOWED_ORIGIN", cfg.Server.AllowedOrigin)
	cfg.Logging.Level = getEnv("SCRIBE_LOG_LEVEL", cfg.Logging.Level)
	cfg.Summarizer.Provider = getEnv("SCRIBE_SUMMARIZER", cfg.Summarizer.Provider)
	cfg.Transcriber.Provider = getEnv("SCRIBE_TRANSCRIBER", cfg.Transcriber.Provider)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

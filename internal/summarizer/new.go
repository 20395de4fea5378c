package summarizer

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/internal/logger"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

// New builds the Summarizer selected by cfg.Summarizer.Provider.
func New(ctx context.Context, cfg *config.Config, prompt *Prompt, log logger.Logger) (Summarizer, error) {
	switch cfg.Summarizer.Provider {
	case config.ProviderOpenAI:
		clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
		if cfg.OpenAI.BaseURL != "" {
			clientCfg.BaseURL = cfg.OpenAI.BaseURL
		}
		return NewOpenAI(openai.NewClientWithConfig(clientCfg), cfg.OpenAI.Model, prompt, log), nil

	case config.ProviderOpenAIFileSearch:
		baseURL := cfg.OpenAI.BaseURL
		if baseURL == "" {
			baseURL = defaultOpenAIBaseURL
		}
		return NewFileSearch(FileSearchOptions{
			BaseURL:          baseURL,
			APIKey:           cfg.OpenAI.APIKey,
			Model:            cfg.OpenAI.Model,
			VectorStoreID:    cfg.OpenAI.VectorStoreID,
			MaxSearchResults: cfg.OpenAI.MaxSearchResults,
		}, &http.Client{}, prompt, log), nil

	case config.ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		return NewGemini(client, cfg.Gemini.Model, prompt, log), nil

	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", cfg.Summarizer.Provider)
	}
}

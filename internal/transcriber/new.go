package transcriber

import (
	"fmt"

	"github.com/nguyentantai21042004/scribe/internal/config"
	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/nguyentantai21042004/scribe/pkg/executor"
	openai "github.com/sashabaranov/go-openai"
)

// New returns the Transcriber selected by cfg.Transcriber.Provider.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Transcriber, error) {
	switch cfg.Transcriber.Provider {
	case config.TranscriberWhisper:
		return NewWhisper(WhisperOptions{
			BinaryPath: cfg.Whisper.BinaryPath,
			ModelPath:  cfg.Whisper.ModelPath,
			Language:   cfg.Transcriber.Language,
			Prompt:     cfg.Whisper.Prompt,
			Threads:    cfg.Whisper.Threads,
		}, exec, log), nil
	case config.TranscriberOpenAI:
		clientCfg := openai.DefaultConfig(cfg.OpenAI.APIKey)
		if cfg.OpenAI.BaseURL != "" {
			clientCfg.BaseURL = cfg.OpenAI.BaseURL
		}
		return NewOpenAI(openai.NewClientWithConfig(clientCfg), cfg.OpenAI.TranscriptionModel, cfg.Transcriber.Language, log), nil
	default:
		return nil, fmt.Errorf("unknown transcriber provider %q", cfg.Transcriber.Provider)
	}
}

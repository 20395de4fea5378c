package transcriber

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/scribe/internal/logger"
	openai "github.com/sashabaranov/go-openai"
)

type openAITranscriber struct {
	client   *openai.Client
	model    string
	language string
	logger   logger.Logger
}

// NewOpenAI creates a Transcriber backed by the OpenAI audio API.
func NewOpenAI(client *openai.Client, model, language string, log logger.Logger) Transcriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &openAITranscriber{
		client:   client,
		model:    model,
		language: language,
		logger:   log,
	}
}

func (o *openAITranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	o.logger.Info(ctx, "Transcribing via OpenAI (%s): %s", o.model, audioPath)

	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.model,
		FilePath: audioPath,
		Language: o.language,
		Format:   openai.AudioResponseFormatJSON,
	})
	if err != nil {
		return "", fmt.Errorf("openai transcription: %w", err)
	}

	return clean(resp.Text)
}

package summarizer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/nguyentantai21042004/scribe/internal/logger"
	openai "github.com/sashabaranov/go-openai"
)

type openAISummarizer struct {
	client *openai.Client
	model  string
	prompt *Prompt
	logger logger.Logger
}

// NewOpenAI creates a Summarizer using OpenAI chat completions.
func NewOpenAI(client *openai.Client, model string, prompt *Prompt, log logger.Logger) Summarizer {
	return &openAISummarizer{
		client: client,
		model:  model,
		prompt: prompt,
		logger: log,
	}
}

func (s *openAISummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	started := time.Now()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.prompt.Text()},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
	})
	if err != nil {
		return "", upstream("openai", err)
	}
	if len(resp.Choices) == 0 {
		return "", upstream("openai", errors.New("no choices returned"))
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", ErrEmptyResult
	}

	s.logger.Info(ctx, "Summary generated by %s in %s (%d tokens)", s.model, time.Since(started), resp.Usage.TotalTokens)
	return summary, nil
}

package summarizer

import (
	"context"
	"strings"
	"time"

	"github.com/nguyentantai21042004/scribe/internal/logger"
	"google.golang.org/genai"
)

type geminiSummarizer struct {
	client *genai.Client
	model  string
	prompt *Prompt
	logger logger.Logger
}

// NewGemini creates a Summarizer backed by the Gemini API.
func NewGemini(client *genai.Client, model string, prompt *Prompt, log logger.Logger) Summarizer {
	return &geminiSummarizer{
		client: client,
		model:  model,
		prompt: prompt,
		logger: log,
	}
}

func (s *geminiSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	started := time.Now()

	result, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(transcript), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(s.prompt.Text(), genai.RoleUser),
	})
	if err != nil {
		return "", upstream("gemini", err)
	}

	var text string
	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
	}

	summary := strings.TrimSpace(text)
	if summary == "" {
		return "", ErrEmptyResult
	}

	s.logger.Info(ctx, "Summary generated by %s in %s", s.model, time.Since(started))
	return summary, nil
}

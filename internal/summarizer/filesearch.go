package summarizer

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/nguyentantai21042004/scribe/internal/logger"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

type FileSearchOptions struct {
	BaseURL          string
	APIKey           string
	Model            string
	VectorStoreID    string
	MaxSearchResults int
}

// fileSearchSummarizer calls the OpenAI Responses API with a file_search
// tool bound to one vector store.
type fileSearchSummarizer struct {
	client openai.Client
	opts   FileSearchOptions
	prompt *Prompt
	logger logger.Logger
}

// NewFileSearch creates a Summarizer grounded on a pre-provisioned vector store.
func NewFileSearch(opts FileSearchOptions, httpClient *http.Client, prompt *Prompt, log logger.Logger) Summarizer {
	clientOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}
	if httpClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(httpClient))
	}

	return &fileSearchSummarizer{
		client: openai.NewClient(clientOpts...),
		opts:   opts,
		prompt: prompt,
		logger: log,
	}
}

func (s *fileSearchSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	started := time.Now()

	tool := responses.FileSearchToolParam{
		VectorStoreIDs: []string{s.opts.VectorStoreID},
	}
	if s.opts.MaxSearchResults > 0 {
		tool.MaxNumResults = openai.Int(int64(s.opts.MaxSearchResults))
	}

	resp, err := s.client.Responses.New(ctx, responses.ResponseNewParams{
		Model:        shared.ResponsesModel(s.opts.Model),
		Instructions: openai.String(s.prompt.Text()),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(transcript),
		},
		Tools: []responses.ToolUnionParam{{OfFileSearch: &tool}},
	})
	if err != nil {
		return "", upstream("openai", err)
	}
	if resp.Error.Message != "" {
		return "", upstream("openai", errors.New(resp.Error.Message))
	}

	summary := strings.TrimSpace(resp.OutputText())
	if summary == "" {
		return "", ErrEmptyResult
	}

	s.logger.Info(ctx, "Grounded summary generated by %s in %s (%d tokens)", s.opts.Model, time.Since(started), resp.Usage.TotalTokens)
	return summary, nil
}

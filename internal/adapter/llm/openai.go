package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// OpenAI calls the Chat Completions API through the official SDK.
type OpenAI struct {
	client openai.Client
}

// NewOpenAI creates a client with SDK retries disabled. An empty baseURL uses
// the public OpenAI API; any compatible server (Groq, local gateways) works.
// A nil httpClient keeps the SDK default; deadlines come from the request
// context.
func NewOpenAI(apiKey, baseURL string, httpClient *http.Client) *OpenAI {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return &OpenAI{client: openai.NewClient(opts...)}
}

func (c *OpenAI) Name() string { return "openai" }
func (c *OpenAI) Close() error { return nil }

// Generate sends the prompt as a single user message. A reply without choices
// yields an empty string.
func (c *OpenAI) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(req.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

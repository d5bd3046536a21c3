package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/akashpersetti/hired-eventually/internal/llm"
)

const defaultTimeout = 120 * time.Second

// Client implements llm.Client using the official openai-go SDK
// (chat completions).
type Client struct {
	model   string
	timeout time.Duration
	opts    []option.RequestOption
}

// NewClient constructs a new OpenAI client.
func NewClient(apiKey, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("model is required for OpenAI")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		model:   model,
		timeout: timeout,
		opts:    []option.RequestOption{option.WithAPIKey(apiKey)},
	}, nil
}

// GenerateCompletion sends the prompt and returns the raw completion text.
func (c *Client) GenerateCompletion(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client := openai.NewClient(c.opts...)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", mapErr(err)
	}
	if len(resp.Choices) == 0 {
		return "", &llm.ProviderError{Vendor: llm.VendorOpenAI, Message: "response missing choices"}
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", &llm.ProviderError{Vendor: llm.VendorOpenAI, Message: "response empty content"}
	}
	return content, nil
}

func mapErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return llm.ErrTimeout
	}
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return &llm.ProviderError{
			Vendor:     llm.VendorOpenAI,
			StatusCode: apierr.StatusCode,
			Message:    apierr.Message,
		}
	}
	return &llm.ProviderError{Vendor: llm.VendorOpenAI, Message: err.Error()}
}

var _ llm.Client = (*Client)(nil)

package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/akashpersetti/hired-eventually/internal/llm"
)

const (
	defaultTimeout = 120 * time.Second
	maxTokens      = 2048
)

// Client implements llm.Client using the official Anthropic SDK
// (messages API).
type Client struct {
	model   string
	timeout time.Duration
	opts    []option.RequestOption
}

// NewClient constructs a new Anthropic client.
func NewClient(apiKey, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("model is required for Anthropic")
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

	client := anthropic.NewClient(c.opts...)
	message, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", mapErr(err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	content := strings.TrimSpace(sb.String())
	if content == "" {
		return "", &llm.ProviderError{Vendor: llm.VendorAnthropic, Message: "response empty content"}
	}
	return content, nil
}

func mapErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return llm.ErrTimeout
	}
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		return &llm.ProviderError{
			Vendor:     llm.VendorAnthropic,
			StatusCode: apierr.StatusCode,
			Message:    apierr.Error(),
		}
	}
	return &llm.ProviderError{Vendor: llm.VendorAnthropic, Message: err.Error()}
}

var _ llm.Client = (*Client)(nil)

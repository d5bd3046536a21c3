package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/akashpersetti/hired-eventually/internal/llm"
)

const defaultTimeout = 120 * time.Second

// Client implements llm.Client using the google.golang.org/genai SDK against
// the Gemini API backend.
type Client struct {
	apiKey  string
	model   string
	timeout time.Duration
}

// NewClient constructs a new Gemini client.
func NewClient(apiKey, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, fmt.Errorf("model is required for Gemini")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{apiKey: apiKey, model: model, timeout: timeout}, nil
}

// GenerateCompletion sends the prompt and returns the raw completion text.
func (c *Client) GenerateCompletion(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", mapErr(err)
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", mapErr(err)
	}

	content := strings.TrimSpace(resp.Text())
	if content == "" {
		return "", &llm.ProviderError{Vendor: llm.VendorGoogle, Message: "response empty content"}
	}
	return content, nil
}

func mapErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return llm.ErrTimeout
	}
	var apierr genai.APIError
	if errors.As(err, &apierr) {
		return &llm.ProviderError{
			Vendor:     llm.VendorGoogle,
			StatusCode: apierr.Code,
			Message:    apierr.Message,
		}
	}
	return &llm.ProviderError{Vendor: llm.VendorGoogle, Message: err.Error()}
}

var _ llm.Client = (*Client)(nil)

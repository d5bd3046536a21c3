package coverletter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/akashpersetti/hired-eventually/internal/extract"
	"github.com/akashpersetti/hired-eventually/internal/llm"
)

// ErrInvalidInput indicates validation or bad input.
var ErrInvalidInput = errors.New("invalid input")

// Service runs the generation pipeline: resume extraction, prompt
// composition, provider completion, result parsing. It never writes to the
// ledger; logging a generated application is the caller's concern.
type Service struct {
	Providers *llm.Registry

	// extractText is swappable in tests; defaults to extract.Text.
	extractText func(path string) (string, error)
}

// NewService constructs a Service over the given provider registry.
func NewService(providers *llm.Registry) *Service {
	return &Service{Providers: providers, extractText: extract.Text}
}

// Generate produces a tailored cover letter for the resume at resumePath and
// the given job description, using the provider selected by model. The only
// suspension point is the provider call; all other steps are synchronous
// transforms. Failures are typed and never yield a partial Result.
func (s *Service) Generate(ctx context.Context, resumePath, jobDescription, model string) (Result, error) {
	client, err := s.Providers.ClientForModel(model)
	if err != nil {
		return Result{}, err
	}

	resumeText, err := s.extractText(resumePath)
	if err != nil {
		return Result{}, err
	}

	if strings.TrimSpace(jobDescription) == "" {
		return Result{}, fmt.Errorf("%w: job description is empty", ErrInvalidInput)
	}
	if strings.TrimSpace(resumeText) == "" {
		return Result{}, fmt.Errorf("%w: resume text is empty", ErrInvalidInput)
	}

	prompt := llm.ComposePrompt(resumeText, jobDescription)
	raw, err := client.GenerateCompletion(ctx, prompt)
	if err != nil {
		return Result{}, err
	}

	return ParseResult(raw), nil
}

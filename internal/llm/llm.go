package llm

import (
	"context"
	"sort"
)

// Client is the capability every provider variant implements: send one prompt,
// get the raw completion text back. Implementations are stateless between
// calls and must honor context cancellation.
type Client interface {
	GenerateCompletion(ctx context.Context, prompt string) (string, error)
}

// Vendor identifies an LLM provider.
type Vendor string

const (
	VendorAnthropic Vendor = "anthropic"
	VendorOpenAI    Vendor = "openai"
	VendorGoogle    Vendor = "google"
)

// supportedModels is the fixed set of caller-selectable model identifiers,
// mirroring the dropdown the UI offers.
var supportedModels = map[string]Vendor{
	"claude-sonnet-4-0":      VendorAnthropic,
	"gpt-5.2":                VendorOpenAI,
	"gemini-3-flash-preview": VendorGoogle,
}

// VendorForModel maps a caller-supplied model identifier to its vendor.
func VendorForModel(model string) (Vendor, error) {
	vendor, ok := supportedModels[model]
	if !ok {
		return "", ErrUnsupportedProvider
	}
	return vendor, nil
}

// SupportedModels lists the selectable model identifiers in stable order.
func SupportedModels() []string {
	models := make([]string, 0, len(supportedModels))
	for m := range supportedModels {
		models = append(models, m)
	}
	sort.Strings(models)
	return models
}

// Registry resolves model identifiers to registered provider clients.
type Registry struct {
	clients map[Vendor]Client
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{clients: make(map[Vendor]Client)}
}

// Register attaches a client for a vendor, replacing any previous one.
func (r *Registry) Register(vendor Vendor, client Client) {
	r.clients[vendor] = client
}

// ClientForModel returns the client serving the given model identifier.
// Unknown models and models whose vendor has no registered client fail with
// ErrUnsupportedProvider before any network activity.
func (r *Registry) ClientForModel(model string) (Client, error) {
	vendor, err := VendorForModel(model)
	if err != nil {
		return nil, err
	}
	client, ok := r.clients[vendor]
	if !ok {
		return nil, ErrUnsupportedProvider
	}
	return client, nil
}

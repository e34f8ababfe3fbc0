package llm

import (
	"fmt"
	"time"

	"github.com/ayushi-devx/Virtual-Assistant/internal/config"
	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
)

// Registry holds the closed set of provider adapters, constructed once at
// process start from configuration. Adapters for absent credentials are
// still registered; they fail fast with ErrProviderUnavailable.
type Registry struct {
	order     []string
	providers map[string]Provider
	defaultID string
}

// NewRegistry builds all four adapters from cfg.
func NewRegistry(cfg *config.Config) *Registry {
	timeout := time.Duration(cfg.ProviderTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	adapters := []Provider{
		NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, timeout),
		NewGemini(cfg.GeminiAPIKey, cfg.GeminiBaseURL, timeout),
		NewHuggingFace(cfg.HuggingFaceAPIKey, cfg.HuggingFaceBaseURL, timeout),
		NewCohere(cfg.CohereAPIKey, cfg.CohereBaseURL, timeout),
	}

	r := &Registry{providers: make(map[string]Provider, len(adapters))}
	for _, p := range adapters {
		r.order = append(r.order, p.Name())
		r.providers[p.Name()] = p
	}

	r.defaultID = cfg.AIProvider
	if _, ok := r.providers[r.defaultID]; !ok {
		r.defaultID = "openai"
	}
	return r
}

// List returns the provider identifiers in their fixed registration order.
func (r *Registry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// IsValid reports whether id names a registered provider.
func (r *Registry) IsValid(id string) bool {
	_, ok := r.providers[id]
	return ok
}

// Resolve returns the adapter for id. Unknown ids are rejected; there is no
// silent defaulting.
func (r *Registry) Resolve(id string) (Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, fmt.Errorf("unknown provider %q: %w", id, model.ErrValidation)
	}
	return p, nil
}

// Default returns the configured default provider identifier.
func (r *Registry) Default() string { return r.defaultID }

// ProviderStatus is the API-facing view of one registered adapter.
type ProviderStatus struct {
	ID         string `json:"id"`
	Configured bool   `json:"configured"`
	Default    bool   `json:"default"`
}

// Statuses reports every registered provider in registration order.
func (r *Registry) Statuses() []ProviderStatus {
	out := make([]ProviderStatus, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, ProviderStatus{
			ID:         id,
			Configured: r.providers[id].IsConfigured(),
			Default:    id == r.defaultID,
		})
	}
	return out
}

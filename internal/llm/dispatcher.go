package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
	"github.com/ayushi-devx/Virtual-Assistant/internal/personality"
)

// Source records where a generated reply came from.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Result is one generated reply plus its provenance. Source is internal
// observability; the API payload does not expose it.
type Result struct {
	Text   string
	Source Source
}

// Dispatcher orchestrates a single generation turn: resolve the persona
// prompt, try the selected adapter once, and absorb any adapter failure into
// a template fallback. It errors only for structurally invalid input.
type Dispatcher struct {
	reg      *Registry
	fallback TemplateResponder
	log      zerolog.Logger
}

func NewDispatcher(reg *Registry, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{reg: reg, log: log}
}

// Generate produces a reply for message under personality p via providerID.
// Unknown personality or provider ids propagate as model.ErrValidation;
// provider unavailability and call failures never do.
func (d *Dispatcher) Generate(ctx context.Context, message string, p model.Personality, providerID string) (Result, error) {
	systemPrompt, err := personality.SystemPrompt(p)
	if err != nil {
		return Result{}, err
	}

	prov, err := d.reg.Resolve(providerID)
	if err != nil {
		return Result{}, err
	}

	framed := fmt.Sprintf("User says: %q. Respond in character while being helpful.", message)

	text, err := prov.Generate(ctx, framed, systemPrompt)
	if err != nil {
		d.log.Warn().
			Err(err).
			Str("provider", providerID).
			Str("personality", string(p)).
			Msg("provider generation failed, using template fallback")
		return Result{Text: d.fallback.Respond(message, p), Source: SourceFallback}, nil
	}
	if strings.TrimSpace(text) == "" {
		d.log.Warn().
			Str("provider", providerID).
			Msg("provider returned empty text, using template fallback")
		return Result{Text: d.fallback.Respond(message, p), Source: SourceFallback}, nil
	}
	return Result{Text: text, Source: SourceModel}, nil
}

// Package llm contains the language-model provider adapters, the provider
// registry, the template fallback responder, and the dispatcher that ties
// them together.
package llm

import (
	"context"
	"errors"
)

// Generation policy constants shared by all adapters. Not user-tunable.
const (
	genTemperature = 0.8
	genMaxTokens   = 200
)

// Provider adapts one external text-generation backend to a uniform contract.
type Provider interface {
	Name() string
	// IsConfigured reports whether the adapter has the credentials it needs.
	// Evaluated without any network call.
	IsConfigured() bool
	// Generate performs exactly one generation attempt. It returns
	// ErrProviderUnavailable when unconfigured (before any network I/O) and
	// an error wrapping ErrProviderCall on transport or backend failure.
	Generate(ctx context.Context, userMessage, systemPrompt string) (string, error)
}

var (
	// ErrProviderUnavailable means the adapter's credential is absent.
	ErrProviderUnavailable = errors.New("provider not configured")
	// ErrProviderCall means the outbound call itself failed.
	ErrProviderCall = errors.New("provider call failed")
)

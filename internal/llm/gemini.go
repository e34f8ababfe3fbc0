package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	geminiDefaultBaseURL = "https://generativelanguage.googleapis.com"
	geminiModel          = "gemini-pro"
)

// Gemini calls the generateContent API. The backend takes a single user turn,
// so the system prompt is folded into the message text.
type Gemini struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewGemini(apiKey, baseURL string, timeout time.Duration) *Gemini {
	if baseURL == "" {
		baseURL = geminiDefaultBaseURL
	}
	return &Gemini{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *Gemini) Name() string       { return "gemini" }
func (g *Gemini) IsConfigured() bool { return g.apiKey != "" }

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (g *Gemini) Generate(ctx context.Context, userMessage, systemPrompt string) (string, error) {
	if !g.IsConfigured() {
		return "", fmt.Errorf("gemini: %w", ErrProviderUnavailable)
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: systemPrompt + "\n\n" + userMessage}}},
		},
	}
	reqBody.GenerationConfig.Temperature = genTemperature
	reqBody.GenerationConfig.MaxOutputTokens = genMaxTokens

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, geminiModel, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: %v: %w", err, ErrProviderCall)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: status %d: %w", resp.StatusCode, ErrProviderCall)
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini: decode response: %v: %w", err, ErrProviderCall)
	}
	if out.Error != nil {
		return "", fmt.Errorf("gemini: %s: %w", out.Error.Message, ErrProviderCall)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty candidates: %w", ErrProviderCall)
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	huggingFaceDefaultBaseURL = "https://api-inference.huggingface.co"
	huggingFaceModel          = "mistralai/Mistral-7B-Instruct-v0.2"
)

// HuggingFace calls the inference API for a text-generation model. The model
// takes one concatenated prompt and may echo it back, so the echo is stripped.
type HuggingFace struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewHuggingFace(apiKey, baseURL string, timeout time.Duration) *HuggingFace {
	if baseURL == "" {
		baseURL = huggingFaceDefaultBaseURL
	}
	return &HuggingFace{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (h *HuggingFace) Name() string       { return "huggingface" }
func (h *HuggingFace) IsConfigured() bool { return h.apiKey != "" }

type huggingFaceRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		MaxNewTokens int     `json:"max_new_tokens"`
		Temperature  float64 `json:"temperature"`
	} `json:"parameters"`
}

type huggingFaceResult struct {
	GeneratedText string `json:"generated_text"`
}

func (h *HuggingFace) Generate(ctx context.Context, userMessage, systemPrompt string) (string, error) {
	if !h.IsConfigured() {
		return "", fmt.Errorf("huggingface: %w", ErrProviderUnavailable)
	}

	prompt := systemPrompt + "\n\n" + userMessage
	reqBody := huggingFaceRequest{Inputs: prompt}
	reqBody.Parameters.MaxNewTokens = genMaxTokens
	reqBody.Parameters.Temperature = genTemperature

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/models/"+huggingFaceModel, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.apiKey)

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("huggingface: %v: %w", err, ErrProviderCall)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("huggingface: status %d: %w", resp.StatusCode, ErrProviderCall)
	}

	var out []huggingFaceResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("huggingface: decode response: %v: %w", err, ErrProviderCall)
	}
	if len(out) == 0 {
		return "", fmt.Errorf("huggingface: empty result: %w", ErrProviderCall)
	}

	text := strings.TrimSpace(strings.TrimPrefix(out[0].GeneratedText, prompt))
	return text, nil
}

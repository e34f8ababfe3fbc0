package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	cohereDefaultBaseURL = "https://api.cohere.com"
	cohereModel          = "command-r-plus"
)

// Cohere calls the v2 chat API. The backend expects the system instruction
// folded into the user turn.
type Cohere struct {
	apiKey string
	client *resty.Client
}

func NewCohere(apiKey, baseURL string, timeout time.Duration) *Cohere {
	if baseURL == "" {
		baseURL = cohereDefaultBaseURL
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &Cohere{apiKey: apiKey, client: c}
}

func (c *Cohere) Name() string       { return "cohere" }
func (c *Cohere) IsConfigured() bool { return c.apiKey != "" }

type cohereMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type cohereRequest struct {
	Model       string          `json:"model"`
	Messages    []cohereMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type cohereResponse struct {
	Message struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	} `json:"message"`
}

func (c *Cohere) Generate(ctx context.Context, userMessage, systemPrompt string) (string, error) {
	if !c.IsConfigured() {
		return "", fmt.Errorf("cohere: %w", ErrProviderUnavailable)
	}

	reqBody := cohereRequest{
		Model: cohereModel,
		Messages: []cohereMessage{
			{Role: "user", Content: systemPrompt + "\n\n" + userMessage},
		},
		Temperature: genTemperature,
		MaxTokens:   genMaxTokens,
	}

	var out cohereResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetBody(&reqBody).
		SetResult(&out).
		Post("/v2/chat")
	if err != nil {
		return "", fmt.Errorf("cohere: %v: %w", err, ErrProviderCall)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("cohere: status %d: %w", resp.StatusCode(), ErrProviderCall)
	}
	if len(out.Message.Content) == 0 {
		return "", fmt.Errorf("cohere: empty content: %w", ErrProviderCall)
	}
	return out.Message.Content[0].Text, nil
}

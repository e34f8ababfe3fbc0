// Blackbox contract checks run against a live service through the public
// API only. Keep these aligned with the HTTP surface, not internals.

package invariants

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Checker exercises a running assistant service as an external client.
type Checker struct {
	baseURL string
	client  *http.Client
}

func NewChecker(baseURL string) *Checker {
	return &Checker{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type conversation struct {
	ConversationID string `json:"conversationId"`
	Personality    string `json:"personality"`
	Provider       string `json:"provider"`
	Messages       []struct {
		Sender string `json:"sender"`
		Text   string `json:"text"`
	} `json:"messages"`
}

// TestTurnAlternation: after N sends the conversation holds exactly 2N
// messages alternating user, bot, and every turn got a non-empty reply.
func (c *Checker) TestTurnAlternation(t *testing.T, userID string, turns int) {
	conv := c.createConversation(t, userID, "")

	for i := 0; i < turns; i++ {
		body := c.request(t, userID, http.MethodPost,
			fmt.Sprintf("/api/v1/conversations/%s/messages", conv.ConversationID),
			map[string]string{"text": fmt.Sprintf("question %d", i)}, http.StatusCreated)

		var ex struct {
			BotMessage struct {
				Text string `json:"text"`
			} `json:"botMessage"`
		}
		require.NoError(t, json.Unmarshal(body, &ex))
		assert.NotEmpty(t, ex.BotMessage.Text, "every send must produce a bot reply")
	}

	got := c.getConversation(t, userID, conv.ConversationID)
	require.Len(t, got.Messages, 2*turns)
	for i, m := range got.Messages {
		want := "user"
		if i%2 == 1 {
			want = "bot"
		}
		assert.Equal(t, want, m.Sender, "message %d", i)
	}
}

// TestPersonalityRejection: an unknown personality is rejected and the stored
// value is untouched.
func (c *Checker) TestPersonalityRejection(t *testing.T, userID string) {
	conv := c.createConversation(t, userID, "sweet")

	c.request(t, userID, http.MethodPut,
		fmt.Sprintf("/api/v1/conversations/%s/personality", conv.ConversationID),
		map[string]string{"personality": "martian"}, http.StatusBadRequest)

	got := c.getConversation(t, userID, conv.ConversationID)
	assert.Equal(t, "sweet", got.Personality)
}

// TestOwnerIsolation: another owner can neither read nor post to the
// conversation; both attempts answer 404.
func (c *Checker) TestOwnerIsolation(t *testing.T, ownerID, otherID string) {
	conv := c.createConversation(t, ownerID, "")

	c.request(t, otherID, http.MethodGet,
		"/api/v1/conversations/"+conv.ConversationID, nil, http.StatusNotFound)
	c.request(t, otherID, http.MethodPost,
		fmt.Sprintf("/api/v1/conversations/%s/messages", conv.ConversationID),
		map[string]string{"text": "hi"}, http.StatusNotFound)
}

// TestArchiveExclusion: archived conversations disappear from listings but
// stay retrievable by id, and archiving twice is not an error.
func (c *Checker) TestArchiveExclusion(t *testing.T, userID string) {
	conv := c.createConversation(t, userID, "")

	c.request(t, userID, http.MethodPost,
		"/api/v1/conversations/"+conv.ConversationID+"/archive", nil, http.StatusNoContent)
	c.request(t, userID, http.MethodPost,
		"/api/v1/conversations/"+conv.ConversationID+"/archive", nil, http.StatusNoContent)

	body := c.request(t, userID, http.MethodGet, "/api/v1/conversations", nil, http.StatusOK)
	var page struct {
		Conversations []conversation `json:"conversations"`
	}
	require.NoError(t, json.Unmarshal(body, &page))
	for _, listed := range page.Conversations {
		assert.NotEqual(t, conv.ConversationID, listed.ConversationID, "archived conversation listed")
	}

	c.request(t, userID, http.MethodGet,
		"/api/v1/conversations/"+conv.ConversationID, nil, http.StatusOK)
}

func (c *Checker) createConversation(t *testing.T, userID, personality string) conversation {
	t.Helper()
	req := map[string]string{}
	if personality != "" {
		req["personality"] = personality
	}
	body := c.request(t, userID, http.MethodPost, "/api/v1/conversations", req, http.StatusCreated)
	var conv conversation
	require.NoError(t, json.Unmarshal(body, &conv))
	require.NotEmpty(t, conv.ConversationID)
	return conv
}

func (c *Checker) getConversation(t *testing.T, userID, conversationID string) conversation {
	t.Helper()
	body := c.request(t, userID, http.MethodGet, "/api/v1/conversations/"+conversationID, nil, http.StatusOK)
	var conv conversation
	require.NoError(t, json.Unmarshal(body, &conv))
	return conv
}

func (c *Checker) request(t *testing.T, userID, method, path string, payload interface{}, wantStatus int) []byte {
	t.Helper()
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		reqBody = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", userID)

	resp, err := c.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s: %s", method, path, string(body))
	return body
}

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-resty/resty/v2"
)

func newClient(apiURL, userID string) *resty.Client {
	return resty.New().
		SetBaseURL(apiURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-User-ID", userID)
}

func fail(resp *resty.Response) error {
	return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
}

func printJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runChat(c *resty.Client, convID, personality, provider, text string, out io.Writer) error {
	if convID == "" {
		var conv struct {
			ConversationID string `json:"conversationId"`
		}
		resp, err := c.R().
			SetBody(map[string]string{"personality": personality, "provider": provider}).
			SetResult(&conv).
			Post("/api/v1/conversations")
		if err != nil {
			return err
		}
		if resp.StatusCode() != 201 {
			return fail(resp)
		}
		convID = conv.ConversationID
		fmt.Fprintf(out, "conversation: %s\n", convID)
	}

	var exchange struct {
		BotMessage struct {
			Text string `json:"text"`
		} `json:"botMessage"`
	}
	resp, err := c.R().
		SetBody(map[string]string{"text": text}).
		SetResult(&exchange).
		Post("/api/v1/conversations/" + convID + "/messages")
	if err != nil {
		return err
	}
	if resp.StatusCode() != 201 {
		return fail(resp)
	}
	fmt.Fprintln(out, exchange.BotMessage.Text)
	return nil
}

func runListConversations(c *resty.Client, out io.Writer) error {
	var page json.RawMessage
	resp, err := c.R().SetResult(&page).Get("/api/v1/conversations")
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fail(resp)
	}
	return printJSON(out, page)
}

func runProviders(c *resty.Client, out io.Writer) error {
	var body json.RawMessage
	resp, err := c.R().SetResult(&body).Get("/api/v1/providers")
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fail(resp)
	}
	return printJSON(out, body)
}

func runSearch(c *resty.Client, query, typ string, out io.Writer) error {
	req := c.R().SetQueryParam("q", query)
	if typ != "" {
		req.SetQueryParam("type", typ)
	}
	var body json.RawMessage
	resp, err := req.SetResult(&body).Get("/api/v1/search")
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fail(resp)
	}
	return printJSON(out, body)
}

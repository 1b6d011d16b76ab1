package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client delivers contact-form messages through the transactional
// email HTTP API. An empty apiURL yields a no-op client that only
// logs, which keeps local development working without credentials.
type Client struct {
	http      *resty.Client
	recipient string
}

func New(apiURL, apiKey, recipient string) *Client {
	if apiURL == "" {
		return &Client{recipient: recipient}
	}
	http := resty.New().
		SetBaseURL(apiURL).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond)
	return &Client{http: http, recipient: recipient}
}

type sendRequest struct {
	To      string `json:"to"`
	ReplyTo string `json:"reply_to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (c *Client) Send(ctx context.Context, name, email, message string) error {
	if c.http == nil {
		slog.Info("mailer disabled, contact message dropped", "from", email)
		return nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(sendRequest{
			To:      c.recipient,
			ReplyTo: email,
			Subject: fmt.Sprintf("Contact form: %s", name),
			Text:    message,
		}).
		Post("/send")
	if err != nil {
		return fmt.Errorf("sending contact email: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("mail API returned %d", resp.StatusCode())
	}
	return nil
}

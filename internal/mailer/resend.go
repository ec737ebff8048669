// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mailer sends transactional email through the Resend HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	defaultEndpoint = "https://api.resend.com/emails"

	// sendTimeout bounds a single API call so a slow provider cannot hang
	// the contact endpoint.
	sendTimeout = 15 * time.Second
)

// Client talks to the Resend API. A nil Client is valid and drops mail,
// allowing the app to run without email configured.
type Client struct {
	apiKey   string
	from     string
	endpoint string
	http     *http.Client
}

// New returns a Resend client, or nil when no API key is configured.
func New(apiKey, from string) *Client {
	if apiKey == "" || from == "" {
		return nil
	}
	return &Client{
		apiKey:   apiKey,
		from:     from,
		endpoint: defaultEndpoint,
		http:     &http.Client{Timeout: sendTimeout},
	}
}

// sendRequest is the Resend API payload.
type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// sendResponse is the successful Resend API response.
type sendResponse struct {
	ID string `json:"id"`
}

// errorResponse is the Resend API error shape.
type errorResponse struct {
	Message string `json:"message"`
}

// Send delivers a plain-text email. replyTo may be empty. A nil client
// logs and drops the message so callers need no configuration checks.
func (c *Client) Send(ctx context.Context, to, replyTo, subject, text string) error {
	if c == nil {
		slog.Warn("email not configured, dropping message", "subject", subject)
		return nil
	}

	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{to},
		ReplyTo: replyTo,
		Subject: subject,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("mailer marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("mailer request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("mailer send: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("mailer read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("mailer api status %d: %s", resp.StatusCode, apiErr.Message)
		}
		return fmt.Errorf("mailer api status %d", resp.StatusCode)
	}

	var ok sendResponse
	if err := json.Unmarshal(body, &ok); err == nil && ok.ID != "" {
		slog.Info("email sent", "id", ok.ID, "to", to)
	}
	return nil
}

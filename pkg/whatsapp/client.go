// Package whatsapp sends WhatsApp messages through the Unipile messaging API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"
)

// DefaultTimeout bounds every send request.
const DefaultTimeout = 30 * time.Second

var phonePattern = regexp.MustCompile(`^\+?[\d\s\-\(\)]+$`)

// IsPhoneNumber reports whether a recipient string looks like a phone number
// rather than a group name.
func IsPhoneNumber(recipient string) bool {
	return phonePattern.MatchString(recipient)
}

// Client is the Unipile WhatsApp API client.
type Client struct {
	baseURL    string
	apiKey     string
	accountID  string
	httpClient *http.Client
}

// NewClient creates a new WhatsApp client for the given Unipile account.
func NewClient(baseURL, apiKey, accountID string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		accountID:  accountID,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetBaseURL overrides the API URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// SendMessage sends a text message to a phone number.
func (c *Client) SendMessage(ctx context.Context, phone, text string) error {
	return c.send(ctx, SendRequest{
		AccountID:   c.accountID,
		AttendeeIDs: []string{phone},
		Text:        text,
	})
}

// SendToGroup sends a text message to a named group chat.
func (c *Client) SendToGroup(ctx context.Context, group, text string) error {
	return c.send(ctx, SendRequest{
		AccountID: c.accountID,
		GroupName: group,
		Text:      text,
	})
}

func (c *Client) send(ctx context.Context, payload SendRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/messages", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send whatsapp message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp API error %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}

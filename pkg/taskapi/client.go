// Package taskapi is the client for the owner-data backend that stores
// tasks and owner prompts.
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client talks to the ChatMate backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new backend API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetBaseURL overrides the backend URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// CreateTask submits a task (or meeting) record to the backend.
// The caller owns the user-facing error text; non-2xx responses return an error.
func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*CreateTaskResponse, error) {
	var result CreateTaskResponse
	if err := c.post(ctx, "/create-task", req, &result); err != nil {
		return nil, err
	}
	if result.Task.UniqueTaskID == "" {
		return nil, fmt.Errorf("backend returned no task id")
	}
	return &result, nil
}

// UpdatePrompt replaces the owner's knowledge-base prompt text.
func (c *Client) UpdatePrompt(ctx context.Context, content, userID string) error {
	payload := UpdatePromptRequest{Content: content, UserID: userID}
	return c.post(ctx, "/update-prompt", payload, nil)
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call backend %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("backend %s error %d: %s", path, resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend response: %w", err)
	}
	return nil
}

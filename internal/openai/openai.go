package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/longkey1/gptc/internal/gptc"
)

const (
	DefaultEndpoint = "https://api.openai.com/v1/chat/completions"
)

// ChatCompletionRequest represents the request body for the chat completions endpoint
type ChatCompletionRequest struct {
	Model    string         `json:"model"`
	Messages []gptc.Message `json:"messages"`
}

// Client implements gptc.Client for OpenAI-compatible chat completions
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	debug      bool
}

// NewClient creates a new client posting to endpoint with the given bearer token
func NewClient(endpoint, token string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{},
	}
}

// SetDebug enables or disables debug output
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// SetHTTPClient replaces the underlying HTTP client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// Send posts the conversation and returns the parsed response.
func (c *Client) Send(ctx context.Context, conv *gptc.Conversation) (*gptc.Response, error) {
	if conv == nil || !conv.ReadyToSend() {
		return nil, fmt.Errorf("%w: conversation must be non-empty and end with a user message", gptc.ErrSerialization)
	}

	jsonData, err := json.Marshal(ChatCompletionRequest{
		Model:    conv.Model,
		Messages: conv.Messages,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gptc.ErrSerialization, err)
	}

	if c.debug {
		fmt.Fprintf(os.Stderr, "Conversation %s: POST %s (%d messages)\n", conv.ShortID(), c.endpoint, conv.Len())
		fmt.Fprintf(os.Stderr, "Request body: %s\n", string(jsonData))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("%w: error creating request: %v", gptc.ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gptc.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Body text is best effort here; the status alone is enough to report.
		return nil, &gptc.RequestRejectedError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: error reading response: %v", gptc.ErrTransport, err)
	}

	if c.debug {
		fmt.Fprintf(os.Stderr, "Raw API response: %s\n", string(body))
	}

	return parseResponse(body)
}

// parseResponse decodes a success body, requiring a choices array.
func parseResponse(body []byte) (*gptc.Response, error) {
	var result gptc.Response
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", gptc.ErrMalformedResponse, err)
	}
	// A missing or null choices field decodes to nil; an empty array does not.
	if result.Choices == nil {
		return nil, fmt.Errorf("%w: missing choices", gptc.ErrMalformedResponse)
	}
	return &result, nil
}

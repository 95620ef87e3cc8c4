package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	// ClaudeAPIEndpoint is the Anthropic API endpoint.
	ClaudeAPIEndpoint = "https://api.anthropic.com/v1/messages"
	// ClaudeModel is the default model.
	ClaudeModel = "claude-sonnet-4-20250514"
	// ClaudeAPIVersion is the API version.
	ClaudeAPIVersion = "2023-06-01"
	// DefaultMaxTokens bounds a response when the request does not.
	DefaultMaxTokens = 2048
)

// StatusError is a non-success HTTP status returned by a model API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() (msg string) {
	msg = fmt.Sprintf("API request failed with status %d: %s", e.Code, e.Body)
	return msg
}

// Permanent reports whether repeating the request cannot help.
// Client errors are permanent except for timeouts and rate limiting.
func (e *StatusError) Permanent() (permanent bool) {
	if e.Code == http.StatusTooManyRequests || e.Code == http.StatusRequestTimeout {
		return permanent
	}
	permanent = e.Code >= 400 && e.Code < 500
	return permanent
}

// Client represents a Claude API client.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	endpoint   string
}

// NewClient creates a new Claude API client.
func NewClient(apiKey, model string, timeout time.Duration) (client *Client) {
	if model == "" {
		model = ClaudeModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	client = &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: ClaudeAPIEndpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
	return client
}

// Name identifies the client in logs.
func (c *Client) Name() (name string) {
	name = "claude:" + c.model
	return name
}

// Generate sends a request to the Claude API and returns the first text block.
func (c *Client) Generate(ctx context.Context, req Request) (responseText string, err error) {
	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	prompt := req.Prompt
	if req.JSON {
		prompt += "\n\nReturn ONLY valid JSON (no markdown, no commentary)."
	}

	claudeReq := ClaudeRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    req.System,
		Messages: []Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	var reqBody []byte
	reqBody, err = json.Marshal(claudeReq)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal request")
		return responseText, err
	}

	var httpReq *http.Request
	httpReq, err = http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return responseText, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", ClaudeAPIVersion)

	var resp *http.Response
	resp, err = c.httpClient.Do(httpReq)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return responseText, err
	}
	defer resp.Body.Close()

	var respBody []byte
	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return responseText, err
	}

	if resp.StatusCode != http.StatusOK {
		err = &StatusError{Code: resp.StatusCode, Body: string(respBody)}
		return responseText, err
	}

	var claudeResp ClaudeResponse
	err = json.Unmarshal(respBody, &claudeResp)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse Claude response: %s", string(respBody))
		return responseText, err
	}

	for _, block := range claudeResp.Content {
		if block.Type == "" || block.Type == "text" {
			responseText = block.Text
			return responseText, err
		}
	}

	err = errors.New("no content in Claude response")
	return responseText, err
}

// Package cohere is a minimal client for the Cohere chat endpoint,
// pinned to the generation parameters this service always uses.
package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the production Cohere API host.
	DefaultBaseURL = "https://api.cohere.ai"

	chatModel       = "command-xlarge-nightly"
	chatMaxTokens   = 1024
	chatTemperature = 0.5

	requestTimeout = 60 * time.Second
)

// Client talks to the Cohere chat endpoint.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a chat client. An empty baseURL selects the
// production host.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type chatRequest struct {
	Model       string  `json:"model"`
	Message     string  `json:"message"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

// chatResponse covers the three response shapes the endpoint is known
// to produce. Pointers distinguish an absent field from an empty one.
type chatResponse struct {
	Generations []struct {
		Text string `json:"text"`
	} `json:"generations"`
	Message *string `json:"message"`
	Text    *string `json:"text"`
}

// responseShape tags which of the known response layouts a body matched.
type responseShape int

const (
	shapeUnknown responseShape = iota
	shapeGenerations
	shapeMessage
	shapeText
)

// classify probes the known shapes in the order the upstream API has
// historically preferred them.
func classify(resp chatResponse) responseShape {
	switch {
	case len(resp.Generations) > 0:
		return shapeGenerations
	case resp.Message != nil:
		return shapeMessage
	case resp.Text != nil:
		return shapeText
	default:
		return shapeUnknown
	}
}

// Chat sends message to the chat endpoint and returns the generated
// text, trimmed. An empty return with nil error is possible; callers
// decide how to present it.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       chatModel,
		Message:     message,
		MaxTokens:   chatMaxTokens,
		Temperature: chatTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", &TimeoutError{Err: err}
		}
		return "", fmt.Errorf("cohere request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read cohere response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{StatusCode: resp.StatusCode, Body: body}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &ShapeError{Body: body}
	}

	switch classify(parsed) {
	case shapeGenerations:
		return strings.TrimSpace(parsed.Generations[0].Text), nil
	case shapeMessage:
		return strings.TrimSpace(*parsed.Message), nil
	case shapeText:
		return strings.TrimSpace(*parsed.Text), nil
	default:
		return "", &ShapeError{Body: body}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

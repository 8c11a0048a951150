// Package openai provides a minimal chat-completions client used as the
// advisor's text completion backend.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nileshkr/creditsense/internal/modules/advisor"
)

const defaultBaseURL = "https://api.openai.com/v1"

// Client for the OpenAI chat completions API. Implements
// advisor.TextCompletionProvider; all failures wrap advisor.ErrProvider.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	log     zerolog.Logger
}

// NewClient creates a new OpenAI client. baseURL may be empty to use the
// public endpoint; any OpenAI-compatible server works.
func NewClient(apiKey, baseURL, model string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
		log:     log.With().Str("client", "openai").Logger(),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends the prompt as a single user message and returns the
// first choice's content.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
		MaxTokens:   1500,
	})
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", advisor.ErrProvider, err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to build request: %v", advisor.ErrProvider, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %v", advisor.ErrProvider, err)
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: failed to parse response (status %d): %v",
			advisor.ErrProvider, resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := "unknown error"
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return "", fmt.Errorf("%w: API returned status %d: %s",
			advisor.ErrProvider, resp.StatusCode, msg)
	}

	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: response contained no choices", advisor.ErrProvider)
	}

	answer := strings.TrimSpace(parsed.Choices[0].Message.Content)
	c.log.Debug().Int("answer_len", len(answer)).Msg("Completion received")
	return answer, nil
}

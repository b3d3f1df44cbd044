package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"focilab.dev/focilab/pkg/planner"
	"focilab.dev/focilab/pkg/store"
)

// Client calls an OpenAI-style chat-completion endpoint. Requests are scoped
// to the caller's context, so cancelling it aborts the in-flight call.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

const defaultTimeout = 60 * time.Second

// NewClient builds a Client from the store's AI configuration.
func NewClient(cfg store.AIConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// complete sends one system+user exchange and decodes the JSON content of the
// first choice into out.
func (c *Client) complete(ctx context.Context, system, user string, out interface{ validate() error }) error {
	if c.apiKey == "" {
		return fmt.Errorf("suggest: no API key configured (set ai.key or FOCILAB_AI_KEY)")
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return fmt.Errorf("suggest: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("suggest: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("suggest: completion request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("suggest: read response: %w", err)
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("suggest: decode response (status %d): %w", resp.StatusCode, err)
	}
	if parsed.Error != nil {
		return fmt.Errorf("suggest: api error (status %d): %s", resp.StatusCode, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("suggest: unexpected status %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return fmt.Errorf("suggest: response contained no choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("suggest: decode completion content: %w", err)
	}
	return out.validate()
}

// Todos asks for same-day todo suggestions from the given context.
func (c *Client) Todos(ctx context.Context, pctx planner.PromptContext) ([]TodoSuggestion, error) {
	var env todosEnvelope
	if err := c.complete(ctx, systemPromptTodos, userMessage(pctx), &env); err != nil {
		return nil, err
	}
	return env.Todos, nil
}

// Goals asks for weekly goal suggestions from the given context.
func (c *Client) Goals(ctx context.Context, pctx planner.PromptContext) ([]GoalSuggestion, error) {
	var env goalsEnvelope
	if err := c.complete(ctx, systemPromptGoals, userMessage(pctx), &env); err != nil {
		return nil, err
	}
	return env.Goals, nil
}

// Milestones asks for milestone suggestions for one project.
func (c *Client) Milestones(ctx context.Context, pctx planner.PromptContext, projectTitle, projectDescription string) ([]MilestoneSuggestion, error) {
	user := fmt.Sprintf("Project: %s\n%s\n\n%s", projectTitle, projectDescription, userMessage(pctx))
	var env milestonesEnvelope
	if err := c.complete(ctx, systemPromptMilestones, user, &env); err != nil {
		return nil, err
	}
	return env.Milestones, nil
}

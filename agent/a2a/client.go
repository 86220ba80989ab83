package a2a

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxResponseSizeBytes = 2 << 20

type ClientConfig struct {
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

// Client talks to agent services: fetches capability descriptors and submits
// tasks. One transport failure is one error; nothing is retried.
type Client struct {
	httpClient *http.Client
}

func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchCard fetches the capability descriptor from an agent base URL.
func (c *Client) FetchCard(ctx context.Context, baseURL string) (AgentCard, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return AgentCard{}, errors.New("agent base url is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+WellKnownPath, nil)
	if err != nil {
		return AgentCard{}, fmt.Errorf("build card request: %w", err)
	}

	var card AgentCard
	if err := c.do(req, &card); err != nil {
		return AgentCard{}, err
	}

	if strings.TrimSpace(card.Name) == "" {
		return AgentCard{}, fmt.Errorf("agent card from %s has no name", baseURL)
	}
	if strings.TrimSpace(card.Endpoints.TaskSend) == "" {
		return AgentCard{}, fmt.Errorf("agent card %s has no task_send endpoint", card.Name)
	}
	return card, nil
}

// SendTask posts a command to an agent's task endpoint and returns the
// response envelope.
func (c *Client) SendTask(ctx context.Context, endpoint, command string) (TaskResponse, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return TaskResponse{}, errors.New("task endpoint is required")
	}

	body, err := json.Marshal(NewTask(command))
	if err != nil {
		return TaskResponse{}, fmt.Errorf("marshal task: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return TaskResponse{}, fmt.Errorf("build task request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp TaskResponse
	if err := c.do(req, &resp); err != nil {
		return TaskResponse{}, err
	}
	return resp, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute %s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSizeBytes))
	if err != nil {
		return fmt.Errorf("read response from %s: %w", req.URL, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("HTTP %d from %s: %s", resp.StatusCode, req.URL, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response from %s: %w", req.URL, err)
	}
	return nil
}

package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openaisdk "github.com/openai/openai-go"

	contractx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/contract"
)

const summaryPrompt = "You summarize the JSON result of a database command for the person who issued it. " +
	"Reply with one short friendly sentence. No JSON, no markdown."

// Summarizer produces a user-friendly one-liner for a command result via a
// chat completion. It is optional: the router works without one.
type Summarizer struct {
	client *openaisdk.Client
	model  string
}

// NewSummarizer returns nil when no client is configured, which disables
// summaries.
func NewSummarizer(client *openaisdk.Client, model string) *Summarizer {
	if client == nil || strings.TrimSpace(model) == "" {
		return nil
	}
	return &Summarizer{client: client, model: strings.TrimSpace(model)}
}

func (s *Summarizer) Summarize(ctx context.Context, command string, result contractx.Result) (string, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshal result for summary: %w", err)
	}

	resp, err := s.client.Chat.Completions.New(ctx, openaisdk.ChatCompletionNewParams{
		Model: openaisdk.ChatModel(s.model),
		Messages: []openaisdk.ChatCompletionMessageParamUnion{
			openaisdk.SystemMessage(summaryPrompt),
			openaisdk.UserMessage(fmt.Sprintf("Command: %s\nResult: %s", command, payload)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("summary completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("summary completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

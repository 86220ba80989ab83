// Package intent translates free-text commands into validated Commands using
// a single-turn LLM completion. The model must answer with one JSON object of
// the shape {"intent": ..., "parameters": {...}}; anything else is a typed
// parse failure, never a best-effort guess.
package intent

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"

	contractx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/contract"
)

type llmOutput struct {
	Intent     string         `json:"intent"`
	Parameters map[string]any `json:"parameters"`
}

// Parser implements contract.Parser for one domain.
type Parser struct {
	domain contractx.Domain
	runner compose.Runnable[string, llmOutput]
}

var _ contractx.Parser = (*Parser)(nil)

func NewParser(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	domain contractx.Domain,
	systemPrompt string,
) (*Parser, error) {
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(systemPrompt) == "" {
		return nil, fmt.Errorf("%w: intent prompt is empty", contractx.ErrValidation)
	}

	runner, err := compileIntentGraph(ctx, chatModel, systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrModelInvoke, err)
	}
	return &Parser{domain: domain, runner: runner}, nil
}

func (p *Parser) Parse(ctx context.Context, text string) (contractx.Command, error) {
	if strings.TrimSpace(text) == "" {
		return contractx.Command{}, fmt.Errorf("%w: command text is required", contractx.ErrValidation)
	}

	out, err := p.runner.Invoke(ctx, text)
	if err != nil {
		return contractx.Command{}, fmt.Errorf("%w: intent invoke: %v", contractx.ErrModelInvoke, err)
	}

	return p.validate(out)
}

func (p *Parser) validate(out llmOutput) (contractx.Command, error) {
	kind := p.domain.KindForIntent(strings.TrimSpace(out.Intent))

	switch kind {
	case contractx.CommandAdd:
		name := stringParam(out.Parameters, "name")
		if name == nil {
			return contractx.Command{}, fmt.Errorf("%w: %s name missing", contractx.ErrValidation, p.domain.Label)
		}
		return contractx.Command{
			Kind:      contractx.CommandAdd,
			Name:      name,
			Secondary: stringParam(out.Parameters, p.domain.Secondary),
		}, nil

	case contractx.CommandList:
		return contractx.Command{Kind: contractx.CommandList}, nil

	case contractx.CommandDelete:
		id, ok := idParam(out.Parameters)
		if !ok {
			return contractx.Command{}, fmt.Errorf("%w: %s ID missing", contractx.ErrValidation, p.domain.Label)
		}
		return contractx.Command{Kind: contractx.CommandDelete, ID: id}, nil

	case contractx.CommandUpdate:
		id, ok := idParam(out.Parameters)
		if !ok {
			return contractx.Command{}, fmt.Errorf("%w: %s ID missing", contractx.ErrValidation, p.domain.Label)
		}
		return contractx.Command{
			Kind:      contractx.CommandUpdate,
			ID:        id,
			Name:      stringParam(out.Parameters, "name"),
			Secondary: stringParam(out.Parameters, p.domain.Secondary),
		}, nil

	default:
		// Recognized as a reply, just not one of ours. The dispatcher turns
		// this into an "unknown command" result.
		return contractx.Command{Kind: contractx.CommandUnknown}, nil
	}
}

// stringParam returns the trimmed string under key, or nil when absent, not a
// string, or empty.
func stringParam(params map[string]any, key string) *string {
	raw, ok := params[key]
	if !ok {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// idParam accepts the id as a JSON number or a numeric string; models return
// both shapes.
func idParam(params map[string]any) (int64, bool) {
	raw, ok := params["id"]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case float64:
		id := int64(v)
		return id, id > 0
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return id, err == nil && id > 0
	default:
		return 0, false
	}
}

// Package router discovers agent services, classifies free-text commands by
// keyword, and relays them over the task protocol.
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	a2ax "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/a2a"
	contractx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/contract"
)

var (
	ErrNoSuitableAgent = errors.New("no suitable agent found for command")
	ErrAgentNotFound   = errors.New("agent not found")
)

type Config struct {
	AgentURLs []string `envconfig:"AGENT_URLS" split_words:"true" default:"http://localhost:5001,http://localhost:5002"`
}

// AgentClient is the outbound transport the router needs.
type AgentClient interface {
	FetchCard(ctx context.Context, baseURL string) (a2ax.AgentCard, error)
	SendTask(ctx context.Context, endpoint, command string) (a2ax.TaskResponse, error)
}

// Outcome is one fully resolved command: the raw response envelope, the
// unwrapped result, and an optional user-friendly summary.
type Outcome struct {
	Agent    string
	Response a2ax.TaskResponse
	Result   contractx.Result
	Summary  string
}

type Router struct {
	urls       []string
	client     AgentClient
	logger     zerolog.Logger
	summarizer *Summarizer

	// classification order matters: first keyword match wins
	domains []contractx.Domain
	agents  map[string]a2ax.AgentCard
}

type Option func(*Router)

// WithSummarizer attaches an optional result summarizer.
func WithSummarizer(s *Summarizer) Option {
	return func(r *Router) {
		r.summarizer = s
	}
}

// WithDomains overrides the default product/customer classification table.
func WithDomains(domains []contractx.Domain) Option {
	return func(r *Router) {
		if len(domains) > 0 {
			r.domains = domains
		}
	}
}

func New(cfg Config, client AgentClient, logger zerolog.Logger, opts ...Option) (*Router, error) {
	if client == nil {
		return nil, errors.New("agent client is required")
	}

	r := &Router{
		urls:    cfg.AgentURLs,
		client:  client,
		logger:  logger,
		domains: []contractx.Domain{contractx.ProductDomain(), contractx.CustomerDomain()},
		agents:  make(map[string]a2ax.AgentCard),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r, nil
}

// Discover fetches each configured agent's capability descriptor once.
// Unreachable agents are logged and skipped; they are simply absent from the
// routing table. Returns the number of discovered agents.
func (r *Router) Discover(ctx context.Context) int {
	for _, url := range r.urls {
		card, err := r.client.FetchCard(ctx, url)
		if err != nil {
			r.logger.Warn().Err(err).Str("url", url).Msg("agent discovery failed")
			continue
		}
		r.agents[card.Name] = card
		r.logger.Info().
			Str("agent", card.Name).
			Str("url", url).
			Msg("discovered agent")
	}
	return len(r.agents)
}

// Agents returns the discovered cards in classification order.
func (r *Router) Agents() []a2ax.AgentCard {
	cards := make([]a2ax.AgentCard, 0, len(r.agents))
	for _, d := range r.domains {
		if card, ok := r.agents[d.AgentName]; ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// Classify picks an agent name by case-insensitive substring match against
// each domain keyword, or "" when nothing matches.
func (r *Router) Classify(command string) string {
	lowered := strings.ToLower(command)
	for _, d := range r.domains {
		if strings.Contains(lowered, d.Keyword) {
			return d.AgentName
		}
	}
	return ""
}

// Process resolves one command end to end. Classification misses and unknown
// agents are local errors; no outbound call is made for them.
func (r *Router) Process(ctx context.Context, command string) (Outcome, error) {
	agentName := r.Classify(command)
	if agentName == "" {
		return Outcome{}, ErrNoSuitableAgent
	}

	card, ok := r.agents[agentName]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s", ErrAgentNotFound, agentName)
	}

	resp, err := r.client.SendTask(ctx, card.Endpoints.TaskSend, command)
	if err != nil {
		return Outcome{}, err
	}

	result, err := resp.Result()
	if err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{
		Agent:    agentName,
		Response: resp,
		Result:   result,
	}

	if r.summarizer != nil {
		summary, err := r.summarizer.Summarize(ctx, command, result)
		if err != nil {
			r.logger.Warn().Err(err).Msg("result summary failed")
		} else {
			outcome.Summary = summary
		}
	}

	return outcome, nil
}

package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/contract"
	dispatchx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/dispatch"
	intentx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/intent"
	promptx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/prompt"
	servicex "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/service"
	storex "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/store"
	configx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/pkg/config"
	_ "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/pkg/logger/autoload"
	llmx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/pkg/llmx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	domain := contractx.CustomerDomain()
	logger := log.With().Str("agent", domain.AgentName).Logger()

	llmCfg := configx.MustNew[llmx.Config]("GROQ").
		WithDefaults(llmx.GroqBaseURL, "llama3-70b-8192")
	chatModel, err := llmCfg.New(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("create chat model")
	}

	st, err := storex.Open(ctx, *configx.MustNew[storex.Config]("CUSTOMER_DB"), domain)
	if err != nil {
		logger.Fatal().Err(err).Msg("open customer store")
	}
	defer st.Close()

	parser, err := intentx.NewParser(ctx, chatModel, domain, promptx.LoadPromptSet().For(domain))
	if err != nil {
		logger.Fatal().Err(err).Msg("create intent parser")
	}

	server, err := servicex.New(
		*configx.MustNew[servicex.Config]("CUSTOMER_AGENT"),
		domain,
		parser,
		dispatchx.New(domain, st),
		logger,
	)
	if err != nil {
		logger.Fatal().Err(err).Msg("create agent service")
	}

	if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("agent service stopped")
	}
}

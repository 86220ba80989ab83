package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	a2ax "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/a2a"
	routerx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/router"
	configx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/pkg/config"
	_ "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/pkg/logger/autoload"
	llmx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/pkg/llmx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := a2ax.NewClient(*configx.MustNew[a2ax.ClientConfig]("ROUTER_CLIENT"))

	// Summaries are optional: without an OpenAI key the router prints the
	// structured result only.
	var opts []routerx.Option
	if llmCfg, err := configx.New[llmx.Config]("OPENAI"); err == nil {
		cfg := llmCfg.WithDefaults(llmx.OpenAIBaseURL, "gpt-3.5-turbo")
		if s := routerx.NewSummarizer(llmx.NewClient(cfg), cfg.Model); s != nil {
			opts = append(opts, routerx.WithSummarizer(s))
		}
	}

	r, err := routerx.New(*configx.MustNew[routerx.Config]("ROUTER"), client, log.Logger, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("create router")
	}

	count := r.Discover(ctx)
	fmt.Printf("Discovered %d agent(s):\n", count)
	for _, card := range r.Agents() {
		fmt.Printf("  - %s: %s\n", card.Name, card.Description)
	}

	fmt.Println("\nEnter commands (or 'quit' to exit):")
	fmt.Println("Examples:")
	fmt.Println("  - add iPhone product 999.99")
	fmt.Println("  - add rahul to customer")
	fmt.Println("  - list all products")
	fmt.Println("  - list all customers")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}

		command := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(command) {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return
		case "":
			continue
		}

		outcome, err := r.Process(ctx, command)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		if outcome.Summary != "" {
			fmt.Println(outcome.Summary)
		}
		pretty, _ := json.MarshalIndent(outcome.Result, "", "  ")
		fmt.Printf("Result from %s:\n%s\n", outcome.Agent, pretty)
	}
}

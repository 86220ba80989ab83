// Package service is the HTTP boundary of one agent: a capability descriptor
// at the well-known path and a task-submission endpoint wrapping the
// parse/dispatch pipeline in the task envelope.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	a2ax "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/a2a"
	contractx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/contract"
	dispatchx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/dispatch"
)

type Config struct {
	Host string `envconfig:"HOST" split_words:"true" default:"localhost"`
	Port int    `envconfig:"PORT" split_words:"true"`
}

type Server struct {
	domain     contractx.Domain
	card       a2ax.AgentCard
	parser     contractx.Parser
	dispatcher *dispatchx.Dispatcher
	logger     zerolog.Logger
	addr       string
}

func New(
	cfg Config,
	domain contractx.Domain,
	parser contractx.Parser,
	dispatcher *dispatchx.Dispatcher,
	logger zerolog.Logger,
) (*Server, error) {
	if err := domain.Validate(); err != nil {
		return nil, err
	}
	if parser == nil {
		return nil, errors.New("intent parser is required")
	}
	if dispatcher == nil {
		return nil, errors.New("dispatcher is required")
	}

	port := cfg.Port
	if port == 0 {
		port = domain.Port
	}
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}

	baseURL := fmt.Sprintf("http://%s:%d", host, port)

	return &Server{
		domain:     domain,
		card:       a2ax.NewCard(domain, baseURL),
		parser:     parser,
		dispatcher: dispatcher,
		logger:     logger,
		addr:       fmt.Sprintf("%s:%d", host, port),
	}, nil
}

func (s *Server) Card() a2ax.AgentCard {
	return s.card
}

func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimw.Recoverer)

	r.Get(a2ax.WellKnownPath, s.handleAgentCard)
	r.Post(a2ax.TaskSendPath, s.handleTaskSend)

	return r
}

// Start serves until the context is canceled or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("agent", s.domain.AgentName).
			Str("addr", s.addr).
			Msg("agent service listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleAgentCard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.card)
}

func (s *Server) handleTaskSend(w http.ResponseWriter, r *http.Request) {
	var task a2ax.Task
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		http.Error(w, "invalid task body", http.StatusBadRequest)
		return
	}

	taskID := task.ID
	if taskID == "" {
		taskID = uuid.NewString()
	}

	result := s.process(r.Context(), task.Text())

	resp, err := a2ax.NewResponse(taskID, result)
	if err != nil {
		s.logger.Error().Err(err).Str("task_id", taskID).Msg("encode task response")
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) process(ctx context.Context, command string) contractx.Result {
	cmd, err := s.parser.Parse(ctx, command)
	if err != nil {
		s.logger.Warn().Err(err).Str("command", command).Msg("intent parse failed")
		return contractx.ErrorResult("parse_command", fmt.Sprintf("Command failed: %v", err))
	}

	return s.dispatcher.Execute(ctx, cmd)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

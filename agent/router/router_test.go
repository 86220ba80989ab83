package router

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	a2ax "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/a2a"
	contractx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/contract"
)

// fakeAgentClient serves cards by base URL and records sent tasks.
type fakeAgentClient struct {
	cards map[string]a2ax.AgentCard

	sendCalls    int
	lastEndpoint string
	lastCommand  string
	response     a2ax.TaskResponse
	sendErr      error
}

func (f *fakeAgentClient) FetchCard(ctx context.Context, baseURL string) (a2ax.AgentCard, error) {
	card, ok := f.cards[baseURL]
	if !ok {
		return a2ax.AgentCard{}, errors.New("connection refused")
	}
	return card, nil
}

func (f *fakeAgentClient) SendTask(ctx context.Context, endpoint, command string) (a2ax.TaskResponse, error) {
	f.sendCalls++
	f.lastEndpoint = endpoint
	f.lastCommand = command
	if f.sendErr != nil {
		return a2ax.TaskResponse{}, f.sendErr
	}
	return f.response, nil
}

func twoAgentClient() *fakeAgentClient {
	return &fakeAgentClient{
		cards: map[string]a2ax.AgentCard{
			"http://localhost:5001": a2ax.NewCard(contractx.ProductDomain(), "http://localhost:5001"),
			"http://localhost:5002": a2ax.NewCard(contractx.CustomerDomain(), "http://localhost:5002"),
		},
	}
}

func newTestRouter(t *testing.T, client AgentClient, urls ...string) *Router {
	t.Helper()

	if len(urls) == 0 {
		urls = []string{"http://localhost:5001", "http://localhost:5002"}
	}
	r, err := New(Config{AgentURLs: urls}, client, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestDiscoverSkipsUnreachableAgents(t *testing.T) {
	t.Parallel()

	client := twoAgentClient()
	delete(client.cards, "http://localhost:5002")

	r := newTestRouter(t, client)
	if n := r.Discover(context.Background()); n != 1 {
		t.Fatalf("Discover = %d, want 1", n)
	}

	agents := r.Agents()
	if len(agents) != 1 || agents[0].Name != "ProductAgent" {
		t.Fatalf("agents = %v", agents)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, twoAgentClient())

	cases := map[string]string{
		"List All PRODUCTS":             "ProductAgent",
		"add customer Rahul":            "CustomerAgent",
		"delete Customer with id 3":     "CustomerAgent",
		"update product 2 name Laptop":  "ProductAgent",
		"what is the weather in Mumbai": "",
	}
	for command, want := range cases {
		if got := r.Classify(command); got != want {
			t.Errorf("Classify(%q) = %q, want %q", command, got, want)
		}
	}
}

func TestClassifyPrefersFirstDomain(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, twoAgentClient())
	if got := r.Classify("add product for customer Rahul"); got != "ProductAgent" {
		t.Fatalf("Classify = %q, want ProductAgent", got)
	}
}

func TestProcessNoSuitableAgent(t *testing.T) {
	t.Parallel()

	client := twoAgentClient()
	r := newTestRouter(t, client)
	r.Discover(context.Background())

	_, err := r.Process(context.Background(), "sing me a song")
	if !errors.Is(err, ErrNoSuitableAgent) {
		t.Fatalf("err = %v, want ErrNoSuitableAgent", err)
	}
	if client.sendCalls != 0 {
		t.Fatalf("sendCalls = %d, want 0", client.sendCalls)
	}
}

func TestProcessUndiscoveredAgent(t *testing.T) {
	t.Parallel()

	client := twoAgentClient()
	delete(client.cards, "http://localhost:5002")

	r := newTestRouter(t, client)
	r.Discover(context.Background())

	_, err := r.Process(context.Background(), "add customer Rahul")
	if !errors.Is(err, ErrAgentNotFound) {
		t.Fatalf("err = %v, want ErrAgentNotFound", err)
	}
	if client.sendCalls != 0 {
		t.Fatalf("sendCalls = %d, want 0", client.sendCalls)
	}
}

func TestProcessRelaysAndUnwraps(t *testing.T) {
	t.Parallel()

	client := twoAgentClient()
	want := contractx.Result{
		Status:  contractx.StatusSuccess,
		Action:  "list_products",
		Message: "Found 0 product(s)",
		Payload: map[string]any{"count": float64(0), "products": []any{}},
	}
	resp, err := a2ax.NewResponse("task-1", want)
	if err != nil {
		t.Fatalf("NewResponse: %v", err)
	}
	client.response = resp

	r := newTestRouter(t, client)
	r.Discover(context.Background())

	outcome, err := r.Process(context.Background(), "list all products")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if outcome.Agent != "ProductAgent" {
		t.Fatalf("agent = %s, want ProductAgent", outcome.Agent)
	}
	if client.lastEndpoint != "http://localhost:5001"+a2ax.TaskSendPath {
		t.Fatalf("endpoint = %s", client.lastEndpoint)
	}
	if client.lastCommand != "list all products" {
		t.Fatalf("command = %q", client.lastCommand)
	}
	if outcome.Result.Action != want.Action || outcome.Result.Message != want.Message {
		t.Fatalf("result = %+v", outcome.Result)
	}
	if outcome.Summary != "" {
		t.Fatalf("summary = %q, want empty without summarizer", outcome.Summary)
	}
}

func TestProcessTransportError(t *testing.T) {
	t.Parallel()

	client := twoAgentClient()
	client.sendErr = errors.New("agent down")

	r := newTestRouter(t, client)
	r.Discover(context.Background())

	if _, err := r.Process(context.Background(), "list all products"); err == nil {
		t.Fatal("expected transport error")
	}
}

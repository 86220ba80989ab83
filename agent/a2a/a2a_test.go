package a2a

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	contractx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/contract"
)

func TestTaskText(t *testing.T) {
	t.Parallel()

	task := NewTask("list all products")
	if task.Text() != "list all products" {
		t.Fatalf("Text() = %q", task.Text())
	}
	if task.ID == "" || task.Timestamp == "" {
		t.Fatalf("task missing id/timestamp: %+v", task)
	}

	empty := Task{Message: Message{Role: RoleUser, Parts: []Part{{Type: "image", Text: "x"}}}}
	if empty.Text() != "" {
		t.Fatalf("Text() = %q, want empty for non-text parts", empty.Text())
	}
}

func TestResponseResultRoundTrip(t *testing.T) {
	t.Parallel()

	original := contractx.Result{
		Status:  contractx.StatusSuccess,
		Action:  "add_customer",
		Message: `Customer "Rahul" added`,
		Payload: map[string]any{
			"customer": map[string]any{"id": float64(1), "name": "Rahul", "email": nil},
		},
	}

	resp, err := NewResponse("task-1", original)
	if err != nil {
		t.Fatalf("NewResponse: %v", err)
	}
	if resp.Status.State != TaskCompleted {
		t.Fatalf("state = %s, want completed", resp.Status.State)
	}

	// Serialize the whole envelope as it would travel over HTTP.
	wire, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}
	var received TaskResponse
	if err := json.Unmarshal(wire, &received); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}

	result, err := received.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if !reflect.DeepEqual(result, original) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", result, original)
	}
}

func TestFailedResponseState(t *testing.T) {
	t.Parallel()

	resp, err := NewResponse("task-2", contractx.ErrorResult("unknown", "Command not recognized"))
	if err != nil {
		t.Fatalf("NewResponse: %v", err)
	}
	if resp.Status.State != TaskFailed {
		t.Fatalf("state = %s, want failed", resp.Status.State)
	}
}

func TestResultWithoutArtifacts(t *testing.T) {
	t.Parallel()

	_, err := TaskResponse{}.Result()
	if err == nil {
		t.Fatal("expected error for empty artifacts")
	}
}

func TestClientFetchCard(t *testing.T) {
	t.Parallel()

	card := NewCard(contractx.ProductDomain(), "http://localhost:5001")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != WellKnownPath {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(card)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{})
	got, err := client.FetchCard(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("FetchCard: %v", err)
	}
	if !reflect.DeepEqual(got, card) {
		t.Fatalf("card mismatch:\n got %#v\nwant %#v", got, card)
	}
}

func TestClientFetchCardNon200(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{})
	if _, err := client.FetchCard(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for HTTP 500")
	}
}

func TestClientSendTask(t *testing.T) {
	t.Parallel()

	var received Task
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resp, _ := NewResponse(received.ID, contractx.Result{
			Status:  contractx.StatusSuccess,
			Action:  "list_products",
			Message: "Found 0 product(s)",
		})
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{})
	resp, err := client.SendTask(context.Background(), srv.URL+TaskSendPath, "list all products")
	if err != nil {
		t.Fatalf("SendTask: %v", err)
	}

	if received.Text() != "list all products" {
		t.Fatalf("agent received %q", received.Text())
	}
	if resp.ID != received.ID {
		t.Fatalf("response id %q does not echo task id %q", resp.ID, received.ID)
	}
	if resp.Status.State != TaskCompleted {
		t.Fatalf("state = %s, want completed", resp.Status.State)
	}
}

// Package a2a carries the minimal agent-to-agent task protocol: a capability
// descriptor served at a well-known path, a task envelope posted to the
// agent, and a response envelope whose single text artifact holds the
// JSON-encoded result.
package a2a

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	contractx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/contract"
)

const (
	WellKnownPath = "/.well-known/agent.json"
	TaskSendPath  = "/task/send"

	PartTypeText = "text"
	RoleUser     = "user"
)

type TaskState string

const (
	TaskCompleted TaskState = "completed"
	TaskFailed    TaskState = "failed"
)

type Part struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Message struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// Task is the transient request envelope. Never persisted.
type Task struct {
	ID        string  `json:"id,omitempty"`
	Message   Message `json:"message"`
	Timestamp string  `json:"timestamp,omitempty"`
}

type TaskStatus struct {
	State     TaskState `json:"state"`
	Timestamp string    `json:"timestamp"`
}

type Artifact struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Parts []Part `json:"parts"`
}

// TaskResponse is the transient response envelope. Never persisted.
type TaskResponse struct {
	ID        string     `json:"id"`
	Status    TaskStatus `json:"status"`
	Artifacts []Artifact `json:"artifacts"`
}

type Capabilities struct {
	Streaming         bool `json:"streaming"`
	FunctionCalls     bool `json:"function_calls"`
	EnhancedResponses bool `json:"enhanced_responses"`
}

type Skill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
}

type Endpoints struct {
	TaskSend string `json:"task_send"`
}

// AgentCard is the static capability descriptor fetched once at router
// startup.
type AgentCard struct {
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Version      string       `json:"version"`
	URL          string       `json:"url"`
	Capabilities Capabilities `json:"capabilities"`
	Skills       []Skill      `json:"skills"`
	Endpoints    Endpoints    `json:"endpoints"`
}

// NewTask wraps a user command in a task envelope with a fresh id.
func NewTask(command string) Task {
	return Task{
		ID: uuid.NewString(),
		Message: Message{
			Role:  RoleUser,
			Parts: []Part{{Type: PartTypeText, Text: command}},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Text returns the first text part of the task message, or "".
func (t Task) Text() string {
	for _, part := range t.Message.Parts {
		if part.Type == PartTypeText {
			return part.Text
		}
	}
	return ""
}

// NewResponse wraps a result in a response envelope: state completed for a
// success result, failed otherwise, with the serialized result as the only
// artifact.
func NewResponse(taskID string, result contractx.Result) (TaskResponse, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return TaskResponse{}, fmt.Errorf("marshal result: %w", err)
	}

	state := TaskFailed
	if result.OK() {
		state = TaskCompleted
	}

	return TaskResponse{
		ID: taskID,
		Status: TaskStatus{
			State:     state,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		Artifacts: []Artifact{
			{
				ID:    uuid.NewString(),
				Type:  PartTypeText,
				Parts: []Part{{Type: PartTypeText, Text: string(payload)}},
			},
		},
	}, nil
}

// Result unwraps the first artifact's text back into a structured result.
func (r TaskResponse) Result() (contractx.Result, error) {
	if len(r.Artifacts) == 0 || len(r.Artifacts[0].Parts) == 0 {
		return contractx.Result{}, fmt.Errorf("%w: response has no artifact", contractx.ErrSchemaViolation)
	}

	var result contractx.Result
	if err := json.Unmarshal([]byte(r.Artifacts[0].Parts[0].Text), &result); err != nil {
		return contractx.Result{}, fmt.Errorf("%w: decode artifact result: %v", contractx.ErrSchemaViolation, err)
	}
	return result, nil
}

// NewCard derives the static capability descriptor for a domain.
func NewCard(d contractx.Domain, baseURL string) AgentCard {
	return AgentCard{
		Name:        d.AgentName,
		Description: d.Description,
		Version:     d.Version,
		URL:         baseURL,
		Capabilities: Capabilities{
			Streaming:         false,
			FunctionCalls:     true,
			EnhancedResponses: true,
		},
		Skills: []Skill{
			{
				ID:          d.SkillID,
				Name:        d.SkillName,
				Description: d.SkillDescription,
				Examples:    d.SkillExamples,
			},
		},
		Endpoints: Endpoints{
			TaskSend: baseURL + TaskSendPath,
		},
	}
}

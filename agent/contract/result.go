package contract

import (
	"encoding/json"
	"fmt"
)

type ResultStatus string

const (
	StatusSuccess ResultStatus = "success"
	StatusError   ResultStatus = "error"
)

// Result is the structured outcome of one dispatched command. Status, Action
// and Message are always present; Payload carries operation-specific fields
// keyed by the domain ("product", "customers", "count", ...) and is flattened
// into the JSON object so the wire shape matches the task artifact contract.
type Result struct {
	Status  ResultStatus
	Action  string
	Message string
	Payload map[string]any
}

func (r Result) OK() bool {
	return r.Status == StatusSuccess
}

func (r Result) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(r.Payload)+3)
	for k, v := range r.Payload {
		obj[k] = v
	}
	obj["status"] = r.Status
	obj["action"] = r.Action
	obj["message"] = r.Message
	return json.Marshal(obj)
}

func (r *Result) UnmarshalJSON(data []byte) error {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	status, ok := obj["status"].(string)
	if !ok {
		return fmt.Errorf("%w: result status missing", ErrSchemaViolation)
	}
	action, _ := obj["action"].(string)
	message, _ := obj["message"].(string)

	delete(obj, "status")
	delete(obj, "action")
	delete(obj, "message")

	r.Status = ResultStatus(status)
	r.Action = action
	r.Message = message
	if len(obj) > 0 {
		r.Payload = obj
	} else {
		r.Payload = nil
	}
	return nil
}

// ErrorResult builds an error-status result for an action.
func ErrorResult(action, message string) Result {
	return Result{Status: StatusError, Action: action, Message: message}
}

package model

import "github.com/blueprint-app/blueprint/pkg/domain/types"

// Action is one assistant-emitted instruction: a kind plus a loosely-typed
// payload. Actions are transient; they live for one dispatch cycle and are
// never persisted, retried, or queued.
type Action struct {
	Kind types.ActionKind `json:"action"`
	Data map[string]any   `json:"data"`
}

// AssistantReply is what the assistant endpoint returns for one turn:
// the conversational text plus the ordered action batch it produced.
type AssistantReply struct {
	Content string   `json:"content"`
	Actions []Action `json:"actions,omitempty"`
}

// ActionResult records the outcome of dispatching a single action
type ActionResult struct {
	Kind  types.ActionKind `json:"action"`
	OK    bool             `json:"ok"`
	Error string           `json:"error,omitempty"`
}

// ActionReport is the batch-level outcome of a dispatch. Dispatch is
// best-effort, not transactional: the report is the only aggregate signal.
type ActionReport struct {
	Results []ActionResult `json:"results"`
}

// Succeeded returns the number of actions that applied their side effects
func (r *ActionReport) Succeeded() int {
	var n int
	for _, res := range r.Results {
		if res.OK {
			n++
		}
	}
	return n
}

// Failed returns the number of actions that were recorded as failed
func (r *ActionReport) Failed() int {
	return len(r.Results) - r.Succeeded()
}

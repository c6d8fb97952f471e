package assistant

import (
	"encoding/json"
	"strings"

	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
)

// replyEnvelope is the shape the system prompt asks for. The producer is an
// LLM, so every field is optional and a bare single-action object
// ({"action": ..., "data": ...}) must be accepted as well.
type replyEnvelope struct {
	Message string           `json:"message"`
	Actions []model.Action   `json:"actions"`
	Action  types.ActionKind `json:"action"`
	Data    map[string]any   `json:"data"`
}

// ParseReply interprets the assistant's raw reply text leniently.
// Non-JSON replies degrade to plain content with no actions; "none"
// actions are filtered out.
func ParseReply(raw string) *model.AssistantReply {
	trimmed := strings.TrimSpace(raw)

	var envelope replyEnvelope
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
		return &model.AssistantReply{Content: raw}
	}

	content := envelope.Message
	if content == "" {
		content = trimmed
	}

	var actions []model.Action
	switch {
	case envelope.Actions != nil:
		for _, a := range envelope.Actions {
			if a.Kind == "" || a.Kind == types.ActionNone {
				continue
			}
			actions = append(actions, a)
		}
	case envelope.Action != "" && envelope.Action != types.ActionNone:
		actions = append(actions, model.Action{Kind: envelope.Action, Data: envelope.Data})
	}

	return &model.AssistantReply{Content: content, Actions: actions}
}

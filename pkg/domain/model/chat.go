package model

import (
	"time"

	"github.com/blueprint-app/blueprint/pkg/domain/types"
)

// ChatMessage is one turn of the conversation. Messages are immutable once
// persisted. Actions is a transient attachment on assistant replies recording
// what the reply caused to happen; it is never persisted.
type ChatMessage struct {
	ID        types.MessageID `json:"id"`
	Role      types.Role      `json:"role"`
	Content   string          `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
	Actions   []Action        `json:"actions,omitempty"`
}

// NewChatMessage creates a ChatMessage with a fresh ID and timestamp
func NewChatMessage(role types.Role, content string) *ChatMessage {
	return &ChatMessage{
		ID:        types.NewMessageID(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

package memory

import (
	"context"
	"sync"

	"github.com/blueprint-app/blueprint/pkg/domain/model"
)

type chatRepository struct {
	mu       sync.RWMutex
	messages []*model.ChatMessage
}

func newChatRepository() *chatRepository {
	return &chatRepository{}
}

// copyMessage strips the transient Actions attachment: the persisted log
// stores only {id, role, content, created_at}.
func copyMessage(m *model.ChatMessage) *model.ChatMessage {
	return &model.ChatMessage{
		ID:        m.ID,
		Role:      m.Role,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func (r *chatRepository) Put(ctx context.Context, msg *model.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, copyMessage(msg))
	return nil
}

func (r *chatRepository) List(ctx context.Context, limit int) ([]*model.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if limit > 0 && len(r.messages) > limit {
		start = len(r.messages) - limit
	}

	result := make([]*model.ChatMessage, 0, len(r.messages)-start)
	for _, m := range r.messages[start:] {
		result = append(result, copyMessage(m))
	}
	return result, nil
}

func (r *chatRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = nil
	return nil
}

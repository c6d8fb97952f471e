package memory

import (
	"github.com/blueprint-app/blueprint/pkg/domain/interfaces"
)

// Memory is an in-memory Repository for development and tests
type Memory struct {
	client   *clientRepository
	service  *serviceRepository
	note     *noteRepository
	category *categoryRepository
	chat     *chatRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		client:   newClientRepository(),
		service:  newServiceRepository(),
		note:     newNoteRepository(),
		category: newCategoryRepository(),
		chat:     newChatRepository(),
	}
}

func (m *Memory) Client() interfaces.ClientRepository {
	return m.client
}

func (m *Memory) Service() interfaces.ServiceRepository {
	return m.service
}

func (m *Memory) Note() interfaces.NoteRepository {
	return m.note
}

func (m *Memory) Category() interfaces.CategoryRepository {
	return m.category
}

func (m *Memory) Chat() interfaces.ChatRepository {
	return m.chat
}

func (m *Memory) Close() error {
	return nil
}

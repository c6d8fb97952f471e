package interfaces

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
)

// ErrNotFound is returned when a referenced entity does not exist
var ErrNotFound = goerr.New("not found")

// Repository defines the interface for data persistence
type Repository interface {
	Client() ClientRepository
	Service() ServiceRepository
	Note() NoteRepository
	Category() CategoryRepository
	Chat() ChatRepository

	Close() error
}

// ClientRepository persists clients and their per-period payments
type ClientRepository interface {
	Create(ctx context.Context, input *model.CreateClientInput) (*model.Client, error)
	Get(ctx context.Context, id types.ClientID) (*model.Client, error)
	List(ctx context.Context) ([]*model.Client, error)
	// TogglePayment upserts the paid flag for (clientID, period).
	// Period is a YYYY-MM month key.
	TogglePayment(ctx context.Context, clientID types.ClientID, period string, paid bool) error
	ListPayments(ctx context.Context, clientID types.ClientID) ([]*model.Payment, error)
}

// ServiceRepository persists tracked services
type ServiceRepository interface {
	Create(ctx context.Context, input *model.CreateServiceInput) (*model.Service, error)
	List(ctx context.Context) ([]*model.Service, error)
}

// NoteRepository persists notes.
// List with an empty categoryID returns the full unfiltered note list.
type NoteRepository interface {
	Create(ctx context.Context, input *model.CreateNoteInput) (*model.Note, error)
	List(ctx context.Context, categoryID types.CategoryID) ([]*model.Note, error)
	Toggle(ctx context.Context, id types.NoteID, completed bool) error
}

// CategoryRepository persists note categories
type CategoryRepository interface {
	Create(ctx context.Context, input *model.CreateCategoryInput) (*model.Category, error)
	List(ctx context.Context) ([]*model.Category, error)
}

// ChatRepository is the append-only persisted chat log.
// List returns the most recent limit messages in chronological order
// (oldest first); limit <= 0 returns everything.
type ChatRepository interface {
	Put(ctx context.Context, msg *model.ChatMessage) error
	List(ctx context.Context, limit int) ([]*model.ChatMessage, error)
	Clear(ctx context.Context) error
}

package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/blueprint-app/blueprint/pkg/domain/interfaces"
	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
)

type noteRepository struct {
	mu    sync.RWMutex
	notes map[types.NoteID]*model.Note
	seq   int
}

func newNoteRepository() *noteRepository {
	return &noteRepository{
		notes: make(map[types.NoteID]*model.Note),
	}
}

func copyNote(n *model.Note) *model.Note {
	copied := *n
	return &copied
}

func (r *noteRepository) Create(ctx context.Context, input *model.CreateNoteInput) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	r.seq++
	note := &model.Note{
		ID:         types.NewNoteID(),
		Title:      input.Title,
		Content:    input.Content,
		CategoryID: input.CategoryID,
		SortOrder:  r.seq,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	r.notes[note.ID] = copyNote(note)
	return note, nil
}

func (r *noteRepository) List(ctx context.Context, categoryID types.CategoryID) ([]*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Note, 0, len(r.notes))
	for _, n := range r.notes {
		if categoryID != "" && n.CategoryID != categoryID {
			continue
		}
		result = append(result, copyNote(n))
	}

	// Pending first, then manual order, newest creation first
	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return result, nil
}

func (r *noteRepository) Toggle(ctx context.Context, id types.NoteID, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note, exists := r.notes[id]
	if !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "note not found", goerr.V("noteID", id))
	}

	note.Completed = completed
	note.UpdatedAt = time.Now().UTC()
	return nil
}

type categoryRepository struct {
	mu         sync.RWMutex
	categories map[types.CategoryID]*model.Category
}

func newCategoryRepository() *categoryRepository {
	return &categoryRepository{
		categories: make(map[types.CategoryID]*model.Category),
	}
}

func (r *categoryRepository) Create(ctx context.Context, input *model.CreateCategoryInput) (*model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category := &model.Category{
		ID:    types.NewCategoryID(),
		Name:  input.Name,
		Color: input.Color,
	}

	copied := *category
	r.categories[category.ID] = &copied
	return category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		copied := *c
		result = append(result, &copied)
	}

	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})

	return result, nil
}

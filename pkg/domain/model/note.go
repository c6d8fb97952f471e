package model

import (
	"time"

	"github.com/blueprint-app/blueprint/pkg/domain/types"
)

// Note represents a single note or task item.
// CategoryID, when set, must reference an existing Category.
type Note struct {
	ID         types.NoteID     `json:"id"`
	Title      string           `json:"title"`
	Content    string           `json:"content,omitempty"`
	CategoryID types.CategoryID `json:"category_id,omitempty"`
	Completed  bool             `json:"completed"`
	SortOrder  int              `json:"sort_order"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// CreateNoteInput is the validated input for creating a Note
type CreateNoteInput struct {
	Title      string
	Content    string
	CategoryID types.CategoryID
}

// Category groups notes under a named, colored label
type Category struct {
	ID    types.CategoryID `json:"id"`
	Name  string           `json:"name"`
	Color string           `json:"color"`
}

// CreateCategoryInput is the validated input for creating a Category
type CreateCategoryInput struct {
	Name  string
	Color string
}

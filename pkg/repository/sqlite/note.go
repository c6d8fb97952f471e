package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/blueprint-app/blueprint/pkg/domain/interfaces"
	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
	"github.com/blueprint-app/blueprint/pkg/utils/safe"
)

type noteRepository struct {
	db *sql.DB
}

func (r *noteRepository) Create(ctx context.Context, input *model.CreateNoteInput) (*model.Note, error) {
	now := time.Now().UTC()
	note := &model.Note{
		ID:         types.NewNoteID(),
		Title:      input.Title,
		Content:    input.Content,
		CategoryID: input.CategoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (id, title, content, category_id, completed, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 0, 0, ?, ?)`,
		note.ID.String(), note.Title, nullString(note.Content),
		nullString(note.CategoryID.String()),
		formatTime(note.CreatedAt), formatTime(note.UpdatedAt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert note", goerr.V("title", input.Title))
	}

	return note, nil
}

func (r *noteRepository) List(ctx context.Context, categoryID types.CategoryID) ([]*model.Note, error) {
	const columns = "id, title, content, category_id, completed, sort_order, created_at, updated_at"
	const order = "ORDER BY completed ASC, sort_order ASC, created_at DESC"

	var (
		rows *sql.Rows
		err  error
	)
	if categoryID != "" {
		rows, err = r.db.QueryContext(ctx,
			"SELECT "+columns+" FROM notes WHERE category_id = ? "+order, categoryID.String())
	} else {
		rows, err = r.db.QueryContext(ctx,
			"SELECT "+columns+" FROM notes "+order)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list notes", goerr.V("categoryID", categoryID))
	}
	defer safe.Close(ctx, rows)

	var result []*model.Note
	for rows.Next() {
		var (
			n         model.Note
			id        string
			content   sql.NullString
			catID     sql.NullString
			createdAt string
			updatedAt string
		)
		if err := rows.Scan(&id, &n.Title, &content, &catID, &n.Completed, &n.SortOrder, &createdAt, &updatedAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan note")
		}
		n.ID = types.NoteID(id)
		n.Content = content.String
		n.CategoryID = types.CategoryID(catID.String)
		n.CreatedAt = parseTime(createdAt)
		n.UpdatedAt = parseTime(updatedAt)
		result = append(result, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate notes")
	}
	return result, nil
}

func (r *noteRepository) Toggle(ctx context.Context, id types.NoteID, completed bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE notes SET completed = ?, updated_at = ? WHERE id = ?",
		completed, formatTime(time.Now()), id.String())
	if err != nil {
		return goerr.Wrap(err, "failed to toggle note", goerr.V("noteID", id))
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to check toggle result", goerr.V("noteID", id))
	}
	if affected == 0 {
		return goerr.Wrap(interfaces.ErrNotFound, "note not found", goerr.V("noteID", id))
	}
	return nil
}

type categoryRepository struct {
	db *sql.DB
}

func (r *categoryRepository) Create(ctx context.Context, input *model.CreateCategoryInput) (*model.Category, error) {
	category := &model.Category{
		ID:    types.NewCategoryID(),
		Name:  input.Name,
		Color: input.Color,
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO categories (id, name, color) VALUES (?, ?, ?)",
		category.ID.String(), category.Name, category.Color)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert category", goerr.V("name", input.Name))
	}

	return category, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, color FROM categories ORDER BY name COLLATE NOCASE")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list categories")
	}
	defer safe.Close(ctx, rows)

	var result []*model.Category
	for rows.Next() {
		var (
			c  model.Category
			id string
		)
		if err := rows.Scan(&id, &c.Name, &c.Color); err != nil {
			return nil, goerr.Wrap(err, "failed to scan category")
		}
		c.ID = types.CategoryID(id)
		result = append(result, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate categories")
	}
	return result, nil
}

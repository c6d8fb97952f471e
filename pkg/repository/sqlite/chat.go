package sqlite

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"

	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
	"github.com/blueprint-app/blueprint/pkg/utils/safe"
)

type chatRepository struct {
	db *sql.DB
}

func (r *chatRepository) Put(ctx context.Context, msg *model.ChatMessage) error {
	// Actions is transient display state and intentionally not stored
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO chat_history (id, role, content, created_at) VALUES (?, ?, ?, ?)",
		msg.ID.String(), msg.Role.String(), msg.Content, formatTime(msg.CreatedAt))
	if err != nil {
		return goerr.Wrap(err, "failed to insert chat message", goerr.V("messageID", msg.ID))
	}
	return nil
}

func (r *chatRepository) List(ctx context.Context, limit int) ([]*model.ChatMessage, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.db.QueryContext(ctx,
			`SELECT id, role, content, created_at FROM (
				SELECT id, role, content, created_at FROM chat_history ORDER BY created_at DESC LIMIT ?
			 ) ORDER BY created_at ASC`, limit)
	} else {
		rows, err = r.db.QueryContext(ctx,
			"SELECT id, role, content, created_at FROM chat_history ORDER BY created_at ASC")
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list chat history")
	}
	defer safe.Close(ctx, rows)

	var result []*model.ChatMessage
	for rows.Next() {
		var (
			m         model.ChatMessage
			id        string
			role      string
			createdAt string
		)
		if err := rows.Scan(&id, &role, &m.Content, &createdAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan chat message")
		}
		m.ID = types.MessageID(id)
		m.Role = types.Role(role)
		m.CreatedAt = parseTime(createdAt)
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate chat history")
	}
	return result, nil
}

func (r *chatRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM chat_history"); err != nil {
		return goerr.Wrap(err, "failed to clear chat history")
	}
	return nil
}

package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/blueprint-app/blueprint/pkg/domain/interfaces"
	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
)

func putMessages(t *testing.T, repo interfaces.Repository, n int) {
	t.Helper()

	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		role := types.RoleUser
		if i%2 == 1 {
			role = types.RoleAssistant
		}
		msg := &model.ChatMessage{
			ID:        types.NewMessageID(),
			Role:      role,
			Content:   fmt.Sprintf("message %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		gt.NoError(t, repo.Chat().Put(context.Background(), msg)).Required()
	}
}

func runChatRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("List returns all in chronological order", func(t *testing.T) {
		repo := newRepo(t)
		putMessages(t, repo, 4)

		messages, err := repo.Chat().List(context.Background(), 0)
		gt.NoError(t, err).Required()
		gt.Array(t, messages).Length(4)
		gt.Value(t, messages[0].Content).Equal("message 0")
		gt.Value(t, messages[3].Content).Equal("message 3")
	})

	t.Run("List with limit keeps the most recent tail", func(t *testing.T) {
		repo := newRepo(t)
		putMessages(t, repo, 5)

		messages, err := repo.Chat().List(context.Background(), 2)
		gt.NoError(t, err).Required()
		gt.Array(t, messages).Length(2)
		gt.Value(t, messages[0].Content).Equal("message 3")
		gt.Value(t, messages[1].Content).Equal("message 4")
	})

	t.Run("limit larger than history returns everything", func(t *testing.T) {
		repo := newRepo(t)
		putMessages(t, repo, 2)

		messages, err := repo.Chat().List(context.Background(), 50)
		gt.NoError(t, err).Required()
		gt.Array(t, messages).Length(2)
	})

	t.Run("actions are not persisted", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		msg := model.NewChatMessage(types.RoleAssistant, "done")
		msg.Actions = []model.Action{{Kind: types.ActionAddNote, Data: map[string]any{"title": "x"}}}
		gt.NoError(t, repo.Chat().Put(ctx, msg)).Required()

		messages, err := repo.Chat().List(ctx, 0)
		gt.NoError(t, err).Required()
		gt.Array(t, messages).Length(1)
		gt.Array(t, messages[0].Actions).Length(0)
	})

	t.Run("Clear wipes the log", func(t *testing.T) {
		repo := newRepo(t)
		putMessages(t, repo, 3)
		ctx := context.Background()

		gt.NoError(t, repo.Chat().Clear(ctx)).Required()

		messages, err := repo.Chat().List(ctx, 0)
		gt.NoError(t, err).Required()
		gt.Array(t, messages).Length(0)
	})
}

func TestChatRepository_Memory(t *testing.T) {
	runChatRepositoryTest(t, newMemoryRepo)
}

func TestChatRepository_SQLite(t *testing.T) {
	runChatRepositoryTest(t, newSQLiteRepo)
}

package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
	"github.com/blueprint-app/blueprint/pkg/utils/logging"
)

// ErrNoAssistant is returned when no assistant endpoint is configured
var ErrNoAssistant = goerr.New("no assistant configured")

const defaultHistoryLimit = 50

// SendMessage runs one conversation turn: persist the user message, call
// the assistant with the trailing history window, persist the reply, and
// dispatch whatever actions the reply carried.
//
// An assistant failure is not an error for the caller: the turn resolves
// to a synthetic assistant message surfacing the failure text, which is
// returned but never persisted, and nothing is dispatched.
func (u *UseCases) SendMessage(ctx context.Context, content string) (*model.ChatMessage, *model.ActionReport, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil, goerr.New("empty message")
	}
	if u.assistant == nil {
		return nil, nil, ErrNoAssistant
	}

	userMsg := model.NewChatMessage(types.RoleUser, content)
	if err := u.repo.Chat().Put(ctx, userMsg); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to persist user message")
	}

	history, err := u.repo.Chat().List(ctx, u.historyWindow)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to load chat history")
	}

	reply, err := u.assistant.Chat(ctx, history)
	if err != nil {
		logging.From(ctx).Error("assistant call failed", "error", err)
		errMsg := model.NewChatMessage(types.RoleAssistant, fmt.Sprintf("Error: %v", err))
		return errMsg, nil, nil
	}

	assistantMsg := model.NewChatMessage(types.RoleAssistant, reply.Content)
	if err := u.repo.Chat().Put(ctx, assistantMsg); err != nil {
		return nil, nil, goerr.Wrap(err, "failed to persist assistant message")
	}
	assistantMsg.Actions = reply.Actions

	var report *model.ActionReport
	if len(reply.Actions) > 0 {
		report = u.DispatchActions(ctx, reply.Actions)
	}
	return assistantMsg, report, nil
}

// History returns the most recent limit messages, oldest first.
// A non-positive limit falls back to the default.
func (u *UseCases) History(ctx context.Context, limit int) ([]*model.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	messages, err := u.repo.Chat().List(ctx, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load chat history")
	}
	return messages, nil
}

// ClearHistory wipes the persisted conversation
func (u *UseCases) ClearHistory(ctx context.Context) error {
	if err := u.repo.Chat().Clear(ctx); err != nil {
		return goerr.Wrap(err, "failed to clear chat history")
	}
	return nil
}

package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
	"github.com/blueprint-app/blueprint/pkg/utils/logging"
)

const defaultCategoryColor = "#1a73e8"

// batchState carries the per-batch category cache. The cache maps
// lower-cased category names to ids and is filled lazily from the
// repository on first use, then extended as new categories are created,
// so repeated mentions of one new category within a batch create it once.
type batchState struct {
	categories map[string]types.CategoryID
}

func (u *UseCases) categoryCache(ctx context.Context, state *batchState) (map[string]types.CategoryID, error) {
	if state.categories != nil {
		return state.categories, nil
	}
	existing, err := u.repo.Category().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list categories")
	}
	state.categories = make(map[string]types.CategoryID, len(existing))
	for _, cat := range existing {
		state.categories[strings.ToLower(cat.Name)] = cat.ID
	}
	return state.categories, nil
}

// resolveCategory maps a category name to an id, creating the category
// with the default color when it does not exist yet. An empty name
// resolves to the empty id (uncategorized).
func (u *UseCases) resolveCategory(ctx context.Context, state *batchState, name string) (types.CategoryID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil
	}

	cache, err := u.categoryCache(ctx, state)
	if err != nil {
		return "", err
	}
	key := strings.ToLower(name)
	if id, ok := cache[key]; ok {
		return id, nil
	}

	created, err := u.repo.Category().Create(ctx, &model.CreateCategoryInput{
		Name:  name,
		Color: defaultCategoryColor,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to create category", goerr.V("name", name))
	}
	cache[key] = created.ID
	return created.ID, nil
}

// DispatchActions applies an assistant action batch strictly in order.
// A failing action is recorded and logged, never propagated: one bad
// instruction must not block the rest of the batch.
func (u *UseCases) DispatchActions(ctx context.Context, actions []model.Action) *model.ActionReport {
	logger := logging.From(ctx)
	state := &batchState{}
	report := &model.ActionReport{}

	for _, action := range actions {
		result := model.ActionResult{Kind: action.Kind, OK: true}
		if err := u.handleAction(ctx, state, action); err != nil {
			result.OK = false
			result.Error = err.Error()
			logger.Warn("action failed",
				"action", action.Kind,
				"error", err,
			)
		}
		report.Results = append(report.Results, result)
	}

	if len(report.Results) > 0 {
		logger.Info("dispatched action batch",
			"total", len(report.Results),
			"succeeded", report.Succeeded(),
			"failed", report.Failed(),
		)
	}
	return report
}

func (u *UseCases) handleAction(ctx context.Context, state *batchState, action model.Action) error {
	switch action.Kind {
	case types.ActionAddClient:
		return u.addClient(ctx, action.Data)
	case types.ActionAddService:
		return u.addService(ctx, action.Data)
	case types.ActionAddNote:
		return u.addNotes(ctx, state, action.Data)
	case types.ActionCompleteNote:
		return u.completeNote(ctx, action.Data)
	case types.ActionMarkPayment:
		return u.markPayment(ctx, action.Data)
	case types.ActionNone:
		return nil
	default:
		logging.From(ctx).Debug("ignoring unknown action kind", "action", action.Kind)
		return nil
	}
}

func (u *UseCases) addClient(ctx context.Context, data map[string]any) error {
	input := buildClientInput(data)
	if input.PaymentDay != nil {
		day := *input.PaymentDay
		if day < 1 {
			day = 1
		} else if day > 28 {
			day = 28
		}
		input.PaymentDay = &day
	}
	if _, err := u.repo.Client().Create(ctx, &input); err != nil {
		return goerr.Wrap(err, "failed to create client", goerr.V("name", input.Name))
	}
	return nil
}

func (u *UseCases) addService(ctx context.Context, data map[string]any) error {
	input := buildServiceInput(data)
	if _, err := u.repo.Service().Create(ctx, &input); err != nil {
		return goerr.Wrap(err, "failed to create service", goerr.V("service", input.ServiceName))
	}
	return nil
}

func (u *UseCases) addNotes(ctx context.Context, state *batchState, data map[string]any) error {
	items := buildNoteItems(data)
	if len(items) == 0 {
		return nil
	}

	var lastErr error
	for _, item := range items {
		categoryID, err := u.resolveCategory(ctx, state, item.Category)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = u.repo.Note().Create(ctx, &model.CreateNoteInput{
			Title:      item.Title,
			Content:    item.Content,
			CategoryID: categoryID,
		})
		if err != nil {
			lastErr = goerr.Wrap(err, "failed to create note", goerr.V("title", item.Title))
		}
	}
	return lastErr
}

func (u *UseCases) completeNote(ctx context.Context, data map[string]any) error {
	query, ok := parseString(data["title_query"])
	if !ok {
		return nil
	}
	query = strings.ToLower(query)

	notes, err := u.repo.Note().List(ctx, "")
	if err != nil {
		return goerr.Wrap(err, "failed to list notes")
	}
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Title), query) {
			if err := u.repo.Note().Toggle(ctx, note.ID, true); err != nil {
				return goerr.Wrap(err, "failed to complete note", goerr.V("id", note.ID))
			}
			return nil
		}
	}
	return nil
}

func (u *UseCases) markPayment(ctx context.Context, data map[string]any) error {
	clientID, ok := parseString(data["client_id"])
	if !ok {
		return goerr.New("mark_payment requires client_id")
	}
	period, ok := parseString(data["period"])
	if !ok {
		return goerr.New("mark_payment requires period")
	}
	paid, _ := data["paid"].(bool)

	err := u.repo.Client().TogglePayment(ctx, types.ClientID(clientID), period, paid)
	if err != nil {
		return goerr.Wrap(err, "failed to toggle payment",
			goerr.V("client_id", clientID), goerr.V("period", period))
	}
	return nil
}

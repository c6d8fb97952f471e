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

type paymentKey struct {
	clientID types.ClientID
	period   string
}

type clientRepository struct {
	mu       sync.RWMutex
	clients  map[types.ClientID]*model.Client
	payments map[paymentKey]*model.Payment
}

func newClientRepository() *clientRepository {
	return &clientRepository{
		clients:  make(map[types.ClientID]*model.Client),
		payments: make(map[paymentKey]*model.Payment),
	}
}

func copyClient(c *model.Client) *model.Client {
	copied := *c
	if c.Amount != nil {
		amount := *c.Amount
		copied.Amount = &amount
	}
	if c.PaymentDay != nil {
		day := *c.PaymentDay
		copied.PaymentDay = &day
	}
	return &copied
}

func (r *clientRepository) Create(ctx context.Context, input *model.CreateClientInput) (*model.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	client := &model.Client{
		ID:          types.NewClientID(),
		Name:        input.Name,
		Contact:     input.Contact,
		PaymentType: input.PaymentType,
		Amount:      input.Amount,
		Currency:    input.Currency,
		Notes:       input.Notes,
		PaymentDay:  input.PaymentDay,
		PaymentDate: input.PaymentDate,
		CreatedAt:   time.Now().UTC(),
	}

	r.clients[client.ID] = copyClient(client)
	return client, nil
}

func (r *clientRepository) Get(ctx context.Context, id types.ClientID) (*model.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, exists := r.clients[id]
	if !exists {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "client not found", goerr.V("clientID", id))
	}
	return copyClient(client), nil
}

func (r *clientRepository) List(ctx context.Context) ([]*model.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Client, 0, len(r.clients))
	for _, c := range r.clients {
		result = append(result, copyClient(c))
	}

	sort.Slice(result, func(i, j int) bool {
		return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
	})

	return result, nil
}

func (r *clientRepository) TogglePayment(ctx context.Context, clientID types.ClientID, period string, paid bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.clients[clientID]; !exists {
		return goerr.Wrap(interfaces.ErrNotFound, "client not found", goerr.V("clientID", clientID))
	}

	payment := &model.Payment{
		ClientID: clientID,
		Period:   period,
		Paid:     paid,
	}
	if paid {
		now := time.Now().UTC()
		payment.PaidAt = &now
	}

	r.payments[paymentKey{clientID: clientID, period: period}] = payment
	return nil
}

func (r *clientRepository) ListPayments(ctx context.Context, clientID types.ClientID) ([]*model.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*model.Payment
	for _, p := range r.payments {
		if p.ClientID != clientID {
			continue
		}
		copied := *p
		if p.PaidAt != nil {
			paidAt := *p.PaidAt
			copied.PaidAt = &paidAt
		}
		result = append(result, &copied)
	}

	// Most recent period first, matching the SQLite backend.
	sort.Slice(result, func(i, j int) bool {
		return result[i].Period > result[j].Period
	})

	return result, nil
}

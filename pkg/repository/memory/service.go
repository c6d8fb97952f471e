package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
)

const defaultServiceCurrency = "USD"

type serviceRepository struct {
	mu       sync.RWMutex
	services map[types.ServiceID]*model.Service
}

func newServiceRepository() *serviceRepository {
	return &serviceRepository{
		services: make(map[types.ServiceID]*model.Service),
	}
}

func copyService(s *model.Service) *model.Service {
	copied := *s
	if s.Cost != nil {
		cost := *s.Cost
		copied.Cost = &cost
	}
	return &copied
}

func (r *serviceRepository) Create(ctx context.Context, input *model.CreateServiceInput) (*model.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()

	currency := input.Currency
	if currency == "" {
		currency = defaultServiceCurrency
	}
	notifyDays := 7
	if input.NotifyDays != nil {
		notifyDays = *input.NotifyDays
	}
	expiresAt := input.ExpiresAt
	if expiresAt == "" {
		expiresAt = now.AddDate(1, 0, 0).Format("2006-01-02")
	}

	service := &model.Service{
		ID:          types.NewServiceID(),
		ProjectName: input.ProjectName,
		ServiceName: input.ServiceName,
		Login:       input.Login,
		URL:         input.URL,
		ExpiresAt:   expiresAt,
		Cost:        input.Cost,
		Currency:    currency,
		Notes:       input.Notes,
		Category:    input.Category,
		NotifyDays:  notifyDays,
		CreatedAt:   now,
	}

	r.services[service.ID] = copyService(service)
	return service, nil
}

func (r *serviceRepository) List(ctx context.Context) ([]*model.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Service, 0, len(r.services))
	for _, s := range r.services {
		result = append(result, copyService(s))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ExpiresAt < result[j].ExpiresAt
	})

	return result, nil
}

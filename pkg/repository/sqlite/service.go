package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
	"github.com/blueprint-app/blueprint/pkg/utils/safe"
)

type serviceRepository struct {
	db *sql.DB
}

func (r *serviceRepository) Create(ctx context.Context, input *model.CreateServiceInput) (*model.Service, error) {
	now := time.Now().UTC()

	currency := input.Currency
	if currency == "" {
		currency = "USD"
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

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO services (id, project_name, service_name, login, url, expires_at, cost, currency, notes, category, notify_days, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		service.ID.String(), service.ProjectName, service.ServiceName,
		nullString(service.Login), nullString(service.URL), service.ExpiresAt,
		nullFloat(service.Cost), service.Currency, nullString(service.Notes),
		nullString(service.Category), service.NotifyDays,
		formatTime(service.CreatedAt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert service",
			goerr.V("projectName", input.ProjectName),
			goerr.V("serviceName", input.ServiceName),
		)
	}

	return service, nil
}

func (r *serviceRepository) List(ctx context.Context) ([]*model.Service, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_name, service_name, login, url, expires_at, cost, currency, notes, category, notify_days, created_at
		 FROM services ORDER BY expires_at ASC`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list services")
	}
	defer safe.Close(ctx, rows)

	var result []*model.Service
	for rows.Next() {
		var (
			s         model.Service
			id        string
			login     sql.NullString
			url       sql.NullString
			cost      sql.NullFloat64
			notes     sql.NullString
			category  sql.NullString
			createdAt string
		)
		if err := rows.Scan(&id, &s.ProjectName, &s.ServiceName, &login, &url, &s.ExpiresAt,
			&cost, &s.Currency, &notes, &category, &s.NotifyDays, &createdAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan service")
		}
		s.ID = types.ServiceID(id)
		s.Login = login.String
		s.URL = url.String
		s.Notes = notes.String
		s.Category = category.String
		if cost.Valid {
			s.Cost = &cost.Float64
		}
		s.CreatedAt = parseTime(createdAt)
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate services")
	}
	return result, nil
}

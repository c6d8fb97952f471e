package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/blueprint-app/blueprint/pkg/domain/interfaces"
	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
	"github.com/blueprint-app/blueprint/pkg/utils/safe"
)

type clientRepository struct {
	db *sql.DB
}

func (r *clientRepository) Create(ctx context.Context, input *model.CreateClientInput) (*model.Client, error) {
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

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (id, name, contact, payment_type, amount, currency, notes, payment_day, payment_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		client.ID.String(), client.Name, nullString(client.Contact), client.PaymentType.String(),
		nullFloat(client.Amount), client.Currency, nullString(client.Notes),
		nullInt(client.PaymentDay), nullString(client.PaymentDate),
		formatTime(client.CreatedAt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert client", goerr.V("name", input.Name))
	}

	return client, nil
}

func scanClient(scan func(dest ...any) error) (*model.Client, error) {
	var (
		c           model.Client
		id          string
		paymentType string
		contact     sql.NullString
		amount      sql.NullFloat64
		notes       sql.NullString
		paymentDay  sql.NullInt64
		paymentDate sql.NullString
		createdAt   string
	)
	if err := scan(&id, &c.Name, &contact, &paymentType, &amount, &c.Currency, &notes, &paymentDay, &paymentDate, &createdAt); err != nil {
		return nil, err
	}
	c.ID = types.ClientID(id)
	c.PaymentType = types.PaymentType(paymentType)
	c.Contact = contact.String
	c.Notes = notes.String
	c.PaymentDate = paymentDate.String
	if amount.Valid {
		c.Amount = &amount.Float64
	}
	if paymentDay.Valid {
		day := int(paymentDay.Int64)
		c.PaymentDay = &day
	}
	c.CreatedAt = parseTime(createdAt)
	return &c, nil
}

const clientColumns = "id, name, contact, payment_type, amount, currency, notes, payment_day, payment_date, created_at"

func (r *clientRepository) Get(ctx context.Context, id types.ClientID) (*model.Client, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+clientColumns+" FROM clients WHERE id = ?", id.String())

	client, err := scanClient(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "client not found", goerr.V("clientID", id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get client", goerr.V("clientID", id))
	}
	return client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*model.Client, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+clientColumns+" FROM clients ORDER BY name COLLATE NOCASE")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list clients")
	}
	defer safe.Close(ctx, rows)

	var result []*model.Client
	for rows.Next() {
		client, err := scanClient(rows.Scan)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan client")
		}
		result = append(result, client)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate clients")
	}
	return result, nil
}

func (r *clientRepository) TogglePayment(ctx context.Context, clientID types.ClientID, period string, paid bool) error {
	if _, err := r.Get(ctx, clientID); err != nil {
		return err
	}

	var paidAt sql.NullString
	if paid {
		paidAt = nullString(formatTime(time.Now()))
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO client_payments (client_id, period, paid, paid_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (client_id, period) DO UPDATE SET paid = excluded.paid, paid_at = excluded.paid_at`,
		clientID.String(), period, paid, paidAt,
	)
	if err != nil {
		return goerr.Wrap(err, "failed to toggle payment",
			goerr.V("clientID", clientID),
			goerr.V("period", period),
		)
	}
	return nil
}

func (r *clientRepository) ListPayments(ctx context.Context, clientID types.ClientID) ([]*model.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT client_id, period, paid, paid_at FROM client_payments WHERE client_id = ? ORDER BY period DESC",
		clientID.String())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list payments", goerr.V("clientID", clientID))
	}
	defer safe.Close(ctx, rows)

	var result []*model.Payment
	for rows.Next() {
		var (
			p      model.Payment
			id     string
			paidAt sql.NullString
		)
		if err := rows.Scan(&id, &p.Period, &p.Paid, &paidAt); err != nil {
			return nil, goerr.Wrap(err, "failed to scan payment")
		}
		p.ClientID = types.ClientID(id)
		if paidAt.Valid {
			t := parseTime(paidAt.String)
			p.PaidAt = &t
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate payments")
	}
	return result, nil
}

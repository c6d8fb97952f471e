package model

import (
	"time"

	"github.com/blueprint-app/blueprint/pkg/domain/types"
)

// Client represents a billable client
type Client struct {
	ID          types.ClientID    `json:"id"`
	Name        string            `json:"name"`
	Contact     string            `json:"contact,omitempty"`
	PaymentType types.PaymentType `json:"payment_type"`
	Amount      *float64          `json:"amount,omitempty"`
	Currency    string            `json:"currency"`
	Notes       string            `json:"notes,omitempty"`
	PaymentDay  *int              `json:"payment_day,omitempty"`
	PaymentDate string            `json:"payment_date,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// CreateClientInput is the validated input for creating a Client
type CreateClientInput struct {
	Name        string
	Contact     string
	PaymentType types.PaymentType
	Amount      *float64
	Currency    string
	Notes       string
	PaymentDay  *int
	PaymentDate string
}

// Payment records whether a client paid for a given period (YYYY-MM)
type Payment struct {
	ClientID types.ClientID `json:"client_id"`
	Period   string         `json:"period"`
	Paid     bool           `json:"paid"`
	PaidAt   *time.Time     `json:"paid_at,omitempty"`
}

package model

import (
	"time"

	"github.com/blueprint-app/blueprint/pkg/domain/types"
)

// Service represents a recurring paid service (hosting, domain, SaaS seat)
// tracked for a project, with an expiry to be notified about.
type Service struct {
	ID          types.ServiceID `json:"id"`
	ProjectName string          `json:"project_name"`
	ServiceName string          `json:"service_name"`
	Login       string          `json:"login,omitempty"`
	URL         string          `json:"url,omitempty"`
	ExpiresAt   string          `json:"expires_at"`
	Cost        *float64        `json:"cost,omitempty"`
	Currency    string          `json:"currency"`
	Notes       string          `json:"notes,omitempty"`
	Category    string          `json:"category,omitempty"`
	NotifyDays  int             `json:"notify_days"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateServiceInput is the validated input for creating a Service.
// ExpiresAt is a YYYY-MM-DD date; empty means one year from now.
type CreateServiceInput struct {
	ProjectName string
	ServiceName string
	Login       string
	URL         string
	ExpiresAt   string
	Cost        *float64
	Currency    string
	Notes       string
	Category    string
	NotifyDays  *int
}

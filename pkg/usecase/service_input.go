package usecase

import (
	"strings"

	"github.com/blueprint-app/blueprint/pkg/domain/model"
)

// buildServiceInput forwards an add_service payload with only scalar
// normalization. The repository fills the remaining defaults (currency,
// expiry, notify window).
func buildServiceInput(data map[string]any) model.CreateServiceInput {
	var input model.CreateServiceInput

	input.ProjectName, _ = firstString(data, "project_name", "project")
	input.ServiceName, _ = firstString(data, "service_name", "service", "name")
	input.Login, _ = parseString(data["login"])
	input.URL, _ = firstString(data, "url", "link")
	input.ExpiresAt, _ = firstString(data, "expires_at", "expires")
	input.Notes, _ = parseString(data["notes"])
	input.Category, _ = parseString(data["category"])

	if cost, ok := parseNumber(data["cost"]); ok {
		input.Cost = &cost
	}
	if currency, ok := parseString(data["currency"]); ok {
		input.Currency = strings.ToUpper(currency)
	}
	if days, ok := parseInt(data["notify_days"]); ok {
		input.NotifyDays = &days
	}

	return input
}

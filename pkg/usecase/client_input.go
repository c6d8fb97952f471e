package usecase

import (
	"strings"

	"github.com/blueprint-app/blueprint/pkg/domain/model"
	"github.com/blueprint-app/blueprint/pkg/domain/types"
)

const defaultClientName = "New client"

// buildClientInput normalizes an add_client payload. Missing or
// malformed fields fall back to defaults instead of failing: the
// assistant routinely omits everything but the name.
func buildClientInput(data map[string]any) model.CreateClientInput {
	input := model.CreateClientInput{
		Name:        defaultClientName,
		PaymentType: types.PaymentMonthly,
		Currency:    "RUB",
	}

	if name, ok := parseString(data["name"]); ok {
		input.Name = name
	}
	input.Contact, _ = parseString(data["contact"])
	input.Notes, _ = parseString(data["notes"])

	if pt, ok := parseString(data["payment_type"]); ok && strings.EqualFold(pt, string(types.PaymentOnetime)) {
		input.PaymentType = types.PaymentOnetime
	}
	if currency, ok := parseString(data["currency"]); ok {
		input.Currency = strings.ToUpper(currency)
	}
	if amount, ok := parseNumber(data["amount"]); ok {
		input.Amount = &amount
	}

	for _, key := range []string{"payment_day", "day"} {
		if day, ok := parseInt(data[key]); ok {
			input.PaymentDay = &day
			break
		}
	}
	for _, key := range []string{"payment_date", "date"} {
		if date, ok := parseString(data[key]); ok {
			input.PaymentDate = date
			break
		}
	}

	return input
}

package types

import "github.com/m-mizutani/goerr/v2"

// PaymentType distinguishes recurring clients from one-off engagements
type PaymentType string

const (
	PaymentMonthly PaymentType = "monthly"
	PaymentOnetime PaymentType = "onetime"
)

// Validate checks if the PaymentType is a known value
func (p PaymentType) Validate() error {
	switch p {
	case PaymentMonthly, PaymentOnetime:
		return nil
	}
	return goerr.New("invalid payment type", goerr.V("paymentType", p))
}

// String returns the string representation of PaymentType
func (p PaymentType) String() string {
	return string(p)
}

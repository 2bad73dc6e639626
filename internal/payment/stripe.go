// Package payment wraps the external payment gateway's charge-creation call.
package payment

import (
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Charge is the slice of gateway metadata the checkout response echoes.
type Charge struct {
	ID          string
	Description string
	Amount      int64
	Currency    string
}

// Charger creates a charge for an amount in minor units (cents). No
// idempotency key is passed, so a retried request can charge twice.
type Charger interface {
	Charge(amountMinor int64, currency, source, description string, metadata map[string]string) (Charge, error)
}

type StripeCharger struct{ api *client.API }

func NewStripeCharger(secretKey string) *StripeCharger {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeCharger{api: api}
}

func (s *StripeCharger) Charge(amountMinor int64, currency, source, description string, metadata map[string]string) (Charge, error) {
	params := &stripe.ChargeParams{
		Amount:      stripe.Int64(amountMinor),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
	}
	if err := params.SetSource(source); err != nil {
		return Charge{}, err
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	ch, err := s.api.Charges.New(params)
	if err != nil {
		return Charge{}, err
	}
	return Charge{
		ID:          ch.ID,
		Description: ch.Description,
		Amount:      ch.Amount,
		Currency:    string(ch.Currency),
	}, nil
}

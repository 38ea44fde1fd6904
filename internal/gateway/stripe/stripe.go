package stripe

import (
	"context"

	stripeapi "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// Driver creates payment intents against the Stripe API.
type Driver struct{}

func New(secretKey string) *Driver {
	stripeapi.Key = secretKey
	return &Driver{}
}

func (d *Driver) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripeapi.PaymentIntentParams{
		Amount:             stripeapi.Int64(amount),
		Currency:           stripeapi.String(currency),
		PaymentMethodTypes: stripeapi.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}

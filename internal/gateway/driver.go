package gateway

import "context"

// Driver is the interface a payment provider must implement.
type Driver interface {
	// CreateIntent opens a payment intent for amount in minor units of the
	// given currency and returns the client secret used to complete checkout.
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

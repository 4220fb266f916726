package interfaces

import "context"

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface.go -package=mock_interfaces

// IPaymentGateway abstracts the external payment provider (Razorpay).
//
// The gateway issues orders and subscriptions and collects payment
// out-of-band; completed payments come back to us as a signed claim that the
// verification use case checks against the key secret.
type IPaymentGateway interface {
	// CreateOrder issues one order-creation request. amountMinor is in the
	// gateway's minor currency unit (paise).
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (orderID string, err error)

	// CreateSubscription creates a recurring subscription on the given plan.
	// startAt is a unix timestamp; notes are attached verbatim.
	CreateSubscription(ctx context.Context, planID string, totalCount int64, startAt int64, notes map[string]interface{}) (subscriptionID, shortURL string, err error)

	// SubscriptionPayments lists the payments collected for a subscription.
	SubscriptionPayments(ctx context.Context, subscriptionID string) ([]map[string]interface{}, error)

	// SubscriptionStatus fetches the current gateway-side subscription status.
	SubscriptionStatus(ctx context.Context, subscriptionID string) (string, error)
}

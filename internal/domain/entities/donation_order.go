package entities

import "time"

// OrderStatus tracks a gateway order between creation and verification.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
)

// DonationOrder is the pending order persisted when a gateway order is
// created. Verification resolves it to cross-check the client-echoed amount
// and item against what the order was actually created for.
//
// Storage model (DynamoDB):
//   - PK: id (string) = gateway order id
//
// AmountMinor is in the gateway's minor currency unit (paise).
type DonationOrder struct {
	ID          string      `json:"id"`
	ItemID      string      `json:"itemId"`
	Receipt     string      `json:"receipt"`
	AmountMinor int64       `json:"amount"`
	Currency    string      `json:"currency"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

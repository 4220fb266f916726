package entities

import "time"

// PaymentRecord is one verified gateway transaction credited to a campaign.
//
// Storage model (DynamoDB):
//   - PK: id (string) = gateway payment id, which makes duplicate verification
//     attempts for the same (orderId, paymentId) collide on the key.
//
// A record is created only after the gateway signature check succeeds and is
// immutable afterwards. ItemID is a lookup key into the campaigns table, not an
// owning reference.
type PaymentRecord struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	PaymentID string    `json:"paymentId"`
	OrderID   string    `json:"orderId"`
	Signature string    `json:"signature"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	ItemID    string    `json:"itemId"`
	CreatedAt time.Time `json:"createdAt"`
}

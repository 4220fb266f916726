package request

import "strings"

// CreateOrderRequest is the payload for POST /create-order. Amount is in the
// gateway's minor currency unit (paise).
type CreateOrderRequest struct {
	Amount   int64  `json:"amount"`
	ItemID   string `json:"itemId"`
	Currency string `json:"currency"`
}

func (r CreateOrderRequest) IsValid() bool {
	return r.Amount > 0 && strings.TrimSpace(r.ItemID) != "" && strings.TrimSpace(r.Currency) != ""
}

// VerifyPaymentRequest is the payload for POST /verify: the gateway-issued
// identifiers plus the signed proof of completion.
type VerifyPaymentRequest struct {
	PaymentID string `json:"paymentId"`
	OrderID   string `json:"orderId"`
	Signature string `json:"signature"`
	Amount    int64  `json:"amount"`
	ItemID    string `json:"itemId"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
}

func (r VerifyPaymentRequest) IsValid() bool {
	return strings.TrimSpace(r.PaymentID) != "" &&
		strings.TrimSpace(r.OrderID) != "" &&
		strings.TrimSpace(r.Signature) != "" &&
		strings.TrimSpace(r.ItemID) != ""
}

package response

// OrderResponse echoes the created gateway order back to the client. Amount
// stays in the minor currency unit, exactly as sent to the gateway.
type OrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

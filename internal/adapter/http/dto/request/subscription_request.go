package request

// CreateSubscriptionRequest is the payload for POST /create-subscription.
// Field-level validation (10-digit contact, well-formed email) happens in the
// subscription use case.
type CreateSubscriptionRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

package response

// SubscriptionResponse carries the gateway subscription id and the hosted
// checkout link the subscriber completes signup on.
type SubscriptionResponse struct {
	SubscriptionID string `json:"subscription_id"`
	ShortURL       string `json:"short_url"`
}

type SubscriptionStatusResponse struct {
	Status string `json:"status"`
}

package request

// UpdateCampaignRequest is the payload for PUT /api/uploads/:id.
type UpdateCampaignRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

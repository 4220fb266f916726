package entities

import "time"

// CampaignItem is a fundraising target that accumulates donations.
//
// Storage model (DynamoDB):
//   - PK: id (string)
//
// Aggregate invariants:
//   - TotalDonated and DonorCount only move forward, and only as a side effect
//     of a successfully verified payment (once per payment).
//   - Amounts are stored in the major currency unit (rupees, not paise).
type CampaignItem struct {
	ID           string    `json:"id"`
	ImageURL     string    `json:"imageUrl"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TotalDonated float64   `json:"totalDonated"`
	DonorCount   int64     `json:"donorCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

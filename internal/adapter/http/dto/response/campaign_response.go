package response

import (
	"time"

	"github.com/anshpaul/paymentApp-backend/internal/domain/entities"
)

type CampaignResponse struct {
	ID           string    `json:"id"`
	ImageURL     string    `json:"imageUrl"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TotalDonated float64   `json:"totalDonated"`
	DonorCount   int64     `json:"donorCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromCampaignItem(item entities.CampaignItem) CampaignResponse {
	return CampaignResponse{
		ID:           item.ID,
		ImageURL:     item.ImageURL,
		Title:        item.Title,
		Description:  item.Description,
		TotalDonated: item.TotalDonated,
		DonorCount:   item.DonorCount,
		CreatedAt:    item.CreatedAt,
	}
}

type CampaignCreatedResponse struct {
	Message string           `json:"message"`
	Data    CampaignResponse `json:"data"`
}

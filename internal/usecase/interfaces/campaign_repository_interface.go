package interfaces

import (
	"context"

	"github.com/anshpaul/paymentApp-backend/internal/domain/entities"
)

//go:generate mockgen -source=campaign_repository_interface.go -destination=mocks/campaign_repository_interface.go -package=mock_interfaces

// ICampaignRepository abstracts DynamoDB persistence for CampaignItem.
//
// Donation aggregates (total_donated, donor_count) are never written through
// this interface; they move only via IPaymentRepository.RecordDonation.
type ICampaignRepository interface {
	Create(ctx context.Context, item entities.CampaignItem) (entities.CampaignItem, error)
	GetByID(ctx context.Context, id string) (entities.CampaignItem, error)
	List(ctx context.Context) ([]entities.CampaignItem, error)
	UpdateInfoByID(ctx context.Context, id, title, description string) (entities.CampaignItem, error)
	DeleteByID(ctx context.Context, id string) error
}

package interfaces

import (
	"context"

	"github.com/anshpaul/paymentApp-backend/internal/domain/entities"
)

//go:generate mockgen -source=order_repository_interface.go -destination=mocks/order_repository_interface.go -package=mock_interfaces

// IOrderRepository abstracts DynamoDB persistence for DonationOrder.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.DonationOrder) (entities.DonationOrder, error)
	GetByID(ctx context.Context, id string) (entities.DonationOrder, error)
	MarkPaid(ctx context.Context, id string) (entities.DonationOrder, error)
}

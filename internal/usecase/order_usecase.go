package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/anshpaul/paymentApp-backend/internal/domain/entities"
	"github.com/anshpaul/paymentApp-backend/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderInput     = errors.New("amount, itemId and currency are required")
	ErrItemNotFound          = errors.New("item not found")
	ErrPaymentGatewayFailure = errors.New("payment gateway failure")
	ErrPersistenceFailure    = errors.New("persistence failure")
	ErrGatewayNotConfigured  = errors.New("payment gateway not configured")
	ErrCampaignRepoMissing   = errors.New("campaign repository not configured")
)

// IOrderUseCase creates gateway orders for campaign donations.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, amountMinor int64, itemID, currency string) (CreateOrderResult, error)
}

type CreateOrderResult struct {
	OrderID  string
	Amount   int64
	Currency string
}

type OrderUseCase struct {
	orders    interfaces.IOrderRepository
	campaigns interfaces.ICampaignRepository
	gateway   interfaces.IPaymentGateway
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, campaigns interfaces.ICampaignRepository, gateway interfaces.IPaymentGateway) *OrderUseCase {
	return &OrderUseCase{orders: orders, campaigns: campaigns, gateway: gateway}
}

// CreateOrder validates the campaign item, issues exactly one order-creation
// request to the gateway and persists the resulting order as pending so
// verification can later cross-check the claimed amount. The item lookup
// happens first: an unknown itemId never reaches the gateway.
func (u *OrderUseCase) CreateOrder(ctx context.Context, amountMinor int64, itemID, currency string) (CreateOrderResult, error) {
	itemID = strings.TrimSpace(itemID)
	currency = strings.TrimSpace(currency)
	if amountMinor <= 0 || itemID == "" || currency == "" {
		log.Printf("[order][usecase] invalid input amount=%d item_id=%q currency=%q", amountMinor, itemID, currency)
		return CreateOrderResult{}, ErrInvalidOrderInput
	}
	if u.campaigns == nil {
		return CreateOrderResult{}, ErrCampaignRepoMissing
	}
	if u.gateway == nil {
		return CreateOrderResult{}, ErrGatewayNotConfigured
	}

	item, err := u.campaigns.GetByID(ctx, itemID)
	if err != nil {
		log.Printf("[order][usecase] campaign lookup failed item_id=%s err=%v", itemID, err)
		return CreateOrderResult{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if item.ID == "" {
		log.Printf("[order][usecase] item not found item_id=%s", itemID)
		return CreateOrderResult{}, ErrItemNotFound
	}

	// Fresh receipt per call; the gateway rejects duplicate receipts.
	receipt := fmt.Sprintf("rcpt_%d", time.Now().UTC().UnixNano())

	orderID, err := u.gateway.CreateOrder(ctx, amountMinor, currency, receipt)
	if err != nil {
		log.Printf("[order][usecase] gateway order create failed item_id=%s err=%v", itemID, err)
		return CreateOrderResult{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailure, err)
	}

	order := entities.DonationOrder{
		ID:          orderID,
		ItemID:      itemID,
		Receipt:     receipt,
		AmountMinor: amountMinor,
		Currency:    currency,
		Status:      entities.OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := u.orders.Create(ctx, order); err != nil {
		log.Printf("[order][usecase] pending order persist failed order_id=%s err=%v", orderID, err)
		return CreateOrderResult{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	log.Printf("[order][usecase] order created order_id=%s item_id=%s amount=%d currency=%s", orderID, itemID, amountMinor, currency)

	return CreateOrderResult{OrderID: orderID, Amount: amountMinor, Currency: currency}, nil
}

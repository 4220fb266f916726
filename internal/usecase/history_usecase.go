package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/anshpaul/paymentApp-backend/internal/domain/entities"
	"github.com/anshpaul/paymentApp-backend/internal/usecase/interfaces"
)

// IHistoryUseCase lists past donations joined with campaign metadata.

type IHistoryUseCase interface {
	ListPayments(ctx context.Context) ([]DonationHistoryEntry, error)
}

type DonationHistoryEntry struct {
	Payment   entities.PaymentRecord
	ItemTitle string
}

type HistoryUseCase struct {
	payments  interfaces.IPaymentRepository
	campaigns interfaces.ICampaignRepository
}

var _ IHistoryUseCase = (*HistoryUseCase)(nil)

func NewHistoryUseCase(paymentRepo interfaces.IPaymentRepository, campaigns interfaces.ICampaignRepository) *HistoryUseCase {
	return &HistoryUseCase{payments: paymentRepo, campaigns: campaigns}
}

// ListPayments returns every payment, most recent first, each augmented with
// the title of the campaign item it funded. A payment whose item has since
// disappeared keeps an empty title; the reference is non-owning.
func (u *HistoryUseCase) ListPayments(ctx context.Context) ([]DonationHistoryEntry, error) {
	records, err := u.payments.List(ctx)
	if err != nil {
		log.Printf("[history][usecase] payment list failed err=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	titles := make(map[string]string)
	entries := make([]DonationHistoryEntry, 0, len(records))
	for _, p := range records {
		title, ok := titles[p.ItemID]
		if !ok {
			item, err := u.campaigns.GetByID(ctx, p.ItemID)
			if err != nil {
				log.Printf("[history][usecase] campaign lookup failed item_id=%s err=%v", p.ItemID, err)
				return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
			}
			title = item.Title
			titles[p.ItemID] = title
		}
		entries = append(entries, DonationHistoryEntry{Payment: p, ItemTitle: title})
	}
	return entries, nil
}

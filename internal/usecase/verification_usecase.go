package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/anshpaul/paymentApp-backend/internal/domain/entities"
	"github.com/anshpaul/paymentApp-backend/internal/infrastructure/payments"
	"github.com/anshpaul/paymentApp-backend/internal/usecase/interfaces"
)

var (
	ErrMissingPaymentDetails = errors.New("paymentId, orderId and signature are required")
	ErrInvalidSignature      = errors.New("invalid payment signature")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderMismatch         = errors.New("payment does not match the created order")
)

// The gateway operates in the minor currency unit (paise); the ledger stores
// the major unit (rupees).
const minorUnitFactor = 100

// IVerificationUseCase validates a completed payment and updates the ledger.

type IVerificationUseCase interface {
	VerifyAndRecord(ctx context.Context, in VerifyDonationInput) (entities.PaymentRecord, error)
}

type VerifyDonationInput struct {
	PaymentID   string
	OrderID     string
	Signature   string
	AmountMinor int64
	ItemID      string
	Email       string
	Contact     string
}

type VerificationUseCase struct {
	payments  interfaces.IPaymentRepository
	campaigns interfaces.ICampaignRepository
	orders    interfaces.IOrderRepository
	keySecret string
}

var _ IVerificationUseCase = (*VerificationUseCase)(nil)

func NewVerificationUseCase(paymentRepo interfaces.IPaymentRepository, campaigns interfaces.ICampaignRepository, orders interfaces.IOrderRepository, keySecret string) *VerificationUseCase {
	return &VerificationUseCase{payments: paymentRepo, campaigns: campaigns, orders: orders, keySecret: keySecret}
}

// VerifyAndRecord runs the verification sequence: signature check, pending
// order cross-check, item resolution, then the transactional ledger write
// (payment record + campaign aggregate increment commit together).
//
// The write is keyed on the gateway payment id, so retrying a verification
// with the same (orderId, paymentId) returns the already-stored record and
// never double-counts.
func (u *VerificationUseCase) VerifyAndRecord(ctx context.Context, in VerifyDonationInput) (entities.PaymentRecord, error) {
	in.PaymentID = strings.TrimSpace(in.PaymentID)
	in.OrderID = strings.TrimSpace(in.OrderID)
	in.Signature = strings.TrimSpace(in.Signature)
	in.ItemID = strings.TrimSpace(in.ItemID)
	if in.PaymentID == "" || in.OrderID == "" || in.Signature == "" || in.ItemID == "" {
		log.Printf("[verify][usecase] missing payment details order_id=%q payment_id=%q", in.OrderID, in.PaymentID)
		return entities.PaymentRecord{}, ErrMissingPaymentDetails
	}

	if !payments.VerifySignature(in.OrderID, in.PaymentID, in.Signature, u.keySecret) {
		log.Printf("[verify][usecase] invalid signature order_id=%s payment_id=%s", in.OrderID, in.PaymentID)
		return entities.PaymentRecord{}, ErrInvalidSignature
	}

	// The pending order is the source of truth for amount and currency; the
	// client-echoed values are only accepted when they agree with it.
	order, err := u.orders.GetByID(ctx, in.OrderID)
	if err != nil {
		log.Printf("[verify][usecase] order lookup failed order_id=%s err=%v", in.OrderID, err)
		return entities.PaymentRecord{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if order.ID == "" {
		log.Printf("[verify][usecase] order not found order_id=%s", in.OrderID)
		return entities.PaymentRecord{}, ErrOrderNotFound
	}
	if order.AmountMinor != in.AmountMinor || order.ItemID != in.ItemID {
		log.Printf("[verify][usecase] order mismatch order_id=%s claimed_amount=%d order_amount=%d claimed_item=%s order_item=%s",
			in.OrderID, in.AmountMinor, order.AmountMinor, in.ItemID, order.ItemID)
		return entities.PaymentRecord{}, ErrOrderMismatch
	}

	item, err := u.campaigns.GetByID(ctx, in.ItemID)
	if err != nil {
		log.Printf("[verify][usecase] campaign lookup failed item_id=%s err=%v", in.ItemID, err)
		return entities.PaymentRecord{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	if item.ID == "" {
		log.Printf("[verify][usecase] item not found item_id=%s", in.ItemID)
		return entities.PaymentRecord{}, ErrItemNotFound
	}

	record := entities.PaymentRecord{
		ID:        in.PaymentID,
		Amount:    float64(in.AmountMinor) / minorUnitFactor,
		PaymentID: in.PaymentID,
		OrderID:   in.OrderID,
		Signature: in.Signature,
		Email:     strings.TrimSpace(in.Email),
		Contact:   strings.TrimSpace(in.Contact),
		ItemID:    in.ItemID,
		CreatedAt: time.Now().UTC(),
	}

	if err := u.payments.RecordDonation(ctx, record); err != nil {
		if errors.Is(err, interfaces.ErrPaymentAlreadyRecorded) {
			existing, getErr := u.payments.GetByID(ctx, in.PaymentID)
			if getErr == nil && existing.ID != "" {
				log.Printf("[verify][usecase] duplicate verification order_id=%s payment_id=%s", in.OrderID, in.PaymentID)
				return existing, nil
			}
			if getErr != nil {
				return entities.PaymentRecord{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, getErr)
			}
		}
		log.Printf("[verify][usecase] ledger write failed order_id=%s payment_id=%s err=%v", in.OrderID, in.PaymentID, err)
		return entities.PaymentRecord{}, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}

	// Best effort; the ledger already committed.
	if _, err := u.orders.MarkPaid(ctx, in.OrderID); err != nil {
		log.Printf("[verify][usecase] mark-paid failed order_id=%s err=%v", in.OrderID, err)
	}

	log.Printf("[verify][usecase] payment recorded order_id=%s payment_id=%s item_id=%s amount=%.2f", in.OrderID, in.PaymentID, in.ItemID, record.Amount)
	return record, nil
}

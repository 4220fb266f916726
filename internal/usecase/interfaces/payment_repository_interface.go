package interfaces

import (
	"context"
	"errors"

	"github.com/anshpaul/paymentApp-backend/internal/domain/entities"
)

//go:generate mockgen -source=payment_repository_interface.go -destination=mocks/payment_repository_interface.go -package=mock_interfaces

// ErrPaymentAlreadyRecorded is returned by RecordDonation when a record with
// the same payment id already exists. The whole write is cancelled in that
// case, so campaign aggregates are not incremented a second time.
var ErrPaymentAlreadyRecorded = errors.New("payment already recorded")

// IPaymentRepository abstracts DynamoDB persistence for PaymentRecord.
//
// RecordDonation must be atomic: the payment record and the campaign aggregate
// increment (p.Amount onto total_donated, +1 onto donor_count) either both
// commit or neither does.
type IPaymentRepository interface {
	RecordDonation(ctx context.Context, p entities.PaymentRecord) error
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	List(ctx context.Context) ([]entities.PaymentRecord, error)
}

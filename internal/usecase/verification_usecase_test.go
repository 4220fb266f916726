package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/anshpaul/paymentApp-backend/internal/domain/entities"
	"github.com/anshpaul/paymentApp-backend/internal/infrastructure/payments"
	"github.com/anshpaul/paymentApp-backend/internal/usecase/interfaces"
	mock_interfaces "github.com/anshpaul/paymentApp-backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const testKeySecret = "test_secret"

func validInput() VerifyDonationInput {
	return VerifyDonationInput{
		PaymentID:   "pay_1",
		OrderID:     "order_1",
		Signature:   payments.SignPayment("order_1", "pay_1", testKeySecret),
		AmountMinor: 50000,
		ItemID:      "item-1",
		Email:       "donor@example.com",
		Contact:     "9876543210",
	}
}

func pendingOrder() entities.DonationOrder {
	return entities.DonationOrder{
		ID:          "order_1",
		ItemID:      "item-1",
		AmountMinor: 50000,
		Currency:    "INR",
		Status:      entities.OrderStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
}

func TestVerificationUseCase_VerifyAndRecord_Validations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*VerifyDonationInput)
	}{
		{name: "blank payment id", mutate: func(in *VerifyDonationInput) { in.PaymentID = " " }},
		{name: "blank order id", mutate: func(in *VerifyDonationInput) { in.OrderID = "" }},
		{name: "blank signature", mutate: func(in *VerifyDonationInput) { in.Signature = "  " }},
		{name: "blank item id", mutate: func(in *VerifyDonationInput) { in.ItemID = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewVerificationUseCase(nil, nil, nil, testKeySecret)
			in := validInput()
			tc.mutate(&in)
			_, err := uc.VerifyAndRecord(context.Background(), in)
			if !errors.Is(err, ErrMissingPaymentDetails) {
				t.Fatalf("expected ErrMissingPaymentDetails, got %v", err)
			}
		})
	}
}

func TestVerificationUseCase_VerifyAndRecord_InvalidSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	campaigns := mock_interfaces.NewMockICampaignRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewVerificationUseCase(repo, campaigns, orders, testKeySecret)

	// No repository expectations: a bad signature must stop the flow before
	// any lookup or write.
	in := validInput()
	in.Signature = payments.SignPayment("order_1", "pay_1", "wrong_secret")

	_, err := uc.VerifyAndRecord(context.Background(), in)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerificationUseCase_VerifyAndRecord_OrderChecks(t *testing.T) {
	t.Run("order lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		campaigns := mock_interfaces.NewMockICampaignRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewVerificationUseCase(repo, campaigns, orders, testKeySecret)

		orders.EXPECT().GetByID(gomock.Any(), "order_1").Return(entities.DonationOrder{}, errors.New("db"))

		_, err := uc.VerifyAndRecord(context.Background(), validInput())
		if !errors.Is(err, ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		campaigns := mock_interfaces.NewMockICampaignRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewVerificationUseCase(repo, campaigns, orders, testKeySecret)

		orders.EXPECT().GetByID(gomock.Any(), "order_1").Return(entities.DonationOrder{}, nil)

		_, err := uc.VerifyAndRecord(context.Background(), validInput())
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("claimed amount differs from order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		campaigns := mock_interfaces.NewMockICampaignRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewVerificationUseCase(repo, campaigns, orders, testKeySecret)

		orders.EXPECT().GetByID(gomock.Any(), "order_1").Return(pendingOrder(), nil)

		in := validInput()
		in.AmountMinor = 100
		_, err := uc.VerifyAndRecord(context.Background(), in)
		if !errors.Is(err, ErrOrderMismatch) {
			t.Fatalf("expected ErrOrderMismatch, got %v", err)
		}
	})

	t.Run("claimed item differs from order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		campaigns := mock_interfaces.NewMockICampaignRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewVerificationUseCase(repo, campaigns, orders, testKeySecret)

		orders.EXPECT().GetByID(gomock.Any(), "order_1").Return(pendingOrder(), nil)

		in := validInput()
		in.ItemID = "item-2"
		_, err := uc.VerifyAndRecord(context.Background(), in)
		if !errors.Is(err, ErrOrderMismatch) {
			t.Fatalf("expected ErrOrderMismatch, got %v", err)
		}
	})

	t.Run("item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		campaigns := mock_interfaces.NewMockICampaignRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewVerificationUseCase(repo, campaigns, orders, testKeySecret)

		orders.EXPECT().GetByID(gomock.Any(), "order_1").Return(pendingOrder(), nil)
		campaigns.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.CampaignItem{}, nil)

		_, err := uc.VerifyAndRecord(context.Background(), validInput())
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}

func TestVerificationUseCase_VerifyAndRecord_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	campaigns := mock_interfaces.NewMockICampaignRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewVerificationUseCase(repo, campaigns, orders, testKeySecret)

	orders.EXPECT().GetByID(gomock.Any(), "order_1").Return(pendingOrder(), nil)
	campaigns.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.CampaignItem{ID: "item-1"}, nil)

	repo.EXPECT().RecordDonation(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentRecord{})).DoAndReturn(
		func(_ context.Context, p entities.PaymentRecord) error {
			if p.ID != "pay_1" || p.PaymentID != "pay_1" || p.OrderID != "order_1" || p.ItemID != "item-1" {
				t.Fatalf("unexpected record: %+v", p)
			}
			// 50000 paise must land as 500.00 rupees.
			if p.Amount != 500.00 {
				t.Fatalf("expected amount 500.00, got %v", p.Amount)
			}
			if p.Email != "donor@example.com" || p.Contact != "9876543210" {
				t.Fatalf("donor details not carried: %+v", p)
			}
			if p.CreatedAt.IsZero() {
				t.Fatalf("created at must be set")
			}
			return nil
		},
	)
	orders.EXPECT().MarkPaid(gomock.Any(), "order_1").Return(pendingOrder(), nil)

	record, err := uc.VerifyAndRecord(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Amount != 500.00 {
		t.Fatalf("expected amount 500.00, got %v", record.Amount)
	}
}

func TestVerificationUseCase_VerifyAndRecord_MarkPaidFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	campaigns := mock_interfaces.NewMockICampaignRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewVerificationUseCase(repo, campaigns, orders, testKeySecret)

	orders.EXPECT().GetByID(gomock.Any(), "order_1").Return(pendingOrder(), nil)
	campaigns.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.CampaignItem{ID: "item-1"}, nil)
	repo.EXPECT().RecordDonation(gomock.Any(), gomock.Any()).Return(nil)
	orders.EXPECT().MarkPaid(gomock.Any(), "order_1").Return(entities.DonationOrder{}, errors.New("db"))

	if _, err := uc.VerifyAndRecord(context.Background(), validInput()); err != nil {
		t.Fatalf("mark-paid failure must not fail the verification: %v", err)
	}
}

func TestVerificationUseCase_VerifyAndRecord_Duplicate(t *testing.T) {
	t.Run("duplicate returns the stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		campaigns := mock_interfaces.NewMockICampaignRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewVerificationUseCase(repo, campaigns, orders, testKeySecret)

		stored := entities.PaymentRecord{ID: "pay_1", PaymentID: "pay_1", OrderID: "order_1", ItemID: "item-1", Amount: 500}

		orders.EXPECT().GetByID(gomock.Any(), "order_1").Return(pendingOrder(), nil)
		campaigns.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.CampaignItem{ID: "item-1"}, nil)
		repo.EXPECT().RecordDonation(gomock.Any(), gomock.Any()).Return(interfaces.ErrPaymentAlreadyRecorded)
		repo.EXPECT().GetByID(gomock.Any(), "pay_1").Return(stored, nil)

		record, err := uc.VerifyAndRecord(context.Background(), validInput())
		if err != nil {
			t.Fatalf("duplicate verification should succeed, got %v", err)
		}
		if record.ID != "pay_1" || record.Amount != 500 {
			t.Fatalf("expected the stored record, got %+v", record)
		}
	})

	t.Run("duplicate with failing lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		campaigns := mock_interfaces.NewMockICampaignRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewVerificationUseCase(repo, campaigns, orders, testKeySecret)

		orders.EXPECT().GetByID(gomock.Any(), "order_1").Return(pendingOrder(), nil)
		campaigns.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.CampaignItem{ID: "item-1"}, nil)
		repo.EXPECT().RecordDonation(gomock.Any(), gomock.Any()).Return(interfaces.ErrPaymentAlreadyRecorded)
		repo.EXPECT().GetByID(gomock.Any(), "pay_1").Return(entities.PaymentRecord{}, errors.New("db"))

		_, err := uc.VerifyAndRecord(context.Background(), validInput())
		if !errors.Is(err, ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})

	t.Run("other ledger write errors fail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		campaigns := mock_interfaces.NewMockICampaignRepository(ctrl)
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewVerificationUseCase(repo, campaigns, orders, testKeySecret)

		orders.EXPECT().GetByID(gomock.Any(), "order_1").Return(pendingOrder(), nil)
		campaigns.EXPECT().GetByID(gomock.Any(), "item-1").Return(entities.CampaignItem{ID: "item-1"}, nil)
		repo.EXPECT().RecordDonation(gomock.Any(), gomock.Any()).Return(errors.New("transaction cancelled"))

		_, err := uc.VerifyAndRecord(context.Background(), validInput())
		if !errors.Is(err, ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})
}

// In-memory ledger with the same atomicity contract as the DynamoDB
// transaction: one write per payment id, aggregate moves with the record.
type memoryLedger struct {
	mu      sync.Mutex
	records map[string]entities.PaymentRecord
	total   float64
	donors  int64
}

func newMemoryLedger() *memoryLedger {
	return &memoryLedger{records: make(map[string]entities.PaymentRecord)}
}

func (m *memoryLedger) RecordDonation(_ context.Context, p entities.PaymentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[p.ID]; ok {
		return interfaces.ErrPaymentAlreadyRecorded
	}
	m.records[p.ID] = p
	m.total += p.Amount
	m.donors++
	return nil
}

func (m *memoryLedger) GetByID(_ context.Context, id string) (entities.PaymentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[id], nil
}

func (m *memoryLedger) List(_ context.Context) ([]entities.PaymentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entities.PaymentRecord, 0, len(m.records))
	for _, p := range m.records {
		out = append(out, p)
	}
	return out, nil
}

type staticOrders struct{ order entities.DonationOrder }

func (s staticOrders) Create(_ context.Context, o entities.DonationOrder) (entities.DonationOrder, error) {
	return o, nil
}
func (s staticOrders) GetByID(_ context.Context, _ string) (entities.DonationOrder, error) {
	return s.order, nil
}
func (s staticOrders) MarkPaid(_ context.Context, _ string) (entities.DonationOrder, error) {
	return s.order, nil
}

type staticCampaigns struct{ item entities.CampaignItem }

func (s staticCampaigns) Create(_ context.Context, item entities.CampaignItem) (entities.CampaignItem, error) {
	return item, nil
}
func (s staticCampaigns) GetByID(_ context.Context, _ string) (entities.CampaignItem, error) {
	return s.item, nil
}
func (s staticCampaigns) List(_ context.Context) ([]entities.CampaignItem, error) { return nil, nil }
func (s staticCampaigns) UpdateInfoByID(_ context.Context, _, _, _ string) (entities.CampaignItem, error) {
	return s.item, nil
}
func (s staticCampaigns) DeleteByID(_ context.Context, _ string) error { return nil }

func TestVerificationUseCase_ConcurrentDuplicateVerifications(t *testing.T) {
	ledger := newMemoryLedger()
	uc := NewVerificationUseCase(
		ledger,
		staticCampaigns{item: entities.CampaignItem{ID: "item-1"}},
		staticOrders{order: pendingOrder()},
		testKeySecret,
	)

	const goroutines = 32
	var wg sync.WaitGroup
	errs := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.VerifyAndRecord(context.Background(), validInput())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("every retry of the same payment should succeed, got %v", err)
		}
	}
	if ledger.donors != 1 {
		t.Fatalf("expected exactly one donor increment, got %d", ledger.donors)
	}
	if ledger.total != 500.00 {
		t.Fatalf("expected total 500.00 after %d duplicate verifications, got %v", goroutines, ledger.total)
	}
}

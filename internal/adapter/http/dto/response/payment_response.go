package response

import (
	"time"

	"github.com/anshpaul/paymentApp-backend/internal/domain/entities"
)

type PaymentResponse struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	PaymentID string    `json:"paymentId"`
	OrderID   string    `json:"orderId"`
	Email     string    `json:"email,omitempty"`
	Contact   string    `json:"contact,omitempty"`
	ItemID    string    `json:"itemId"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		Amount:    p.Amount,
		PaymentID: p.PaymentID,
		OrderID:   p.OrderID,
		Email:     p.Email,
		Contact:   p.Contact,
		ItemID:    p.ItemID,
		CreatedAt: p.CreatedAt,
	}
}

type VerifyPaymentResponse struct {
	Message string          `json:"message"`
	Payment PaymentResponse `json:"payment"`
}

// HistoryEntryResponse is a payment joined with the title of the campaign
// item it funded.
type HistoryEntryResponse struct {
	PaymentResponse
	ItemTitle string `json:"itemTitle"`
}

func FromHistoryEntry(p entities.PaymentRecord, itemTitle string) HistoryEntryResponse {
	return HistoryEntryResponse{PaymentResponse: FromPaymentRecord(p), ItemTitle: itemTitle}
}

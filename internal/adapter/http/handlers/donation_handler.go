package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/anshpaul/paymentApp-backend/internal/adapter/http/dto/request"
	response "github.com/anshpaul/paymentApp-backend/internal/adapter/http/dto/response"
	"github.com/anshpaul/paymentApp-backend/internal/usecase"
	"github.com/anshpaul/paymentApp-backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidDonationPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Amount, itemId, and currency are required", http.StatusBadRequest)

// DonationHandler handles the donation payment flow: order creation, payment
// verification and donation history.

type DonationHandler struct {
	orders       usecase.IOrderUseCase
	verification usecase.IVerificationUseCase
	history      usecase.IHistoryUseCase
}

func NewDonationHandler(orders usecase.IOrderUseCase, verification usecase.IVerificationUseCase, history usecase.IHistoryUseCase) *DonationHandler {
	return &DonationHandler{orders: orders, verification: verification, history: history}
}

// CreateOrder creates a gateway order for a campaign item.
//
// @Summary  Create a donation order
// @Tags     donations
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateOrderRequest true "order details"
// @Success  200 {object} response.OrderResponse
// @Router   /create-order [post]
func (h *DonationHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil || !payload.IsValid() {
		log.Printf("[order][handler] invalid payload err=%v", err)
		c.JSON(errInvalidDonationPayload.HTTPStatus, errInvalidDonationPayload.ToHTTPError())
		return
	}

	result, err := h.orders.CreateOrder(c.Request.Context(), payload.Amount, payload.ItemID, payload.Currency)
	if err != nil {
		log.Printf("[order][handler] create failed item_id=%s err=%v", payload.ItemID, err)
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create success order_id=%s", result.OrderID)

	c.JSON(http.StatusOK, response.OrderResponse{
		OrderID:  result.OrderID,
		Amount:   result.Amount,
		Currency: result.Currency,
	})
}

// VerifyPayment validates a completed payment and records the donation.
//
// @Summary  Verify a completed payment
// @Tags     donations
// @Accept   json
// @Produce  json
// @Param    payload body request.VerifyPaymentRequest true "payment proof"
// @Success  200 {object} response.VerifyPaymentResponse
// @Router   /verify [post]
func (h *DonationHandler) VerifyPayment(c *gin.Context) {
	var payload request.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil || !payload.IsValid() {
		log.Printf("[verify][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing payment details", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	record, err := h.verification.VerifyAndRecord(c.Request.Context(), usecase.VerifyDonationInput{
		PaymentID:   payload.PaymentID,
		OrderID:     payload.OrderID,
		Signature:   payload.Signature,
		AmountMinor: payload.Amount,
		ItemID:      payload.ItemID,
		Email:       payload.Email,
		Contact:     payload.Contact,
	})
	if err != nil {
		log.Printf("[verify][handler] verification failed order_id=%s payment_id=%s err=%v", payload.OrderID, payload.PaymentID, err)
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[verify][handler] verification success order_id=%s payment_id=%s", payload.OrderID, payload.PaymentID)

	c.JSON(http.StatusOK, response.VerifyPaymentResponse{
		Message: "Payment verified and saved",
		Payment: response.FromPaymentRecord(record),
	})
}

// History lists all recorded donations, most recent first.
//
// @Summary  Donation history
// @Tags     donations
// @Produce  json
// @Success  200 {array} response.HistoryEntryResponse
// @Router   /history [get]
func (h *DonationHandler) History(c *gin.Context) {
	entries, err := h.history.ListPayments(c.Request.Context())
	if err != nil {
		log.Printf("[history][handler] list failed err=%v", err)
		appErr := mapDonationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, response.FromHistoryEntry(e.Payment, e.ItemTitle))
	}
	c.JSON(http.StatusOK, out)
}

func mapDonationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderInput), errors.Is(err, usecase.ErrMissingPaymentDetails):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid payment signature", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderMismatch):
		return pkg.NewDomainErrorSimple("ORDER_MISMATCH", "Payment details do not match the created order", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrItemNotFound):
		return pkg.NewDomainErrorSimple("ITEM_NOT_FOUND", "Item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayFailure):
		return pkg.NewDomainError("GATEWAY_ERROR", "Payment gateway request failed", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPersistenceFailure):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Storage operation failed", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

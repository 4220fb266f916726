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

// SubscriptionHandler handles recurring donation subscriptions.

type SubscriptionHandler struct {
	usecase usecase.ISubscriptionUseCase
}

func NewSubscriptionHandler(uc usecase.ISubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{usecase: uc}
}

// CreateSubscription signs a donor up for the weekly plan.
//
// @Summary  Create a recurring donation subscription
// @Tags     subscriptions
// @Accept   json
// @Produce  json
// @Param    payload body request.CreateSubscriptionRequest true "subscriber details"
// @Success  200 {object} response.SubscriptionResponse
// @Router   /create-subscription [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var payload request.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[subscription][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid name, email, or contact", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	checkout, err := h.usecase.CreateSubscription(c.Request.Context(), payload.Name, payload.Email, payload.Contact)
	if err != nil {
		log.Printf("[subscription][handler] create failed err=%v", err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] create success subscription_id=%s", checkout.SubscriptionID)

	c.JSON(http.StatusOK, response.SubscriptionResponse{
		SubscriptionID: checkout.SubscriptionID,
		ShortURL:       checkout.ShortURL,
	})
}

// PaymentHistory lists the payments collected for one subscription.
//
// @Summary  Subscription payment history
// @Tags     subscriptions
// @Produce  json
// @Param    subscriptionId path string true "subscription id"
// @Success  200 {array} object
// @Router   /history/{subscriptionId} [get]
func (h *SubscriptionHandler) PaymentHistory(c *gin.Context) {
	subscriptionID := c.Param("subscriptionId")

	items, err := h.usecase.PaymentHistory(c.Request.Context(), subscriptionID)
	if err != nil {
		log.Printf("[subscription][handler] history failed subscription_id=%s err=%v", subscriptionID, err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, items)
}

// Status returns the gateway-side status of one subscription.
//
// @Summary  Subscription status
// @Tags     subscriptions
// @Produce  json
// @Param    subscriptionId path string true "subscription id"
// @Success  200 {object} response.SubscriptionStatusResponse
// @Router   /subscription-status/{subscriptionId} [get]
func (h *SubscriptionHandler) Status(c *gin.Context) {
	subscriptionID := c.Param("subscriptionId")

	status, err := h.usecase.Status(c.Request.Context(), subscriptionID)
	if err != nil {
		log.Printf("[subscription][handler] status failed subscription_id=%s err=%v", subscriptionID, err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SubscriptionStatusResponse{Status: status})
}

func mapSubscriptionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSubscriberDetails), errors.Is(err, usecase.ErrMissingSubscriptionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid name, email, or contact", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubscriptionPlanNotConfigured):
		return pkg.NewDomainError("PLAN_NOT_CONFIGURED", "Subscription plan not configured", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrPaymentGatewayFailure):
		return pkg.NewDomainError("GATEWAY_ERROR", "Payment gateway request failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

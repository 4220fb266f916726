package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/anshpaul/paymentApp-backend/internal/usecase/interfaces"
)

var (
	ErrInvalidSubscriberDetails      = errors.New("invalid name, email, or contact")
	ErrMissingSubscriptionID         = errors.New("subscription id is required")
	ErrSubscriptionPlanNotConfigured = errors.New("subscription plan not configured")
)

var (
	contactPattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Weekly plan: one year of charges, starting one week after signup.
const (
	defaultSubscriptionTotalCount = 52
	subscriptionStartDelay        = 7 * 24 * time.Hour
)

// ISubscriptionUseCase manages recurring donation subscriptions. These are
// thin wrappers over the gateway's subscription APIs; nothing is stored
// locally.

type ISubscriptionUseCase interface {
	CreateSubscription(ctx context.Context, name, email, contact string) (SubscriptionCheckout, error)
	PaymentHistory(ctx context.Context, subscriptionID string) ([]map[string]interface{}, error)
	Status(ctx context.Context, subscriptionID string) (string, error)
}

type SubscriptionCheckout struct {
	SubscriptionID string
	ShortURL       string
}

type SubscriptionUseCase struct {
	gateway    interfaces.IPaymentGateway
	planID     string
	totalCount int64
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(gateway interfaces.IPaymentGateway, planID string, totalCount int64) *SubscriptionUseCase {
	if totalCount <= 0 {
		totalCount = defaultSubscriptionTotalCount
	}
	return &SubscriptionUseCase{gateway: gateway, planID: planID, totalCount: totalCount}
}

func (u *SubscriptionUseCase) CreateSubscription(ctx context.Context, name, email, contact string) (SubscriptionCheckout, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	contact = strings.TrimSpace(contact)
	if name == "" || !emailPattern.MatchString(email) || !contactPattern.MatchString(contact) {
		log.Printf("[subscription][usecase] invalid subscriber details name=%q email=%q contact=%q", name, email, contact)
		return SubscriptionCheckout{}, ErrInvalidSubscriberDetails
	}
	if u.gateway == nil {
		return SubscriptionCheckout{}, ErrGatewayNotConfigured
	}
	if strings.TrimSpace(u.planID) == "" {
		log.Printf("[subscription][usecase] plan id not configured")
		return SubscriptionCheckout{}, ErrSubscriptionPlanNotConfigured
	}

	startAt := time.Now().Add(subscriptionStartDelay).Unix()
	notes := map[string]interface{}{"name": name, "email": email, "contact": contact}

	id, shortURL, err := u.gateway.CreateSubscription(ctx, u.planID, u.totalCount, startAt, notes)
	if err != nil {
		log.Printf("[subscription][usecase] gateway subscription create failed err=%v", err)
		return SubscriptionCheckout{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailure, err)
	}
	log.Printf("[subscription][usecase] subscription created subscription_id=%s", id)

	return SubscriptionCheckout{SubscriptionID: id, ShortURL: shortURL}, nil
}

func (u *SubscriptionUseCase) PaymentHistory(ctx context.Context, subscriptionID string) ([]map[string]interface{}, error) {
	subscriptionID = strings.TrimSpace(subscriptionID)
	if subscriptionID == "" {
		return nil, ErrMissingSubscriptionID
	}
	if u.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}

	items, err := u.gateway.SubscriptionPayments(ctx, subscriptionID)
	if err != nil {
		log.Printf("[subscription][usecase] gateway payment history failed subscription_id=%s err=%v", subscriptionID, err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentGatewayFailure, err)
	}
	return items, nil
}

func (u *SubscriptionUseCase) Status(ctx context.Context, subscriptionID string) (string, error) {
	subscriptionID = strings.TrimSpace(subscriptionID)
	if subscriptionID == "" {
		return "", ErrMissingSubscriptionID
	}
	if u.gateway == nil {
		return "", ErrGatewayNotConfigured
	}

	status, err := u.gateway.SubscriptionStatus(ctx, subscriptionID)
	if err != nil {
		log.Printf("[subscription][usecase] gateway status fetch failed subscription_id=%s err=%v", subscriptionID, err)
		return "", fmt.Errorf("%w: %v", ErrPaymentGatewayFailure, err)
	}
	return status, nil
}

package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

var ErrMissingRazorpayCredentials = errors.New("missing RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET")
var ErrRazorpayGatewayNotConfigured = errors.New("razorpay gateway not configured")

const defaultGatewayTimeoutSeconds = 10

// RazorpayGateway adapts the Razorpay SDK to the IPaymentGateway port.
//
// The SDK client carries no context; the bounded-timeout requirement is met
// with SetTimeout at construction, and every call checks ctx before hitting
// the wire so a cancelled request never dispatches.
type RazorpayGateway struct {
	client   *razorpay.Client
	mockMode bool
}

func NewRazorpayGateway(keyID, keySecret string) (*RazorpayGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &RazorpayGateway{mockMode: true}, nil
	}

	if keyID == "" || keySecret == "" {
		log.Printf("[payment][gateway] missing razorpay credentials")
		return nil, ErrMissingRazorpayCredentials
	}

	client := razorpay.NewClient(keyID, keySecret)
	client.SetTimeout(int16(gatewayTimeoutSeconds()))
	log.Printf("[payment][gateway] Razorpay client initialized")

	return &RazorpayGateway{client: client}, nil
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (string, error) {
	if g != nil && g.mockMode {
		id := "order_mock" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock order created order_id=%s amount=%d currency=%s", id, amountMinor, currency)
		return id, nil
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", ErrRazorpayGatewayNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	log.Printf("[payment][gateway] order create start amount=%d currency=%s receipt=%s", amountMinor, currency, receipt)

	body, err := g.client.Order.Create(map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}, nil)
	if err != nil {
		log.Printf("[payment][gateway] sdk order create failed err=%v", err)
		return "", err
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		log.Printf("[payment][gateway] order response missing id body=%v", body)
		return "", fmt.Errorf("razorpay order response missing id")
	}
	log.Printf("[payment][gateway] order create success order_id=%s", id)
	return id, nil
}

func (g *RazorpayGateway) CreateSubscription(ctx context.Context, planID string, totalCount int64, startAt int64, notes map[string]interface{}) (string, string, error) {
	if g != nil && g.mockMode {
		id := "sub_mock" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock subscription created subscription_id=%s plan_id=%s", id, planID)
		return id, "https://rzp.io/i/" + id, nil
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", ErrRazorpayGatewayNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	log.Printf("[payment][gateway] subscription create start plan_id=%s total_count=%d", planID, totalCount)

	body, err := g.client.Subscription.Create(map[string]interface{}{
		"plan_id":         planID,
		"customer_notify": 1,
		"total_count":     totalCount,
		"quantity":        1,
		"notes":           notes,
		"start_at":        startAt,
	}, nil)
	if err != nil {
		log.Printf("[payment][gateway] sdk subscription create failed err=%v", err)
		return "", "", err
	}

	id, _ := body["id"].(string)
	shortURL, _ := body["short_url"].(string)
	if id == "" {
		log.Printf("[payment][gateway] subscription response missing id body=%v", body)
		return "", "", fmt.Errorf("razorpay subscription response missing id")
	}
	log.Printf("[payment][gateway] subscription create success subscription_id=%s", id)
	return id, shortURL, nil
}

func (g *RazorpayGateway) SubscriptionPayments(ctx context.Context, subscriptionID string) ([]map[string]interface{}, error) {
	if g != nil && g.mockMode {
		return []map[string]interface{}{}, nil
	}
	if g == nil || g.client == nil {
		return nil, ErrRazorpayGatewayNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log.Printf("[payment][gateway] subscription payments fetch subscription_id=%s", subscriptionID)

	body, err := g.client.Payment.All(map[string]interface{}{
		"subscription_id": subscriptionID,
	}, nil)
	if err != nil {
		log.Printf("[payment][gateway] sdk payment list failed subscription_id=%s err=%v", subscriptionID, err)
		return nil, err
	}

	rawItems, _ := body["items"].([]interface{})
	items := make([]map[string]interface{}, 0, len(rawItems))
	for _, raw := range rawItems {
		if m, ok := raw.(map[string]interface{}); ok {
			items = append(items, m)
		}
	}
	return items, nil
}

func (g *RazorpayGateway) SubscriptionStatus(ctx context.Context, subscriptionID string) (string, error) {
	if g != nil && g.mockMode {
		return "active", nil
	}
	if g == nil || g.client == nil {
		return "", ErrRazorpayGatewayNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	log.Printf("[payment][gateway] subscription status fetch subscription_id=%s", subscriptionID)

	body, err := g.client.Subscription.Fetch(subscriptionID, nil, nil)
	if err != nil {
		log.Printf("[payment][gateway] sdk subscription fetch failed subscription_id=%s err=%v", subscriptionID, err)
		return "", err
	}

	status, _ := body["status"].(string)
	return status, nil
}

func gatewayTimeoutSeconds() int64 {
	if v := strings.TrimSpace(os.Getenv("RAZORPAY_TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultGatewayTimeoutSeconds
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "RAZORPAY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

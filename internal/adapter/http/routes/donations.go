package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anshpaul/paymentApp-backend/internal/adapter/http/handlers"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Donation API is running")
	})
}

func addDonationRoutes(rg *gin.RouterGroup, donations *handlers.DonationHandler, subscriptions *handlers.SubscriptionHandler) {
	rg.POST("/create-order", donations.CreateOrder)
	rg.POST("/verify", donations.VerifyPayment)
	rg.GET("/history", donations.History)

	rg.POST("/create-subscription", subscriptions.CreateSubscription)
	rg.GET("/history/:subscriptionId", subscriptions.PaymentHistory)
	rg.GET("/subscription-status/:subscriptionId", subscriptions.Status)
}

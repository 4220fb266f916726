package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/anshpaul/paymentApp-backend/docs" // This will be auto-generated
	"github.com/anshpaul/paymentApp-backend/internal/adapter/http/handlers"
	"github.com/anshpaul/paymentApp-backend/internal/adapter/persistence/repository"
	"github.com/anshpaul/paymentApp-backend/internal/infrastructure/database"
	"github.com/anshpaul/paymentApp-backend/internal/infrastructure/payments"
	"github.com/anshpaul/paymentApp-backend/internal/infrastructure/storage"
	"github.com/anshpaul/paymentApp-backend/internal/usecase"
	"github.com/anshpaul/paymentApp-backend/internal/usecase/interfaces"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	campaignRepo := repository.NewCampaignDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	orderRepo := repository.NewOrderDynamoRepository(ddb)

	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")

	var gateway interfaces.IPaymentGateway
	rzp, err := payments.NewRazorpayGateway(os.Getenv("RAZORPAY_KEY_ID"), keySecret)
	if err != nil {
		log.Printf("[donation][routes] razorpay gateway not configured: %v", err)
	} else {
		gateway = rzp
	}

	imageStorage, err := storage.NewS3ImageStorage(context.Background())
	if err != nil {
		log.Fatalf("failed to create image storage: %v", err)
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, campaignRepo, gateway)
	verificationUseCase := usecase.NewVerificationUseCase(paymentRepo, campaignRepo, orderRepo, keySecret)
	historyUseCase := usecase.NewHistoryUseCase(paymentRepo, campaignRepo)
	campaignUseCase := usecase.NewCampaignUseCase(campaignRepo, imageStorage)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(gateway, os.Getenv("RAZORPAY_PLAN_ID"), subscriptionTotalCount())

	donationHandler := handlers.NewDonationHandler(orderUseCase, verificationUseCase, historyUseCase)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionUseCase)
	campaignHandler := handlers.NewCampaignHandler(campaignUseCase)

	root := router.Group("/")
	addPingRoutes(root)
	addDonationRoutes(root, donationHandler, subscriptionHandler)
	addCampaignRoutes(router.Group("/api"), campaignHandler)
}

func subscriptionTotalCount() int64 {
	raw := os.Getenv("RAZORPAY_TOTAL_COUNT")
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Printf("[subscription][routes] invalid RAZORPAY_TOTAL_COUNT=%q, using default", raw)
		return 0
	}
	return n
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

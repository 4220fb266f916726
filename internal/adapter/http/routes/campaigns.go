package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/anshpaul/paymentApp-backend/internal/adapter/http/handlers"
	"github.com/anshpaul/paymentApp-backend/internal/adapter/http/middleware"
)

const PathUploads = "/uploads"

func addCampaignRoutes(rg *gin.RouterGroup, campaignHandler *handlers.CampaignHandler) {
	uploads := rg.Group(PathUploads)
	{
		uploads.GET("", campaignHandler.ListCampaigns)
	}

	protected := uploads.Group("", middleware.AuthenticateToken())
	{
		protected.POST("", campaignHandler.CreateCampaign)
		protected.PUT("/:id", campaignHandler.UpdateCampaign)
		protected.DELETE("/:id", campaignHandler.DeleteCampaign)
	}
}

package main

import (
	_ "github.com/anshpaul/paymentApp-backend/docs"
	"github.com/anshpaul/paymentApp-backend/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Donation API
// @version         1.0
// @description     Donation backend (campaigns, one-off payments and subscriptions) backed by Razorpay and DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the API access token.

func main() {
	routes.Run()
}

package main

import (
	_ "sparkle_shine/docs"
	"sparkle_shine/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Sparkle & Shine Booking API
// @version         1.0
// @description     Cleaning catalog, interactive estimator and the Bubbles assistant for Sparkle & Shine Yonkers.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}

package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/slicely/pizza-order-backend/config"
	"github.com/slicely/pizza-order-backend/database"
	"github.com/slicely/pizza-order-backend/middlewares"
	"github.com/slicely/pizza-order-backend/router"
	"github.com/slicely/pizza-order-backend/utils"
)

func init() {
	// Load .env before anything else
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to migrate: %v", err)
	}
	if err := database.SeedPizzas(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed pizzas: %v", err)
	}

	// 50 requests per second per IP
	rateLimiter := middlewares.NewRateLimiter(50, 50)

	r := router.SetupRouter(db)
	r.Use(rateLimiter.RateLimit())

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

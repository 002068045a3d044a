package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"expense-api/config"
	"expense-api/middleware"
	"expense-api/routes"
	"expense-api/services"
	"expense-api/utils"
)

const appVersion = "1.0.0"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	client, err := config.ConnectDB()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			utils.SafeError("Error disconnecting from database: %v", err)
		}
	}()

	log.Println("✅ Database connected successfully")

	coll := config.ExpenseCollection(client)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := config.EnsureIndexes(ctx, coll); err != nil {
		cancel()
		log.Fatal("Failed to create indexes: ", err)
	}
	cancel()

	router := gin.Default()

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = "http://localhost:3000"
	}

	corsConfig := cors.Config{
		AllowOrigins:     []string{frontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	if !utils.IsProduction {
		router.Use(middleware.RequestLogger())
	}

	router.Use(middleware.RateLimiter(100, time.Minute))

	store := services.NewExpenseService(coll)

	api := router.Group("/api")
	{
		routes.SetupExpenseRoutes(api, store)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success":   true,
				"message":   "Expense Tracker API is running",
				"timestamp": time.Now().Format(time.RFC3339),
			})
		})
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Welcome to the Expense Tracker API",
			"version": appVersion,
			"endpoints": gin.H{
				"GET /api/health":          "Health check",
				"GET /api/expenses":        "Get all expenses",
				"POST /api/expenses":       "Create new expense",
				"PUT /api/expenses/:id":    "Update expense by ID",
				"DELETE /api/expenses/:id": "Delete expense by ID",
			},
		})
	})

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Not Found - " + c.Request.URL.Path,
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	utils.LogStartup("Expense Tracker API", appVersion, port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Khatixer/farmguard-ai/controllers"
	"github.com/Khatixer/farmguard-ai/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load environment variables
	godotenv.Load()

	// Connect to PostgreSQL database
	dsn := os.Getenv("DATABASE_URL")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Migrate models and wire the blob stores
	controllers.MigrateModels(db)

	// Set up Gin router with CORS configuration
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://farmguard-ai.web.app"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Public routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/signup", controllers.Signup)
	r.POST("/login", controllers.Login)

	// Protected routes using auth middleware
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	auth.GET("/ws", controllers.HandleWebSocket)
	auth.POST("/logout", controllers.Logout)
	auth.GET("/profile", controllers.GetProfile)
	auth.PUT("/profile", controllers.UpdateProfile)
	auth.GET("/settings", controllers.GetSettings)
	auth.PUT("/settings", controllers.UpdateSettings)
	auth.POST("/scan", controllers.ScanPlant)
	auth.GET("/history", controllers.GetHistory)
	auth.GET("/history/export", controllers.ExportHistoryCSV)
	auth.GET("/history/:id", controllers.GetHistoryItem)
	auth.DELETE("/history/:id", controllers.DeleteRecord)
	auth.POST("/history/:id/toggle-treated", controllers.ToggleTreated)
	auth.POST("/history/:id/select", controllers.SelectRecord)
	auth.DELETE("/history/selection", controllers.ClearSelection)
	auth.GET("/remedies", controllers.ListRemedies)
	auth.GET("/remedies/resolve/:record_id", controllers.ResolveRemedy)
	auth.GET("/impact", controllers.GetImpact)
	auth.POST("/savings/estimate", controllers.EstimateSavings)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

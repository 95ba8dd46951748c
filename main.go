package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ardhiansyah/resto-pos/config"
	"github.com/ardhiansyah/resto-pos/middlewares"
	"github.com/ardhiansyah/resto-pos/models"
	"github.com/ardhiansyah/resto-pos/router"
	"github.com/ardhiansyah/resto-pos/services"
	"github.com/ardhiansyah/resto-pos/utils"
	"gorm.io/gorm"
)

func init() {
	// Load .env di awal sebelum apapun
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

	// Simpan koneksi database untuk dipakai di tempat lain
	utils.InitDB(db)

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	// Seed setting jumlah meja saat pertama kali jalan
	if err := services.NewSettingsService(db).EnsureDefaults(); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed settings: %v", err)
	}

	// Rate limiter global per IP
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	r := router.SetupRouter(db)
	r.Use(rateLimiter.RateLimit())

	r.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Setting{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

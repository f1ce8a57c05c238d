package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/burnernzetohost/dariza-fabrics-sub000/config"
	paymentControllers "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/payment"
	shippingControllers "github.com/burnernzetohost/dariza-fabrics-sub000/controllers/shipping"
	"github.com/burnernzetohost/dariza-fabrics-sub000/models"
	"github.com/burnernzetohost/dariza-fabrics-sub000/routes"
)

func main() {
	log.Println("Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	db := initDatabase()

	if err := db.AutoMigrate(
		&models.User{},
		&models.VerificationToken{},
		&models.Product{},
		&models.UserCart{},
		&models.Order{},
		&models.HeroImage{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	config.InitRedis()

	pay, err := paymentControllers.NewHandlerFromEnv()
	if err != nil {
		log.Fatalf("payment gateway setup failed: %v", err)
	}
	quoter := shippingControllers.NewQuoterFromEnv()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.SetupRoutes(r, db, pay, quoter)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect DB: %v", err)
	}
	return db
}

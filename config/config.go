package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-api/auth"
	"restaurant-api/models"
)

var DB *gorm.DB

// JWTSecret signs tokens — read from env or fallback for local runs
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_api_dev_secret"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// TokenTTL returns the token validity window, 6 hours unless overridden.
func TokenTTL() time.Duration {
	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		if h, err := strconv.Atoi(v); err == nil && h > 0 {
			return time.Duration(h) * time.Hour
		}
	}
	return auth.DefaultTokenTTL
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(getEnv("DB_PATH", "restaurant.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Category{},
		&models.Food{},
		&models.Menu{},
		&models.OperatingHours{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
		&models.Delivery{},
		&models.Coupon{},
		&models.Review{},
		&models.InventoryItem{},
		&models.Worker{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	seedStaff()

	log.Println("Database connected and migrated")
}

// seedStaff creates the initial staff account from env, if configured and
// not already present. Staff accounts cannot be self-registered.
func seedStaff() {
	username := os.Getenv("SEED_STAFF_USERNAME")
	password := os.Getenv("SEED_STAFF_PASSWORD")
	if username == "" || password == "" {
		return
	}

	var existing models.User
	if err := DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Println("Failed to hash seed staff password:", err)
		return
	}
	user := models.User{Username: username, Password: hash, Role: models.RoleStaff}
	if err := DB.Create(&user).Error; err != nil {
		log.Println("Failed to seed staff user:", err)
		return
	}
	log.Printf("Seeded staff user %q", username)
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-api/auth"
	"restaurant-api/config"
	"restaurant-api/models"
	"restaurant-api/routes"
)

// setupServer wires the real routes against a fresh in-memory database and
// a test signing secret.
func setupServer(t *testing.T) (*gin.Engine, *auth.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
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
	))
	config.DB = db

	ts := auth.NewTokenService([]byte("handler-test-secret"), time.Hour)
	r := gin.New()
	routes.SetupRoutes(r, ts)
	return r, ts
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func seedUser(t *testing.T, username, password string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := models.User{Username: username, Password: hash, Role: role}
	require.NoError(t, config.DB.Create(&user).Error)
	return &user
}

func tokenFor(t *testing.T, ts *auth.TokenService, user *models.User) string {
	t.Helper()
	token, err := ts.Issue(user.ID, user.Username, user.Role)
	require.NoError(t, err)
	return token
}

func seedOrderWithItems(t *testing.T, userID uint, status models.OrderStatus) *models.Order {
	t.Helper()
	restaurant := models.Restaurant{Name: "Downtown Grill"}
	require.NoError(t, config.DB.Create(&restaurant).Error)
	category := models.Category{Name: "Mains"}
	require.NoError(t, config.DB.Create(&category).Error)
	food := models.Food{Name: "Burger", RestaurantID: restaurant.ID, CategoryID: category.ID, Price: 9.5}
	require.NoError(t, config.DB.Create(&food).Error)

	order := models.Order{
		UserID:   userID,
		Date:     time.Now(),
		Location: "5th street",
		Status:   status,
		Items: []models.OrderItem{
			{FoodID: food.ID, Quantity: 2, Price: 9.5},
			{FoodID: food.ID, Quantity: 1, Price: 4.0},
		},
	}
	require.NoError(t, config.DB.Create(&order).Error)
	return &order
}

func historyCount(t *testing.T, orderID uint) int64 {
	t.Helper()
	var n int64
	require.NoError(t, config.DB.Model(&models.OrderStatusHistory{}).Where("order_id = ?", orderID).Count(&n).Error)
	return n
}

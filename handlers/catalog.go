package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
)

// ── Coupons ────────────────────────────────────────────────────────

type CreateCouponRequest struct {
	Code       string    `json:"code"`
	Discount   float64   `json:"discount" binding:"required,gt=0,lte=100"`
	ValidFrom  time.Time `json:"valid_from"`
	ValidUntil time.Time `json:"valid_until"`
}

// CreateCoupon creates a coupon; codes are generated when not supplied.
func CreateCoupon(c *gin.Context) {
	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code := req.Code
	if code == "" {
		code = strings.ToUpper(uuid.NewString()[:8])
	}
	coupon := models.Coupon{
		Code:       code,
		Discount:   req.Discount,
		ValidFrom:  req.ValidFrom,
		ValidUntil: req.ValidUntil,
		IsActive:   true,
	}
	if err := config.DB.Create(&coupon).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon code already exists"})
		return
	}
	c.JSON(http.StatusCreated, coupon)
}

func ListCoupons(c *gin.Context) {
	query := config.DB.Order("created_at desc")
	if c.Query("active") == "true" {
		now := time.Now()
		query = query.Where("is_active = ? AND valid_from <= ? AND valid_until >= ?", true, now, now)
	}
	var coupons []models.Coupon
	query.Find(&coupons)
	c.JSON(http.StatusOK, gin.H{"count": len(coupons), "results": coupons})
}

func GetCoupon(c *gin.Context) {
	var coupon models.Coupon
	if err := config.DB.First(&coupon, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}
	c.JSON(http.StatusOK, coupon)
}

// DeactivateCoupon turns a coupon off; coupons are never hard-deleted.
func DeactivateCoupon(c *gin.Context) {
	var coupon models.Coupon
	if err := config.DB.First(&coupon, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}
	config.DB.Model(&coupon).Update("is_active", false)
	c.JSON(http.StatusOK, gin.H{"id": coupon.ID, "is_active": false})
}

// ── Reviews ────────────────────────────────────────────────────────

type CreateReviewRequest struct {
	FoodID  uint   `json:"food_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateReview records a review by the authenticated user.
func CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var food models.Food
	if err := config.DB.First(&food, req.FoodID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	review := models.Review{
		UserID:  middleware.GetUserID(c),
		FoodID:  req.FoodID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, review)
}

func ListReviews(c *gin.Context) {
	query := config.DB.Preload("User").Preload("Food").Order("created_at desc")
	if fid := c.Query("food_id"); fid != "" {
		query = query.Where("food_id = ?", fid)
	}
	var reviews []models.Review
	query.Find(&reviews)
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "results": reviews})
}

func GetReview(c *gin.Context) {
	var review models.Review
	if err := config.DB.Preload("User").Preload("Food").First(&review, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	c.JSON(http.StatusOK, review)
}

// ── Inventory ──────────────────────────────────────────────────────

type InventoryItemRequest struct {
	RestaurantID uint    `json:"restaurant_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
}

func CreateInventoryItem(c *gin.Context) {
	var req InventoryItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := models.InventoryItem{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
	}
	if err := config.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func ListInventory(c *gin.Context) {
	query := config.DB.Order("name")
	if rid := c.Query("restaurant_id"); rid != "" {
		query = query.Where("restaurant_id = ?", rid)
	}
	var items []models.InventoryItem
	query.Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "results": items})
}

type UpdateInventoryRequest struct {
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
}

func UpdateInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		return
	}
	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	config.DB.Save(&item)
	c.JSON(http.StatusOK, item)
}

// ── Workers ────────────────────────────────────────────────────────

type WorkerRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Position     string `json:"position"`
}

func CreateWorker(c *gin.Context) {
	var req WorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	worker := models.Worker{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Phone:        req.Phone,
		Position:     req.Position,
	}
	if err := config.DB.Create(&worker).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create worker"})
		return
	}
	c.JSON(http.StatusCreated, worker)
}

func ListWorkers(c *gin.Context) {
	query := config.DB.Order("name")
	if rid := c.Query("restaurant_id"); rid != "" {
		query = query.Where("restaurant_id = ?", rid)
	}
	var workers []models.Worker
	query.Find(&workers)
	c.JSON(http.StatusOK, gin.H{"count": len(workers), "results": workers})
}

func GetWorker(c *gin.Context) {
	var worker models.Worker
	if err := config.DB.First(&worker, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}
	c.JSON(http.StatusOK, worker)
}

// ── Operating hours ────────────────────────────────────────────────

type OperatingHoursRequest struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	OpenTime  string `json:"open_time" binding:"required"`
	CloseTime string `json:"close_time" binding:"required"`
}

// SetOperatingHours upserts one weekday's hours for a restaurant.
func SetOperatingHours(c *gin.Context) {
	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var req OperatingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var hours models.OperatingHours
	err := config.DB.Where("restaurant_id = ? AND weekday = ?", restaurant.ID, req.Weekday).First(&hours).Error
	if err != nil {
		hours = models.OperatingHours{RestaurantID: restaurant.ID, Weekday: req.Weekday}
	}
	hours.OpenTime = req.OpenTime
	hours.CloseTime = req.CloseTime
	if err := config.DB.Save(&hours).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save operating hours"})
		return
	}
	c.JSON(http.StatusOK, hours)
}

func ListOperatingHours(c *gin.Context) {
	var hours []models.OperatingHours
	config.DB.Where("restaurant_id = ?", c.Param("id")).Order("weekday").Find(&hours)
	c.JSON(http.StatusOK, gin.H{"results": hours})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-api/config"
	"restaurant-api/models"
)

// ListMenu returns menu items with optional filters: restaurant_id,
// category_id, is_available, search.
func ListMenu(c *gin.Context) {
	query := config.DB.Preload("Restaurant").Preload("Category")

	if rid := c.Query("restaurant_id"); rid != "" {
		query = query.Where("restaurant_id = ?", rid)
	}
	if cid := c.Query("category_id"); cid != "" {
		query = query.Where("category_id = ?", cid)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if avail := c.Query("is_available"); avail != "" {
		want := avail == "true"
		sub := config.DB.Model(&models.Menu{}).Select("food_id").Where("is_available = ?", true)
		if want {
			query = query.Where("id IN (?)", sub)
		} else {
			query = query.Where("id NOT IN (?)", sub)
		}
	}

	var foods []models.Food
	query.Find(&foods)

	results := make([]gin.H, 0, len(foods))
	for _, f := range foods {
		results = append(results, foodResponse(&f, nil))
	}
	c.JSON(http.StatusOK, gin.H{"count": len(results), "results": results})
}

func foodResponse(f *models.Food, menu *models.Menu) gin.H {
	resp := gin.H{
		"foodID":      f.ID,
		"foodName":    f.Name,
		"restaurant":  gin.H{"id": f.Restaurant.ID, "name": f.Restaurant.Name},
		"category":    gin.H{"id": f.Category.ID, "name": f.Category.Name},
		"price":       f.Price,
		"description": f.Description,
		"image":       f.Image,
	}
	if menu != nil {
		resp["is_available"] = menu.IsAvailable
	}
	return resp
}

// GetMenuItem returns one menu item with availability.
func GetMenuItem(c *gin.Context) {
	var food models.Food
	if err := config.DB.Preload("Restaurant").Preload("Category").First(&food, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	var menu models.Menu
	available := true
	if err := config.DB.Where("food_id = ?", food.ID).First(&menu).Error; err == nil {
		available = menu.IsAvailable
	}
	resp := foodResponse(&food, nil)
	resp["is_available"] = available
	c.JSON(http.StatusOK, resp)
}

type CreateMenuItemRequest struct {
	Name         string  `json:"name" binding:"required"`
	RestaurantID uint    `json:"restaurant_id" binding:"required"`
	CategoryID   uint    `json:"category_id" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	IsAvailable  *bool   `json:"is_available"`
}

// CreateMenuItem adds a food and its menu availability row (staff only).
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := config.DB.First(&restaurant, req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	var category models.Category
	if err := config.DB.First(&category, req.CategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	food := models.Food{
		Name:         req.Name,
		RestaurantID: req.RestaurantID,
		CategoryID:   req.CategoryID,
		Price:        req.Price,
		Description:  req.Description,
		Image:        req.Image,
	}
	if err := config.DB.Create(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	menu := models.Menu{
		FoodID:       food.ID,
		RestaurantID: req.RestaurantID,
		CategoryID:   req.CategoryID,
		IsAvailable:  available,
	}
	config.DB.Create(&menu)

	c.JSON(http.StatusCreated, gin.H{"foodID": food.ID, "foodName": food.Name})
}

type UpdateMenuItemRequest struct {
	Name         *string  `json:"name"`
	Price        *float64 `json:"price"`
	Description  *string  `json:"description"`
	Image        *string  `json:"image"`
	RestaurantID *uint    `json:"restaurant_id"`
	CategoryID   *uint    `json:"category_id"`
	IsAvailable  *bool    `json:"is_available"`
}

// UpdateMenuItem modifies a food and its availability (staff only).
func UpdateMenuItem(c *gin.Context) {
	var food models.Food
	if err := config.DB.First(&food, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Name != nil {
		food.Name = *req.Name
	}
	if req.Price != nil {
		food.Price = *req.Price
	}
	if req.Description != nil {
		food.Description = *req.Description
	}
	if req.Image != nil {
		food.Image = *req.Image
	}
	if req.RestaurantID != nil {
		var restaurant models.Restaurant
		if err := config.DB.First(&restaurant, *req.RestaurantID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
			return
		}
		food.RestaurantID = *req.RestaurantID
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := config.DB.First(&category, *req.CategoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		food.CategoryID = *req.CategoryID
	}
	if err := config.DB.Save(&food).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}

	if req.IsAvailable != nil {
		var menu models.Menu
		if err := config.DB.Where("food_id = ?", food.ID).First(&menu).Error; err == nil {
			menu.IsAvailable = *req.IsAvailable
			config.DB.Save(&menu)
		} else {
			config.DB.Create(&models.Menu{
				FoodID:       food.ID,
				RestaurantID: food.RestaurantID,
				CategoryID:   food.CategoryID,
				IsAvailable:  *req.IsAvailable,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{"foodID": food.ID, "foodName": food.Name})
}

// DeleteMenuItem removes a food and its menu rows (staff only).
func DeleteMenuItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu item id"})
		return
	}
	var food models.Food
	if err := config.DB.First(&food, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	config.DB.Where("food_id = ?", food.ID).Delete(&models.Menu{})
	config.DB.Delete(&food)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-api/config"
	"restaurant-api/models"
)

// Dashboard returns order and menu counts for the staff landing page.
func Dashboard(c *gin.Context) {
	var totalOrders, pendingOrders, approvedOrders, totalFoods int64
	config.DB.Model(&models.Order{}).Count(&totalOrders)
	config.DB.Model(&models.Order{}).Where("status = ?", models.StatusPending).Count(&pendingOrders)
	config.DB.Model(&models.Order{}).Where("status = ?", models.StatusApproved).Count(&approvedOrders)
	config.DB.Model(&models.Food{}).Count(&totalFoods)

	c.JSON(http.StatusOK, gin.H{
		"total_orders":    totalOrders,
		"pending_orders":  pendingOrders,
		"approved_orders": approvedOrders,
		"total_foods":     totalFoods,
	})
}

// RevenueReport sums delivered-order totals, optionally bounded by
// date_from/date_to query parameters.
func RevenueReport(c *gin.Context) {
	query := config.DB.Preload("Items").Where("status = ?", models.StatusDelivered)
	if from := c.Query("date_from"); from != "" {
		query = query.Where("date >= ?", from)
	}
	if to := c.Query("date_to"); to != "" {
		query = query.Where("date <= ?", to)
	}

	var orders []models.Order
	query.Find(&orders)

	var revenue float64
	for i := range orders {
		revenue += orders[i].TotalPrice()
	}

	c.JSON(http.StatusOK, gin.H{
		"delivered_orders": len(orders),
		"total_revenue":    revenue,
	})
}

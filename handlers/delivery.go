package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-api/config"
	"restaurant-api/models"
)

// ListDeliveries returns deliveries, optionally filtered by status or
// worker_id. Drivers see their own assignments; staff see everything.
func ListDeliveries(c *gin.Context) {
	query := config.DB.Preload("Order").Preload("Worker")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if wid := c.Query("worker_id"); wid != "" {
		query = query.Where("worker_id = ?", wid)
	}

	var deliveries []models.Delivery
	query.Order("created_at desc").Find(&deliveries)
	c.JSON(http.StatusOK, gin.H{"count": len(deliveries), "results": deliveries})
}

// GetDelivery returns one delivery with its order and worker.
func GetDelivery(c *gin.Context) {
	var delivery models.Delivery
	if err := config.DB.Preload("Order.Items.Food").Preload("Worker").First(&delivery, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
		return
	}
	c.JSON(http.StatusOK, delivery)
}

type AssignDeliveryRequest struct {
	OrderID  uint `json:"order_id" binding:"required"`
	WorkerID uint `json:"worker_id" binding:"required"`
}

// AssignDelivery binds an order to a worker. One delivery per order; a
// second assignment for the same order is rejected.
func AssignDelivery(c *gin.Context) {
	var req AssignDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := config.DB.First(&order, req.OrderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	var worker models.User
	if err := config.DB.First(&worker, req.WorkerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Worker not found"})
		return
	}

	var existing models.Delivery
	if err := config.DB.Where("order_id = ?", req.OrderID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order already has a delivery"})
		return
	}

	delivery := models.Delivery{
		OrderID:  req.OrderID,
		WorkerID: req.WorkerID,
		Status:   models.DeliveryPending,
	}
	if err := config.DB.Create(&delivery).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create delivery"})
		return
	}
	c.JSON(http.StatusCreated, delivery)
}

type UpdateDeliveryRequest struct {
	Status models.DeliveryStatus `json:"status" binding:"required"`
}

// UpdateDelivery moves a delivery through its own state machine. Start and
// end times are stamped when the delivery leaves pending and when it
// terminates. Independent of the order's status by design decision.
func UpdateDelivery(c *gin.Context) {
	var delivery models.Delivery
	if err := config.DB.First(&delivery, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Delivery not found"})
		return
	}

	var req UpdateDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidDeliveryStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery status"})
		return
	}

	now := time.Now()
	old := delivery.Status
	delivery.Status = req.Status
	if req.Status == models.DeliveryOnTheWay && delivery.StartedAt == nil {
		delivery.StartedAt = &now
	}
	if (req.Status == models.DeliveryDelivered || req.Status == models.DeliveryCancelled) && delivery.EndedAt == nil {
		delivery.EndedAt = &now
	}
	if err := config.DB.Save(&delivery).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         delivery.ID,
		"old_status": old,
		"new_status": delivery.Status,
	})
}

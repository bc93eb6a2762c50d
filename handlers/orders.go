package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"restaurant-api/config"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/statemachine"
)

// orderIDParam parses the :id route parameter.
func orderIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}

// ListOrders returns all orders with optional filters (staff only).
func ListOrders(c *gin.Context) {
	query := config.DB.Preload("Items.Food").Preload("User")

	if status := c.Query("status"); status != "" {
		query = query.Where("orders.status = ?", status)
	}
	if rid := c.Query("restaurant_id"); rid != "" {
		query = query.
			Joins("JOIN order_items ON order_items.order_id = orders.id").
			Joins("JOIN foods ON foods.id = order_items.food_id").
			Where("foods.restaurant_id = ?", rid).
			Distinct("orders.*")
	}
	if from := c.Query("date_from"); from != "" {
		query = query.Where("orders.date >= ?", from)
	}
	if to := c.Query("date_to"); to != "" {
		query = query.Where("orders.date <= ?", to)
	}

	var orders []models.Order
	query.Order("orders.date desc, orders.id desc").Find(&orders)

	results := make([]gin.H, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		results = append(results, gin.H{
			"orderID":     o.ID,
			"user":        gin.H{"id": o.User.ID, "username": o.User.Username, "email": o.User.Email, "phone": o.User.Phone},
			"date":        o.Date,
			"location":    o.Location,
			"status":      o.Status,
			"total_price": o.TotalPrice(),
			"items_count": len(o.Items),
		})
	}

	c.JSON(http.StatusOK, gin.H{"count": len(results), "results": results})
}

// GetOrder returns one order with items, derived total and status history,
// history newest-first.
func GetOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var order models.Order
	err := config.DB.
		Preload("Items.Food").
		Preload("User").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at desc, id desc")
		}).
		First(&order, id).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	items := make([]gin.H, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, gin.H{
			"id":         it.ID,
			"food":       gin.H{"id": it.Food.ID, "name": it.Food.Name, "price": it.Food.Price, "image": it.Food.Image},
			"quantity":   it.Quantity,
			"unit_price": it.Price,
			"total":      it.Price * float64(it.Quantity),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"orderID":        order.ID,
		"user":           gin.H{"id": order.User.ID, "username": order.User.Username, "email": order.User.Email, "phone": order.User.Phone},
		"date":           order.Date,
		"location":       order.Location,
		"status":         order.Status,
		"items":          items,
		"total_price":    order.TotalPrice(),
		"status_history": order.StatusHistory,
	})
}

type UpdateOrderStatusRequest struct {
	Status    models.OrderStatus `json:"status" binding:"required"`
	Notes     string             `json:"notes"`
	UpdatedBy string             `json:"updated_by"`
}

// transitionActor resolves who gets recorded in history: the explicit
// updated_by from the request, else the authenticated username, else
// "system".
func transitionActor(c *gin.Context, requested string) string {
	if requested != "" {
		return requested
	}
	if username := middleware.GetUsername(c); username != "" {
		return username
	}
	return statemachine.SystemActor
}

func transitionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, statemachine.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, statemachine.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Valid statuses: " + statusList()})
	case errors.Is(err, statemachine.ErrIllegalTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cancelled order cannot be approved"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
	}
}

func statusList() string {
	s := ""
	for i, st := range statemachine.Statuses() {
		if i > 0 {
			s += ", "
		}
		s += string(st)
	}
	return s
}

// UpdateOrderStatus applies a status transition to an order (staff only).
func UpdateOrderStatus(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := statemachine.Transition(config.DB, id, req.Status, req.Notes, transitionActor(c, req.UpdatedBy))
	if err != nil {
		transitionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orderID":    res.OrderID,
		"old_status": res.OldStatus,
		"new_status": res.NewStatus,
	})
}

type ApproveOrderRequest struct {
	Notes     string `json:"notes"`
	UpdatedBy string `json:"updated_by"`
}

// ApproveOrder forces an order to approved (staff only). Approving an
// already-approved order is an accepted no-op.
func ApproveOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req ApproveOrderRequest
	// body is optional for approve
	_ = c.ShouldBindJSON(&req)

	res, err := statemachine.Approve(config.DB, id, req.Notes, transitionActor(c, req.UpdatedBy))
	if err != nil {
		transitionError(c, err)
		return
	}

	if res.NoOp {
		c.JSON(http.StatusOK, gin.H{"orderID": res.OrderID, "status": res.NewStatus, "message": "Order already approved"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orderID":    res.OrderID,
		"old_status": res.OldStatus,
		"new_status": res.NewStatus,
	})
}

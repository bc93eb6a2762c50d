package models

import "time"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusApproved  OrderStatus = "approved"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

type Order struct {
	ID            uint                 `json:"orderID" gorm:"primaryKey"`
	UserID        uint                 `json:"user_id" gorm:"not null"`
	User          User                 `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Date          time.Time            `json:"date"`
	Location      string               `json:"location"`
	Status        OrderStatus          `json:"status" gorm:"not null;default:'pending'"`
	Items         []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// TotalPrice derives the order total from its loaded items.
func (o *Order) TotalPrice() float64 {
	var total float64
	for _, it := range o.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null"`
	FoodID   uint    `json:"food_id" gorm:"not null"`
	Food     Food    `json:"food,omitempty" gorm:"foreignKey:FoodID"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"unit_price" gorm:"not null"` // snapshot price at time of order
}

// OrderStatusHistory is the append-only audit trail of status changes.
// Rows are written once per transition and never updated or deleted.
type OrderStatusHistory struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	OrderID   uint        `json:"order_id" gorm:"not null"`
	Status    OrderStatus `json:"status" gorm:"not null"`
	Notes     string      `json:"notes"`
	UpdatedBy string      `json:"updated_by"` // username that applied it, or "system"
	CreatedAt time.Time   `json:"created_at"`
}

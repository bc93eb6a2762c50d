package models

import "time"

// DeliveryStatus is tracked separately from OrderStatus. The two state
// machines are independent; nothing cross-validates them.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryOnTheWay  DeliveryStatus = "on_the_way"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryCancelled DeliveryStatus = "cancelled"
)

// ValidDeliveryStatuses enumerates the accepted delivery states.
var ValidDeliveryStatuses = map[DeliveryStatus]bool{
	DeliveryPending:   true,
	DeliveryOnTheWay:  true,
	DeliveryDelivered: true,
	DeliveryCancelled: true,
}

type Delivery struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	OrderID   uint           `json:"order_id" gorm:"uniqueIndex;not null"`
	Order     Order          `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	WorkerID  uint           `json:"worker_id" gorm:"not null"`
	Worker    User           `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	Status    DeliveryStatus `json:"status" gorm:"not null;default:'pending'"`
	StartedAt *time.Time     `json:"started_at"`
	EndedAt   *time.Time     `json:"ended_at"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

package models

import "time"

type Restaurant struct {
	ID             uint             `json:"id" gorm:"primaryKey"`
	Name           string           `json:"name" gorm:"not null"`
	Address        string           `json:"address"`
	Phone          string           `json:"phone"`
	Foods          []Food           `json:"foods,omitempty" gorm:"foreignKey:RestaurantID"`
	OperatingHours []OperatingHours `json:"operating_hours,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

type Food struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null"`
	Restaurant   Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	CategoryID   uint       `json:"category_id" gorm:"not null"`
	Category     Category   `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Price        float64    `json:"price" gorm:"not null"`
	Description  string     `json:"description"`
	Image        string     `json:"image"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Menu carries per-restaurant availability of a food item.
type Menu struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FoodID       uint      `json:"food_id" gorm:"not null"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null"`
	CategoryID   uint      `json:"category_id" gorm:"not null"`
	IsAvailable  bool      `json:"is_available" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type OperatingHours struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	RestaurantID uint   `json:"restaurant_id" gorm:"not null"`
	Weekday      int    `json:"weekday" gorm:"not null"` // 0 = Sunday
	OpenTime     string `json:"open_time"`               // "HH:MM"
	CloseTime    string `json:"close_time"`
}

type Coupon struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Code       string    `json:"code" gorm:"uniqueIndex;not null"`
	Discount   float64   `json:"discount" gorm:"not null"` // percent off
	ValidFrom  time.Time `json:"valid_from"`
	ValidUntil time.Time `json:"valid_until"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
}

type Review struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	FoodID    uint      `json:"food_id" gorm:"not null"`
	Food      Food      `json:"food,omitempty" gorm:"foreignKey:FoodID"`
	Rating    int       `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type InventoryItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Worker is a restaurant staff roster entry, distinct from a User account.
type Worker struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null"`
	Name         string    `json:"name" gorm:"not null"`
	Phone        string    `json:"phone"`
	Position     string    `json:"position"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package models

import "time"

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleDriver   UserRole = "driver"
	RoleStaff    UserRole = "staff"
)

// RegistrationRoles is the allow-list for self-service registration.
// Staff accounts are provisioned separately (seed or an existing staff user).
var RegistrationRoles = map[UserRole]bool{
	RoleCustomer: true,
	RoleDriver:   true,
}

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	// Password holds either a bcrypt hash or, for legacy rows, the
	// original cleartext. The auth package decides which and migrates
	// cleartext rows on first successful login.
	Password  string    `json:"-" gorm:"not null"`
	Role      UserRole  `json:"role" gorm:"default:'customer'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

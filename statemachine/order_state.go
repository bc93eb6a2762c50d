package statemachine

import (
	"errors"

	"gorm.io/gorm"

	"restaurant-api/models"
)

// SystemActor is recorded in history when no identity applied a transition.
const SystemActor = "system"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrIllegalTransition = errors.New("cancelled order cannot be approved")
)

// validStatuses is the fixed status enumeration. Transitions between known
// statuses are deliberately permissive: the only enforced guard is that a
// cancelled order cannot be re-approved. Backward moves and skips are legal.
var validStatuses = map[models.OrderStatus]bool{
	models.StatusPending:   true,
	models.StatusApproved:  true,
	models.StatusPreparing: true,
	models.StatusReady:     true,
	models.StatusDelivered: true,
	models.StatusCancelled: true,
}

// IsValidStatus reports whether s is a member of the status enumeration.
func IsValidStatus(s models.OrderStatus) bool {
	return validStatuses[s]
}

// Statuses returns the enumeration in lifecycle order.
func Statuses() []models.OrderStatus {
	return []models.OrderStatus{
		models.StatusPending,
		models.StatusApproved,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusDelivered,
		models.StatusCancelled,
	}
}

// Result describes an applied (or no-op) transition.
type Result struct {
	OrderID   uint
	OldStatus models.OrderStatus
	NewStatus models.OrderStatus
	// NoOp is true when the order was already in the requested terminal
	// shape and nothing was written (the idempotent approve case).
	NoOp bool
}

func guard(current, next models.OrderStatus) error {
	if current == models.StatusCancelled && next == models.StatusApproved {
		return ErrIllegalTransition
	}
	return nil
}

// apply updates the order's status and appends one history row. Both writes
// commit together or not at all; concurrent transitions on the same order
// serialize at the store.
func apply(tx *gorm.DB, order *models.Order, next models.OrderStatus, notes, actor string) error {
	if err := tx.Model(order).Update("status", next).Error; err != nil {
		return err
	}
	history := models.OrderStatusHistory{
		OrderID:   order.ID,
		Status:    next,
		Notes:     notes,
		UpdatedBy: actor,
	}
	return tx.Create(&history).Error
}

// Transition moves an order to newStatus and records the change. Unknown
// statuses are rejected before anything is read; the cancelled→approved
// guard is checked against the current row inside the transaction. actor
// defaults to SystemActor when empty.
func Transition(db *gorm.DB, orderID uint, newStatus models.OrderStatus, notes, actor string) (*Result, error) {
	if !IsValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}
	if actor == "" {
		actor = SystemActor
	}

	var res *Result
	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if err := guard(order.Status, newStatus); err != nil {
			return err
		}
		old := order.Status
		if err := apply(tx, &order, newStatus, notes, actor); err != nil {
			return err
		}
		res = &Result{OrderID: order.ID, OldStatus: old, NewStatus: newStatus}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Approve forces an order to approved. Re-approving an already-approved
// order is an accepted no-op: no status write, no history row. Approving a
// cancelled order is rejected.
func Approve(db *gorm.DB, orderID uint, notes, actor string) (*Result, error) {
	if actor == "" {
		actor = SystemActor
	}
	if notes == "" {
		notes = "Order approved"
	}

	var res *Result
	err := db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if order.Status == models.StatusApproved {
			res = &Result{OrderID: order.ID, OldStatus: order.Status, NewStatus: order.Status, NoOp: true}
			return nil
		}
		if order.Status == models.StatusCancelled {
			return ErrIllegalTransition
		}
		old := order.Status
		if err := apply(tx, &order, models.StatusApproved, notes, actor); err != nil {
			return err
		}
		res = &Result{OrderID: order.ID, OldStatus: old, NewStatus: models.StatusApproved}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

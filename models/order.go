package models

import (
	"errors"
	"time"
)

// Order lifecycle states. Every order starts as Requested; Approved and
// Rejected are terminal.
const (
	StateRequested = "Requested"
	StateApproved  = "Approved"
	StateRejected  = "Rejected"
)

// Decision tokens accepted by the transition endpoint.
const (
	DecisionApprove = "1"
	DecisionReject  = "0"
)

var (
	// ErrUnknownDecision is returned for a decision token other than "1" or "0".
	ErrUnknownDecision = errors.New("unknown decision, use 1 to approve or 0 to reject")

	// ErrOrderClosed is returned when transitioning an order that already
	// reached a terminal state.
	ErrOrderClosed = errors.New("order already approved or rejected")
)

// Order represents a customer's request for a batch of cut pieces
type Order struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer_id"`
	Customer   Customer  `gorm:"foreignKey:CustomerID" json:"customer"`
	Date       time.Time `gorm:"type:date;not null" json:"date"`
	State      string    `gorm:"not null;default:'Requested'" json:"state"`
	Items      []Item    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ParseDecision maps a path token to the target state it stands for.
func ParseDecision(token string) (string, error) {
	switch token {
	case DecisionApprove:
		return StateApproved, nil
	case DecisionReject:
		return StateRejected, nil
	default:
		return "", ErrUnknownDecision
	}
}

// Transition moves the order into the given terminal state. Only orders
// still in the Requested state may transition.
func (o *Order) Transition(state string) error {
	if o.State != StateRequested {
		return ErrOrderClosed
	}
	if state != StateApproved && state != StateRejected {
		return ErrUnknownDecision
	}
	o.State = state
	return nil
}

// AcceptsItems reports whether new items may still be attached to the order.
func (o *Order) AcceptsItems() bool {
	return o.State == StateRequested
}

package models

import "time"

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderTransitions encodes the legal status transitions. Delivered and
// cancelled are terminal; cancellation is reachable from every other state.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// IsValid reports whether s is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is a legal
// transition of the order state machine.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CustomerInfo is the customer block embedded in an order. It has no
// lifecycle of its own.
type CustomerInfo struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,min=1"`
	Address string `json:"address" validate:"required,min=5"`
}

// OrderItem is a denormalized snapshot of a pet taken at order-creation
// time, so later inventory changes never alter historical orders.
type OrderItem struct {
	ID      uint    `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID string  `json:"-" gorm:"index;type:varchar(16)"`
	PetID   string  `json:"pet_id"`
	PetName string  `json:"pet_name"`
	Price   float64 `json:"price"`
}

// Order represents a customer order. TotalAmount is the sum of the item
// prices at creation time and is never recomputed. Orders are never
// deleted; they only move through the status state machine.
type Order struct {
	ID          string       `json:"id" gorm:"primaryKey;type:varchar(16)"`
	Customer    CustomerInfo `json:"customer" gorm:"embedded;embeddedPrefix:customer_"`
	Items       []OrderItem  `json:"items" gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount float64      `json:"total_amount"`
	Status      OrderStatus  `json:"status" gorm:"type:varchar(16)"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

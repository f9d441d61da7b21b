package model

import "time"

// CartItemStatus describes the lifecycle of a cart line item.
type CartItemStatus string

const (
	CartItemStatusPending CartItemStatus = "pending"
	CartItemStatusOrdered CartItemStatus = "ordered"
)

// CartItem is a priced meal selection owned by a user, destroyed either
// individually or in bulk when the cart is settled.
type CartItem struct {
	ID        CartItemID
	Email     string
	MealID    MealID
	Title     string
	Price     float64
	Status    CartItemStatus
	CreatedAt time.Time
}

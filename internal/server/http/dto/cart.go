package dto

import "time"

// CartItemRequest describes a meal selection added to the cart.
type CartItemRequest struct {
	MealID int64   `json:"meal_id"`
	Title  string  `json:"title"`
	Price  float64 `json:"price"`
}

// CartItemResponse is the public shape of a cart line item.
type CartItemResponse struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	MealID    int64     `json:"meal_id"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

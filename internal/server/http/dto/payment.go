package dto

import "time"

// IntentRequest asks the payment gateway to prepare a charge.
type IntentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
}

// IntentResponse returns the gateway's client secret for the charge.
type IntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// SettlementRequest records a completed payment and empties the cart.
type SettlementRequest struct {
	Amount      float64 `json:"amount"`
	CartItemIDs []int64 `json:"cart_item_ids"`
}

// SettlementResponse reports both halves of the settlement.
type SettlementResponse struct {
	PaymentID    int64 `json:"payment_id"`
	DeletedCount int64 `json:"deleted_count"`
}

// PaymentResponse is the public shape of a settled payment record.
type PaymentResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Amount      float64   `json:"amount"`
	CartItemIDs []int64   `json:"cart_item_ids"`
	CreatedAt   time.Time `json:"created_at"`
}

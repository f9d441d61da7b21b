package model

import "time"

// Payment is the permanent record of a settled cart. CartItemIDs captures
// the exact line items the payment covered; the record is immutable once
// created.
type Payment struct {
	ID          PaymentID
	Email       string
	Amount      float64
	CartItemIDs []CartItemID
	CreatedAt   time.Time
}

// SettlementResult reports both halves of a settlement so callers can
// observe a partially applied one (payment recorded, items not yet removed).
type SettlementResult struct {
	PaymentID    PaymentID
	DeletedCount int64
}

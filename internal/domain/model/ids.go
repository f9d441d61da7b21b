package model

// Dedicated identifier types per entity kind so a meal id cannot be passed
// where a cart item id is expected.
type (
	UserID       int64
	MealID       int64
	ReviewID     int64
	MembershipID int64
	CartItemID   int64
	PaymentID    int64
)

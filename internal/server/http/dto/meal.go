package dto

import "time"

// MealRequest describes the payload for creating a catalog dish.
type MealRequest struct {
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Details  string  `json:"details,omitempty"`
}

// MealResponse is the public shape of a catalog dish.
type MealResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Rating    float64   `json:"rating"`
	Likes     int64     `json:"likes"`
	Image     string    `json:"image,omitempty"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LikeResponse returns the updated like counter for a meal.
type LikeResponse struct {
	Likes int64 `json:"likes"`
}

// ReviewRequest describes the payload for posting meal feedback.
type ReviewRequest struct {
	MealID  int64   `json:"meal_id"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment,omitempty"`
}

// ReviewResponse is the public shape of meal feedback.
type ReviewResponse struct {
	ID        int64     `json:"id"`
	MealID    int64     `json:"meal_id"`
	Email     string    `json:"email"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MembershipResponse is the public shape of a subscription tier.
type MembershipResponse struct {
	ID    int64    `json:"id"`
	Tier  string   `json:"tier"`
	Price float64  `json:"price"`
	Perks []string `json:"perks,omitempty"`
}

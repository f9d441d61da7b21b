package model

import "time"

// Review is user feedback attached to a meal.
type Review struct {
	ID        ReviewID
	MealID    MealID
	Email     string
	Rating    float64
	Comment   string
	CreatedAt time.Time
}

package model

import "time"

// Meal describes a dish offered by the dormitory dining service.
type Meal struct {
	ID        MealID
	Title     string
	Category  string
	Price     float64
	Rating    float64
	Likes     int64
	Image     string
	Details   string
	CreatedAt time.Time
}

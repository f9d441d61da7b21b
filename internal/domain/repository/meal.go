package repository

import (
	"context"

	"github.com/dormdine/dormdine/internal/domain/model"
)

// MealRepository describes persistence operations for the meal catalog.
type MealRepository interface {
	Create(ctx context.Context, meal *model.Meal) (*model.Meal, error)
	GetByID(ctx context.Context, id model.MealID) (*model.Meal, error)
	List(ctx context.Context) ([]model.Meal, error)
	Delete(ctx context.Context, id model.MealID) error
	IncrementLikes(ctx context.Context, id model.MealID) (int64, error)
}

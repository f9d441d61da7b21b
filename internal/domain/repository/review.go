package repository

import (
	"context"

	"github.com/dormdine/dormdine/internal/domain/model"
)

// ReviewRepository provides access to meal reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.Review, error)
	List(ctx context.Context) ([]model.Review, error)
	ListByMeal(ctx context.Context, mealID model.MealID) ([]model.Review, error)
}

package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/dormdine/dormdine/internal/domain/errors"
	"github.com/dormdine/dormdine/internal/domain/model"
	"github.com/dormdine/dormdine/internal/domain/repository"
)

// CatalogUseCase covers the meal catalog, reviews, and membership tiers.
type CatalogUseCase struct {
	meals       repository.MealRepository
	reviews     repository.ReviewRepository
	memberships repository.MembershipRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(meals repository.MealRepository, reviews repository.ReviewRepository, memberships repository.MembershipRepository) *CatalogUseCase {
	return &CatalogUseCase{meals: meals, reviews: reviews, memberships: memberships}
}

// ListMeals returns the full catalog.
func (u *CatalogUseCase) ListMeals(ctx context.Context) ([]model.Meal, error) {
	return u.meals.List(ctx)
}

// GetMeal fetches a single meal.
func (u *CatalogUseCase) GetMeal(ctx context.Context, id model.MealID) (*model.Meal, error) {
	return u.meals.GetByID(ctx, id)
}

// CreateMeal adds a dish to the catalog.
func (u *CatalogUseCase) CreateMeal(ctx context.Context, meal *model.Meal) (*model.Meal, error) {
	if strings.TrimSpace(meal.Title) == "" {
		return nil, domainErrors.ErrValidation
	}
	if meal.Price <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.meals.Create(ctx, meal)
}

// DeleteMeal removes a dish from the catalog.
func (u *CatalogUseCase) DeleteMeal(ctx context.Context, id model.MealID) error {
	return u.meals.Delete(ctx, id)
}

// LikeMeal bumps the like counter and returns the new total.
func (u *CatalogUseCase) LikeMeal(ctx context.Context, id model.MealID) (int64, error) {
	return u.meals.IncrementLikes(ctx, id)
}

// ListReviews returns all reviews, newest first.
func (u *CatalogUseCase) ListReviews(ctx context.Context) ([]model.Review, error) {
	return u.reviews.List(ctx)
}

// ListReviewsByMeal returns reviews for one meal.
func (u *CatalogUseCase) ListReviewsByMeal(ctx context.Context, mealID model.MealID) ([]model.Review, error) {
	return u.reviews.ListByMeal(ctx, mealID)
}

// CreateReview stores feedback for a meal.
func (u *CatalogUseCase) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	if strings.TrimSpace(review.Email) == "" || review.MealID == 0 {
		return nil, domainErrors.ErrValidation
	}
	if review.Rating < 0 || review.Rating > 5 {
		return nil, domainErrors.ErrValidation
	}
	return u.reviews.Create(ctx, review)
}

// ListMemberships returns purchasable subscription tiers.
func (u *CatalogUseCase) ListMemberships(ctx context.Context) ([]model.Membership, error) {
	return u.memberships.List(ctx)
}

package handlers

import (
	"context"

	"github.com/dormdine/dormdine/internal/domain/model"
)

// AuthFacade describes authentication and account capabilities required by handlers.
type AuthFacade interface {
	IssueToken(email string) (string, error)
	ParseToken(token string) (string, error)
	Register(ctx context.Context, email string) (*model.User, bool, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	Users(ctx context.Context) ([]model.User, error)
	PromoteToAdmin(ctx context.Context, id model.UserID) error
	UpdateSubscription(ctx context.Context, email, tier string) error
}

// CatalogFacade covers the meal catalog, reviews, and membership tiers.
type CatalogFacade interface {
	Meals(ctx context.Context) ([]model.Meal, error)
	Meal(ctx context.Context, id model.MealID) (*model.Meal, error)
	CreateMeal(ctx context.Context, meal *model.Meal) (*model.Meal, error)
	DeleteMeal(ctx context.Context, id model.MealID) error
	LikeMeal(ctx context.Context, id model.MealID) (int64, error)
	Reviews(ctx context.Context) ([]model.Review, error)
	ReviewsByMeal(ctx context.Context, mealID model.MealID) ([]model.Review, error)
	CreateReview(ctx context.Context, review *model.Review) (*model.Review, error)
	Memberships(ctx context.Context) ([]model.Membership, error)
}

// CartFacade provides cart line item operations.
type CartFacade interface {
	CartItems(ctx context.Context, email string) ([]model.CartItem, error)
	AddCartItem(ctx context.Context, item *model.CartItem) (*model.CartItem, error)
	RemoveCartItem(ctx context.Context, email string, id model.CartItemID) error
}

// PaymentFacade provides gateway intents and cart settlement.
type PaymentFacade interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (string, error)
	Settle(ctx context.Context, email string, amount float64, ids []model.CartItemID) (*model.SettlementResult, error)
	Payments(ctx context.Context, email string) ([]model.Payment, error)
}

// DormFacade aggregates the full set of operations used across handlers.
type DormFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	PaymentFacade
}

package app

import (
	"context"

	"github.com/dormdine/dormdine/internal/adapter/payment"
	domainErrors "github.com/dormdine/dormdine/internal/domain/errors"
	"github.com/dormdine/dormdine/internal/domain/model"
	"github.com/dormdine/dormdine/internal/usecase"
)

// DormFacade aggregates application use cases behind the surface the
// HTTP handlers and the background reconciler consume.
type DormFacade struct {
	auth       *usecase.AuthUseCase
	catalog    *usecase.CatalogUseCase
	cart       *usecase.CartUseCase
	settlement *usecase.SettlementUseCase
	gateway    payment.Client
}

func NewDormFacade(auth *usecase.AuthUseCase, catalog *usecase.CatalogUseCase, cart *usecase.CartUseCase, settlement *usecase.SettlementUseCase, gateway payment.Client) *DormFacade {
	return &DormFacade{auth: auth, catalog: catalog, cart: cart, settlement: settlement, gateway: gateway}
}

func (f *DormFacade) IssueToken(email string) (string, error) {
	return f.auth.IssueToken(email)
}

func (f *DormFacade) ParseToken(token string) (string, error) {
	return f.auth.ParseToken(token)
}

func (f *DormFacade) Register(ctx context.Context, email string) (*model.User, bool, error) {
	return f.auth.Register(ctx, email)
}

func (f *DormFacade) IsAdmin(ctx context.Context, email string) (bool, error) {
	return f.auth.IsAdmin(ctx, email)
}

func (f *DormFacade) Users(ctx context.Context) ([]model.User, error) {
	return f.auth.ListUsers(ctx)
}

func (f *DormFacade) PromoteToAdmin(ctx context.Context, id model.UserID) error {
	return f.auth.PromoteToAdmin(ctx, id)
}

func (f *DormFacade) UpdateSubscription(ctx context.Context, email, tier string) error {
	return f.auth.UpdateSubscription(ctx, email, tier)
}

func (f *DormFacade) Meals(ctx context.Context) ([]model.Meal, error) {
	return f.catalog.ListMeals(ctx)
}

func (f *DormFacade) Meal(ctx context.Context, id model.MealID) (*model.Meal, error) {
	return f.catalog.GetMeal(ctx, id)
}

func (f *DormFacade) CreateMeal(ctx context.Context, meal *model.Meal) (*model.Meal, error) {
	return f.catalog.CreateMeal(ctx, meal)
}

func (f *DormFacade) DeleteMeal(ctx context.Context, id model.MealID) error {
	return f.catalog.DeleteMeal(ctx, id)
}

func (f *DormFacade) LikeMeal(ctx context.Context, id model.MealID) (int64, error) {
	return f.catalog.LikeMeal(ctx, id)
}

func (f *DormFacade) Reviews(ctx context.Context) ([]model.Review, error) {
	return f.catalog.ListReviews(ctx)
}

func (f *DormFacade) ReviewsByMeal(ctx context.Context, mealID model.MealID) ([]model.Review, error) {
	return f.catalog.ListReviewsByMeal(ctx, mealID)
}

func (f *DormFacade) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	return f.catalog.CreateReview(ctx, review)
}

func (f *DormFacade) Memberships(ctx context.Context) ([]model.Membership, error) {
	return f.catalog.ListMemberships(ctx)
}

func (f *DormFacade) CartItems(ctx context.Context, email string) ([]model.CartItem, error) {
	return f.cart.ListByEmail(ctx, email)
}

func (f *DormFacade) AddCartItem(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	return f.cart.Add(ctx, item)
}

func (f *DormFacade) RemoveCartItem(ctx context.Context, email string, id model.CartItemID) error {
	return f.cart.Delete(ctx, email, id)
}

func (f *DormFacade) CreateIntent(ctx context.Context, amount float64, currency string) (string, error) {
	if amount <= 0 {
		return "", domainErrors.ErrInvalidAmount
	}
	return f.gateway.CreateIntent(ctx, amount, currency)
}

func (f *DormFacade) Settle(ctx context.Context, email string, amount float64, ids []model.CartItemID) (*model.SettlementResult, error) {
	return f.settlement.Settle(ctx, email, amount, ids)
}

func (f *DormFacade) Payments(ctx context.Context, email string) ([]model.Payment, error) {
	return f.settlement.History(ctx, email)
}

func (f *DormFacade) ReconcileLeftovers(ctx context.Context, limit int) (int64, error) {
	return f.settlement.ReconcileLeftovers(ctx, limit)
}

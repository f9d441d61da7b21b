package test

import (
	"context"

	"github.com/dormdine/dormdine/internal/domain/model"
)

// AuthFacadeStub provides controllable behaviour for auth and user endpoints.
type AuthFacadeStub struct {
	IssueFn        func(string) (string, error)
	ParseFn        func(string) (string, error)
	RegisterFn     func(context.Context, string) (*model.User, bool, error)
	IsAdminFn      func(context.Context, string) (bool, error)
	UsersFn        func(context.Context) ([]model.User, error)
	PromoteFn      func(context.Context, model.UserID) error
	SubscriptionFn func(context.Context, string, string) error
}

// IssueToken delegates to provided function or returns a fixed token.
func (s AuthFacadeStub) IssueToken(email string) (string, error) {
	if s.IssueFn != nil {
		return s.IssueFn(email)
	}
	return "session-token", nil
}

// ParseToken delegates to override or accepts any token.
func (s AuthFacadeStub) ParseToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "resident@dorm.edu", nil
}

// Register delegates to override or reports a newly created member.
func (s AuthFacadeStub) Register(ctx context.Context, email string) (*model.User, bool, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, email)
	}
	return &model.User{ID: 1, Email: email, Role: model.RoleMember}, true, nil
}

// IsAdmin reports configured admin status.
func (s AuthFacadeStub) IsAdmin(ctx context.Context, email string) (bool, error) {
	if s.IsAdminFn != nil {
		return s.IsAdminFn(ctx, email)
	}
	return false, nil
}

// Users returns predefined user list.
func (s AuthFacadeStub) Users(ctx context.Context) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx)
	}
	return []model.User{{ID: 1, Email: "resident@dorm.edu", Role: model.RoleMember}}, nil
}

// PromoteToAdmin executes configured promotion handler.
func (s AuthFacadeStub) PromoteToAdmin(ctx context.Context, id model.UserID) error {
	if s.PromoteFn != nil {
		return s.PromoteFn(ctx, id)
	}
	return nil
}

// UpdateSubscription executes configured subscription handler.
func (s AuthFacadeStub) UpdateSubscription(ctx context.Context, email, tier string) error {
	if s.SubscriptionFn != nil {
		return s.SubscriptionFn(ctx, email, tier)
	}
	return nil
}

// CatalogFacadeStub simulates meal, review, and membership operations.
type CatalogFacadeStub struct {
	MealsFn         func(context.Context) ([]model.Meal, error)
	MealFn          func(context.Context, model.MealID) (*model.Meal, error)
	CreateMealFn    func(context.Context, *model.Meal) (*model.Meal, error)
	DeleteMealFn    func(context.Context, model.MealID) error
	LikeMealFn      func(context.Context, model.MealID) (int64, error)
	ReviewsFn       func(context.Context) ([]model.Review, error)
	ReviewsByMealFn func(context.Context, model.MealID) ([]model.Review, error)
	CreateReviewFn  func(context.Context, *model.Review) (*model.Review, error)
	MembershipsFn   func(context.Context) ([]model.Membership, error)
}

func (s CatalogFacadeStub) Meals(ctx context.Context) ([]model.Meal, error) {
	if s.MealsFn != nil {
		return s.MealsFn(ctx)
	}
	return []model.Meal{{ID: 1, Title: "Dal Bhat", Category: "dinner", Price: 6.5}}, nil
}

func (s CatalogFacadeStub) Meal(ctx context.Context, id model.MealID) (*model.Meal, error) {
	if s.MealFn != nil {
		return s.MealFn(ctx, id)
	}
	return &model.Meal{ID: id, Title: "Dal Bhat", Category: "dinner", Price: 6.5}, nil
}

func (s CatalogFacadeStub) CreateMeal(ctx context.Context, meal *model.Meal) (*model.Meal, error) {
	if s.CreateMealFn != nil {
		return s.CreateMealFn(ctx, meal)
	}
	created := *meal
	created.ID = 1
	return &created, nil
}

func (s CatalogFacadeStub) DeleteMeal(ctx context.Context, id model.MealID) error {
	if s.DeleteMealFn != nil {
		return s.DeleteMealFn(ctx, id)
	}
	return nil
}

func (s CatalogFacadeStub) LikeMeal(ctx context.Context, id model.MealID) (int64, error) {
	if s.LikeMealFn != nil {
		return s.LikeMealFn(ctx, id)
	}
	return 1, nil
}

func (s CatalogFacadeStub) Reviews(ctx context.Context) ([]model.Review, error) {
	if s.ReviewsFn != nil {
		return s.ReviewsFn(ctx)
	}
	return []model.Review{{ID: 1, MealID: 1, Email: "resident@dorm.edu", Rating: 5}}, nil
}

func (s CatalogFacadeStub) ReviewsByMeal(ctx context.Context, mealID model.MealID) ([]model.Review, error) {
	if s.ReviewsByMealFn != nil {
		return s.ReviewsByMealFn(ctx, mealID)
	}
	return nil, nil
}

func (s CatalogFacadeStub) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	if s.CreateReviewFn != nil {
		return s.CreateReviewFn(ctx, review)
	}
	created := *review
	created.ID = 1
	return &created, nil
}

func (s CatalogFacadeStub) Memberships(ctx context.Context) ([]model.Membership, error) {
	if s.MembershipsFn != nil {
		return s.MembershipsFn(ctx)
	}
	return []model.Membership{{ID: 1, Tier: "silver", Price: 20}}, nil
}

// CartFacadeStub simulates cart operations.
type CartFacadeStub struct {
	ItemsFn  func(context.Context, string) ([]model.CartItem, error)
	AddFn    func(context.Context, *model.CartItem) (*model.CartItem, error)
	RemoveFn func(context.Context, string, model.CartItemID) error
}

func (s CartFacadeStub) CartItems(ctx context.Context, email string) ([]model.CartItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, email)
	}
	return []model.CartItem{{ID: 1, Email: email, MealID: 1, Title: "Dal Bhat", Price: 6.5}}, nil
}

func (s CartFacadeStub) AddCartItem(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, item)
	}
	created := *item
	created.ID = 1
	return &created, nil
}

func (s CartFacadeStub) RemoveCartItem(ctx context.Context, email string, id model.CartItemID) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, email, id)
	}
	return nil
}

// PaymentFacadeStub simulates intent creation and settlement.
type PaymentFacadeStub struct {
	IntentFn   func(context.Context, float64, string) (string, error)
	SettleFn   func(context.Context, string, float64, []model.CartItemID) (*model.SettlementResult, error)
	PaymentsFn func(context.Context, string) ([]model.Payment, error)
}

func (s PaymentFacadeStub) CreateIntent(ctx context.Context, amount float64, currency string) (string, error) {
	if s.IntentFn != nil {
		return s.IntentFn(ctx, amount, currency)
	}
	return "pi_secret", nil
}

func (s PaymentFacadeStub) Settle(ctx context.Context, email string, amount float64, ids []model.CartItemID) (*model.SettlementResult, error) {
	if s.SettleFn != nil {
		return s.SettleFn(ctx, email, amount, ids)
	}
	return &model.SettlementResult{PaymentID: 1, DeletedCount: int64(len(ids))}, nil
}

func (s PaymentFacadeStub) Payments(ctx context.Context, email string) ([]model.Payment, error) {
	if s.PaymentsFn != nil {
		return s.PaymentsFn(ctx, email)
	}
	return []model.Payment{{ID: 1, Email: email, Amount: 25}}, nil
}

// DormFacadeStub aggregates all facade stubs for router level tests.
type DormFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	PaymentFacadeStub
}

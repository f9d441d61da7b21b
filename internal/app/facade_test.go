package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/dormdine/dormdine/internal/domain/errors"
	"github.com/dormdine/dormdine/internal/domain/model"
	testhelpers "github.com/dormdine/dormdine/internal/test"
	"github.com/dormdine/dormdine/internal/usecase"
)

type gatewayStub struct {
	secret string
	err    error
}

func (s gatewayStub) CreateIntent(ctx context.Context, amount float64, currency string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.secret != "" {
		return s.secret, nil
	}
	return "pi_secret", nil
}

type facadeFixture struct {
	facade   *DormFacade
	users    *testhelpers.UserRepositoryStub
	meals    *testhelpers.MealRepositoryStub
	carts    *testhelpers.CartRepositoryStub
	payments *testhelpers.PaymentRepositoryStub
}

func newFacade() facadeFixture {
	users := testhelpers.NewUserRepositoryStub()
	memberships := &testhelpers.MembershipRepositoryStub{
		Memberships: []model.Membership{{ID: 1, Tier: "silver", Price: 20}},
	}
	strategy := testhelpers.StrategyStub{
		IssueFn: func(string) (string, error) { return "token", nil },
		ParseFn: func(string) (string, error) { return "resident@dorm.edu", nil },
	}
	authUC := usecase.NewAuthUseCase(users, memberships, strategy)

	meals := &testhelpers.MealRepositoryStub{}
	reviews := &testhelpers.ReviewRepositoryStub{}
	catalogUC := usecase.NewCatalogUseCase(meals, reviews, memberships)

	carts := &testhelpers.CartRepositoryStub{}
	cartUC := usecase.NewCartUseCase(carts)

	payments := &testhelpers.PaymentRepositoryStub{}
	settlementUC := usecase.NewSettlementUseCase(carts, payments)

	facade := NewDormFacade(authUC, catalogUC, cartUC, settlementUC, gatewayStub{})
	return facadeFixture{facade: facade, users: users, meals: meals, carts: carts, payments: payments}
}

func newStubFacade() *DormFacade {
	return newFacade().facade
}

func TestDormFacadeAuth(t *testing.T) {
	fix := newFacade()
	ctx := context.Background()

	token, err := fix.facade.IssueToken("resident@dorm.edu")
	if err != nil || token != "token" {
		t.Fatalf("unexpected issue result: %q err=%v", token, err)
	}

	email, err := fix.facade.ParseToken("token")
	if err != nil || email != "resident@dorm.edu" {
		t.Fatalf("unexpected parse result: %q err=%v", email, err)
	}

	user, created, err := fix.facade.Register(ctx, "resident@dorm.edu")
	if err != nil || !created || user == nil {
		t.Fatalf("unexpected register result: user=%v created=%v err=%v", user, created, err)
	}

	if _, err := fix.users.GetByEmail(ctx, "resident@dorm.edu"); err != nil {
		t.Fatalf("user not stored: %v", err)
	}

	admin, err := fix.facade.IsAdmin(ctx, "resident@dorm.edu")
	if err != nil || admin {
		t.Fatalf("expected plain member, got admin=%v err=%v", admin, err)
	}

	if err := fix.facade.PromoteToAdmin(ctx, user.ID); err != nil {
		t.Fatalf("promote returned error: %v", err)
	}
	if admin, _ := fix.facade.IsAdmin(ctx, "resident@dorm.edu"); !admin {
		t.Fatal("expected admin after promotion")
	}

	if err := fix.facade.UpdateSubscription(ctx, "resident@dorm.edu", "silver"); err != nil {
		t.Fatalf("subscription returned error: %v", err)
	}
	if err := fix.facade.UpdateSubscription(ctx, "resident@dorm.edu", "gold"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown tier, got %v", err)
	}
}

func TestDormFacadeCatalog(t *testing.T) {
	fix := newFacade()
	ctx := context.Background()

	created, err := fix.facade.CreateMeal(ctx, &model.Meal{Title: "Dal Bhat", Category: "dinner", Price: 6.5})
	if err != nil || created.ID == 0 {
		t.Fatalf("unexpected create result: %v err=%v", created, err)
	}

	meals, err := fix.facade.Meals(ctx)
	if err != nil || len(meals) != 1 {
		t.Fatalf("expected one meal, got %v err=%v", meals, err)
	}

	likes, err := fix.facade.LikeMeal(ctx, created.ID)
	if err != nil || likes != 1 {
		t.Fatalf("unexpected like result: %d err=%v", likes, err)
	}

	review, err := fix.facade.CreateReview(ctx, &model.Review{MealID: created.ID, Email: "resident@dorm.edu", Rating: 5})
	if err != nil || review.ID == 0 {
		t.Fatalf("unexpected review result: %v err=%v", review, err)
	}
	byMeal, err := fix.facade.ReviewsByMeal(ctx, created.ID)
	if err != nil || len(byMeal) != 1 {
		t.Fatalf("expected one review, got %v err=%v", byMeal, err)
	}

	tiers, err := fix.facade.Memberships(ctx)
	if err != nil || len(tiers) != 1 {
		t.Fatalf("expected one tier, got %v err=%v", tiers, err)
	}

	if err := fix.facade.DeleteMeal(ctx, created.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
}

func TestDormFacadeCartAndSettlement(t *testing.T) {
	fix := newFacade()
	ctx := context.Background()

	item, err := fix.facade.AddCartItem(ctx, &model.CartItem{Email: "resident@dorm.edu", MealID: 1, Title: "Dal Bhat", Price: 6.5})
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	items, err := fix.facade.CartItems(ctx, "resident@dorm.edu")
	if err != nil || len(items) != 1 {
		t.Fatalf("expected one item, got %v err=%v", items, err)
	}

	secret, err := fix.facade.CreateIntent(ctx, 6.5, "usd")
	if err != nil || secret != "pi_secret" {
		t.Fatalf("unexpected intent result: %q err=%v", secret, err)
	}
	if _, err := fix.facade.CreateIntent(ctx, 0, "usd"); !errors.Is(err, domainErrors.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for zero amount, got %v", err)
	}

	result, err := fix.facade.Settle(ctx, "resident@dorm.edu", 6.5, []model.CartItemID{item.ID})
	if err != nil {
		t.Fatalf("settle returned error: %v", err)
	}
	if result.DeletedCount != 1 {
		t.Fatalf("expected one deletion, got %d", result.DeletedCount)
	}

	history, err := fix.facade.Payments(ctx, "resident@dorm.edu")
	if err != nil || len(history) != 1 {
		t.Fatalf("expected one payment, got %v err=%v", history, err)
	}

	if deleted, err := fix.facade.ReconcileLeftovers(ctx, 10); err != nil || deleted != 0 {
		t.Fatalf("unexpected reconcile result: %d err=%v", deleted, err)
	}
}

package test

import (
	"context"
	"time"

	domainErrors "github.com/dormdine/dormdine/internal/domain/errors"
	"github.com/dormdine/dormdine/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[model.UserID]*model.User
	Next  model.UserID
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[model.UserID]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[model.UserID]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Email: email, Role: model.RoleMember, CreatedAt: time.Now()}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id model.UserID) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored user.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	result := make([]model.User, 0, len(s.Users))
	for _, u := range s.Users {
		result = append(result, *u)
	}
	return result, nil
}

// PromoteToAdmin flips the stored user's role.
func (s *UserRepositoryStub) PromoteToAdmin(ctx context.Context, id model.UserID) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.Role = model.RoleAdmin
	return nil
}

// UpdateSubscription replaces the stored user's tier.
func (s *UserRepositoryStub) UpdateSubscription(ctx context.Context, email, tier string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.Users[email]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.SubscriptionTier = &tier
	return nil
}

// MealRepositoryStub allows tests to customize catalog behaviour.
type MealRepositoryStub struct {
	CreateFn func(context.Context, *model.Meal) (*model.Meal, error)
	GetFn    func(context.Context, model.MealID) (*model.Meal, error)
	ListFn   func(context.Context) ([]model.Meal, error)
	DeleteFn func(context.Context, model.MealID) error
	LikeFn   func(context.Context, model.MealID) (int64, error)
	Meals    []model.Meal
}

func (s *MealRepositoryStub) Create(ctx context.Context, meal *model.Meal) (*model.Meal, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, meal)
	}
	created := *meal
	created.ID = model.MealID(len(s.Meals) + 1)
	s.Meals = append(s.Meals, created)
	return &created, nil
}

func (s *MealRepositoryStub) GetByID(ctx context.Context, id model.MealID) (*model.Meal, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	for _, m := range s.Meals {
		if m.ID == id {
			meal := m
			return &meal, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *MealRepositoryStub) List(ctx context.Context) ([]model.Meal, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Meals, nil
}

func (s *MealRepositoryStub) Delete(ctx context.Context, id model.MealID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i, m := range s.Meals {
		if m.ID == id {
			s.Meals = append(s.Meals[:i], s.Meals[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *MealRepositoryStub) IncrementLikes(ctx context.Context, id model.MealID) (int64, error) {
	if s.LikeFn != nil {
		return s.LikeFn(ctx, id)
	}
	for i := range s.Meals {
		if s.Meals[i].ID == id {
			s.Meals[i].Likes++
			return s.Meals[i].Likes, nil
		}
	}
	return 0, domainErrors.ErrNotFound
}

// ReviewRepositoryStub stores reviews for tests.
type ReviewRepositoryStub struct {
	CreateFn func(context.Context, *model.Review) (*model.Review, error)
	Reviews  []model.Review
}

func (s *ReviewRepositoryStub) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, review)
	}
	created := *review
	created.ID = model.ReviewID(len(s.Reviews) + 1)
	s.Reviews = append(s.Reviews, created)
	return &created, nil
}

func (s *ReviewRepositoryStub) List(ctx context.Context) ([]model.Review, error) {
	return s.Reviews, nil
}

func (s *ReviewRepositoryStub) ListByMeal(ctx context.Context, mealID model.MealID) ([]model.Review, error) {
	var result []model.Review
	for _, r := range s.Reviews {
		if r.MealID == mealID {
			result = append(result, r)
		}
	}
	return result, nil
}

// MembershipRepositoryStub serves configured tiers.
type MembershipRepositoryStub struct {
	Memberships []model.Membership
	Err         error
}

func (s *MembershipRepositoryStub) List(ctx context.Context) ([]model.Membership, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Memberships, nil
}

func (s *MembershipRepositoryStub) GetByTier(ctx context.Context, tier string) (*model.Membership, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, m := range s.Memberships {
		if m.Tier == tier {
			membership := m
			return &membership, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// CartRepositoryStub stores cart items in-memory for tests.
type CartRepositoryStub struct {
	AddFn       func(context.Context, *model.CartItem) (*model.CartItem, error)
	DeleteOwnFn func(context.Context, string, []model.CartItemID) (int64, error)
	LeftoversFn func(context.Context, int) ([]model.CartItem, error)
	Items       []model.CartItem
	Next        model.CartItemID
}

func (s *CartRepositoryStub) Add(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, item)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	created := *item
	created.ID = s.Next
	s.Next++
	s.Items = append(s.Items, created)
	return &created, nil
}

func (s *CartRepositoryStub) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	var result []model.CartItem
	for _, item := range s.Items {
		if item.Email == email {
			result = append(result, item)
		}
	}
	return result, nil
}

func (s *CartRepositoryStub) Delete(ctx context.Context, email string, id model.CartItemID) error {
	for i, item := range s.Items {
		if item.ID == id && item.Email == email {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (s *CartRepositoryStub) DeleteOwned(ctx context.Context, email string, ids []model.CartItemID) (int64, error) {
	if s.DeleteOwnFn != nil {
		return s.DeleteOwnFn(ctx, email, ids)
	}
	var deleted int64
	remaining := s.Items[:0]
	for _, item := range s.Items {
		if item.Email == email && containsID(ids, item.ID) {
			deleted++
			continue
		}
		remaining = append(remaining, item)
	}
	s.Items = remaining
	return deleted, nil
}

func (s *CartRepositoryStub) ListSettledLeftovers(ctx context.Context, limit int) ([]model.CartItem, error) {
	if s.LeftoversFn != nil {
		return s.LeftoversFn(ctx, limit)
	}
	return nil, nil
}

func containsID(ids []model.CartItemID, id model.CartItemID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

// PaymentRepositoryStub records inserted payments.
type PaymentRepositoryStub struct {
	InsertFn func(context.Context, *model.Payment) (model.PaymentID, error)
	ListFn   func(context.Context, string) ([]model.Payment, error)
	Payments []model.Payment
	Next     model.PaymentID
}

func (s *PaymentRepositoryStub) Insert(ctx context.Context, payment *model.Payment) (model.PaymentID, error) {
	if s.InsertFn != nil {
		return s.InsertFn(ctx, payment)
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *payment
	stored.ID = s.Next
	s.Next++
	s.Payments = append(s.Payments, stored)
	return stored.ID, nil
}

func (s *PaymentRepositoryStub) ListByEmail(ctx context.Context, email string) ([]model.Payment, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, email)
	}
	var result []model.Payment
	for _, p := range s.Payments {
		if p.Email == email {
			result = append(result, p)
		}
	}
	return result, nil
}

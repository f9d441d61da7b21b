package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/dormdine/dormdine/internal/domain/errors"
	"github.com/dormdine/dormdine/internal/domain/model"
	"github.com/dormdine/dormdine/internal/domain/repository"
)

// CartUseCase manages a user's cart line items.
type CartUseCase struct {
	carts repository.CartRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository) *CartUseCase {
	return &CartUseCase{carts: carts}
}

// Add stores a priced meal selection in the cart.
func (u *CartUseCase) Add(ctx context.Context, item *model.CartItem) (*model.CartItem, error) {
	if strings.TrimSpace(item.Email) == "" || strings.TrimSpace(item.Title) == "" || item.MealID == 0 {
		return nil, domainErrors.ErrValidation
	}
	if item.Price <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.carts.Add(ctx, item)
}

// ListByEmail returns the cart for the owner email.
func (u *CartUseCase) ListByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.carts.ListByEmail(ctx, email)
}

// Delete removes a single cart item owned by the email. An item that
// exists but belongs to someone else is indistinguishable from a missing
// one.
func (u *CartUseCase) Delete(ctx context.Context, email string, id model.CartItemID) error {
	if strings.TrimSpace(email) == "" {
		return domainErrors.ErrValidation
	}
	return u.carts.Delete(ctx, email, id)
}

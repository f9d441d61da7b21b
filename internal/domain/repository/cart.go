package repository

import (
	"context"

	"github.com/dormdine/dormdine/internal/domain/model"
)

// CartRepository describes persistence operations with cart line items.
type CartRepository interface {
	Add(ctx context.Context, item *model.CartItem) (*model.CartItem, error)
	ListByEmail(ctx context.Context, email string) ([]model.CartItem, error)
	// Delete removes a single item if it belongs to email.
	Delete(ctx context.Context, email string, id model.CartItemID) error
	// DeleteOwned removes every listed item belonging to email and reports
	// how many rows were actually removed.
	DeleteOwned(ctx context.Context, email string, ids []model.CartItemID) (int64, error)
	// ListSettledLeftovers returns cart items whose ids are already
	// referenced by a payment record, i.e. items a crashed settlement
	// failed to clear.
	ListSettledLeftovers(ctx context.Context, limit int) ([]model.CartItem, error)
}

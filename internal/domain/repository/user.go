package repository

import (
	"context"

	"github.com/dormdine/dormdine/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, email string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id model.UserID) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	PromoteToAdmin(ctx context.Context, id model.UserID) error
	UpdateSubscription(ctx context.Context, email, tier string) error
}

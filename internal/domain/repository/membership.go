package repository

import (
	"context"

	"github.com/dormdine/dormdine/internal/domain/model"
)

// MembershipRepository lists purchasable subscription tiers.
type MembershipRepository interface {
	List(ctx context.Context) ([]model.Membership, error)
	GetByTier(ctx context.Context, tier string) (*model.Membership, error)
}

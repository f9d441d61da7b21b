package repository

import (
	"context"

	"github.com/dormdine/dormdine/internal/domain/model"
)

// PaymentRepository persists immutable payment records.
type PaymentRepository interface {
	Insert(ctx context.Context, payment *model.Payment) (model.PaymentID, error)
	ListByEmail(ctx context.Context, email string) ([]model.Payment, error)
}

package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/dormdine/dormdine/internal/domain/errors"
	"github.com/dormdine/dormdine/internal/domain/model"
	"github.com/dormdine/dormdine/internal/domain/repository"
)

// SettlementUseCase converts a priced cart into a permanent payment record
// and removes the settled items.
type SettlementUseCase struct {
	carts    repository.CartRepository
	payments repository.PaymentRepository
}

// NewSettlementUseCase constructs SettlementUseCase.
func NewSettlementUseCase(carts repository.CartRepository, payments repository.PaymentRepository) *SettlementUseCase {
	return &SettlementUseCase{carts: carts, payments: payments}
}

// Settle persists the payment record first and only then deletes the
// referenced cart items. A crash between the two steps leaves the payment
// recorded and the cart stale, which the reconciler cleans up later; the
// reverse order would destroy evidence of uncharged items. With an empty id
// set the payment is still recorded and the delete is a no-op.
func (u *SettlementUseCase) Settle(ctx context.Context, email string, amount float64, itemIDs []model.CartItemID) (*model.SettlementResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, domainErrors.ErrValidation
	}
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}

	paymentID, err := u.payments.Insert(ctx, &model.Payment{
		Email:       email,
		Amount:      amount,
		CartItemIDs: itemIDs,
	})
	if err != nil {
		return nil, err
	}

	deleted, err := u.carts.DeleteOwned(ctx, email, itemIDs)
	if err != nil {
		// The payment is already durable; report the failed cleanup so the
		// caller sees a partially applied settlement.
		return &model.SettlementResult{PaymentID: paymentID}, err
	}

	return &model.SettlementResult{PaymentID: paymentID, DeletedCount: deleted}, nil
}

// History returns the payment records for the email, newest first.
func (u *SettlementUseCase) History(ctx context.Context, email string) ([]model.Payment, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domainErrors.ErrValidation
	}
	return u.payments.ListByEmail(ctx, email)
}

// ReconcileLeftovers re-issues the idempotent delete for cart items a
// crashed settlement already paid for but failed to clear.
func (u *SettlementUseCase) ReconcileLeftovers(ctx context.Context, limit int) (int64, error) {
	leftovers, err := u.carts.ListSettledLeftovers(ctx, limit)
	if err != nil {
		return 0, err
	}
	if len(leftovers) == 0 {
		return 0, nil
	}

	byEmail := make(map[string][]model.CartItemID)
	for _, item := range leftovers {
		byEmail[item.Email] = append(byEmail[item.Email], item.ID)
	}

	var total int64
	for email, ids := range byEmail {
		deleted, err := u.carts.DeleteOwned(ctx, email, ids)
		total += deleted
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

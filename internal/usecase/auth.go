package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/dormdine/dormdine/internal/domain/errors"
	"github.com/dormdine/dormdine/internal/domain/model"
	"github.com/dormdine/dormdine/internal/domain/repository"
	pkgAuth "github.com/dormdine/dormdine/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users       repository.UserRepository
	memberships repository.MembershipRepository
	tokens      pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, memberships repository.MembershipRepository, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, memberships: memberships, tokens: strategy}
}

// IssueToken signs a session token for the email. Callers are trusted to
// supply a correct identity; there is no credential check.
func (u *AuthUseCase) IssueToken(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", domainErrors.ErrValidation
	}
	return u.tokens.IssueToken(email)
}

// ParseToken extracts the email from provided token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// Register creates a user record for the email. Registration is idempotent:
// re-registering an existing email is a no-op reporting created=false, and
// exactly one record per email ever exists.
func (u *AuthUseCase) Register(ctx context.Context, email string) (*model.User, bool, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, false, domainErrors.ErrValidation
	}

	usr, err := u.users.Create(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			existing, getErr := u.users.GetByEmail(ctx, email)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	return usr, true, nil
}

// GetByEmail fetches user by email.
func (u *AuthUseCase) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return u.users.GetByEmail(ctx, email)
}

// ListUsers returns all registered users.
func (u *AuthUseCase) ListUsers(ctx context.Context) ([]model.User, error) {
	return u.users.List(ctx)
}

// IsAdmin reports whether the user behind the email holds the admin role.
func (u *AuthUseCase) IsAdmin(ctx context.Context, email string) (bool, error) {
	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return usr.IsAdmin(), nil
}

// PromoteToAdmin grants the admin role to the user.
func (u *AuthUseCase) PromoteToAdmin(ctx context.Context, id model.UserID) error {
	return u.users.PromoteToAdmin(ctx, id)
}

// UpdateSubscription sets the user's subscription tier after checking the
// tier actually exists.
func (u *AuthUseCase) UpdateSubscription(ctx context.Context, email, tier string) error {
	tier = strings.TrimSpace(tier)
	if tier == "" {
		return domainErrors.ErrValidation
	}
	if _, err := u.memberships.GetByTier(ctx, tier); err != nil {
		return err
	}
	return u.users.UpdateSubscription(ctx, email, tier)
}

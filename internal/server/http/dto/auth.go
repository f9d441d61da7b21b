package dto

import "time"

// TokenRequest carries the email a session token is issued for.
type TokenRequest struct {
	Email string `json:"email"`
}

// TokenResponse returns the freshly signed session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// RegisterRequest describes the account registration payload.
type RegisterRequest struct {
	Email string `json:"email"`
}

// RegisterResponse reports whether a new account record was written.
type RegisterResponse struct {
	Inserted bool         `json:"inserted"`
	User     UserResponse `json:"user"`
}

// UserResponse is the public shape of a user account.
type UserResponse struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	SubscriptionTier *string   `json:"subscription_tier,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// AdminCheckResponse reports admin status for an email.
type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

// SubscriptionRequest selects a membership tier for the caller.
type SubscriptionRequest struct {
	Tier string `json:"tier"`
}

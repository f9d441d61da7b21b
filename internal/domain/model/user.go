package model

import "time"

// Role describes the privilege level of a user account.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// User represents a registered resident of the dormitory platform.
// Accounts are keyed by email and are never deleted.
type User struct {
	ID               UserID
	Email            string
	Role             Role
	SubscriptionTier *string
	CreatedAt        time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents the account.
type User struct {
	ID            uuid.UUID
	Email         string
	EmailVerified bool
	Name          *string
	AccountStatus AccountStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// Principal projects the user into the identity attached to a request.
func (u *User) Principal() *Principal {
	return &Principal{
		UserID:        u.ID,
		Email:         u.Email,
		EmailVerified: u.EmailVerified,
		AccountStatus: u.AccountStatus,
	}
}

// Principal is the authenticated identity attached to a request by the Auth middleware.
// Handlers treat it as read-only.
type Principal struct {
	UserID        uuid.UUID
	Email         string
	EmailVerified bool
	AccountStatus AccountStatus
}

// CheckAccess returns nil when the principal may use protected resources,
// ErrEmailNotVerified or ErrAccountInactive otherwise. Email verification is checked first.
func (p *Principal) CheckAccess() error {
	if !p.EmailVerified {
		return ErrEmailNotVerified
	}
	if !p.AccountStatus.IsActive() {
		return ErrAccountInactive
	}
	return nil
}

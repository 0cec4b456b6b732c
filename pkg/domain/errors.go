package domain

import "errors"

// Authentication errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidToken = errors.New("invalid token")
)

// Account state errors
var (
	ErrEmailNotVerified = errors.New("email not verified")
	ErrAccountInactive  = errors.New("account is not active")
)

package me

import (
	"net/http"

	"github.com/tendant/account-gate/internal/http/middleware"
	"github.com/tendant/account-gate/internal/httputil"
)

// Handler handles user profile endpoints.
type Handler struct{}

// NewHandler creates a new me handler.
func NewHandler() *Handler {
	return &Handler{}
}

// UserResponse represents the user profile response.
type UserResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	AccountStatus string `json:"account_status"`
}

// GetMe returns the current user's profile.
// GET /v1/me
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	httputil.JSON(w, http.StatusOK, UserResponse{
		ID:            principal.UserID.String(),
		Email:         principal.Email,
		EmailVerified: principal.EmailVerified,
		AccountStatus: string(principal.AccountStatus),
	})
}

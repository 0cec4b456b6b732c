package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/tendant/account-gate/internal/httputil"
	"github.com/tendant/account-gate/pkg/auth"
	"github.com/tendant/account-gate/pkg/domain"
)

type contextKey string

const (
	// UserIDKey is the context key for the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// ClaimsKey is the context key for the token claims.
	ClaimsKey contextKey = "claims"
	// PrincipalKey is the context key for the authenticated principal.
	PrincipalKey contextKey = "principal"
)

// TokenValidator validates access tokens.
type TokenValidator interface {
	ValidateAccessToken(token string) (*auth.AccessTokenClaims, error)
}

// UserLookup loads the user record behind a token subject.
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Auth creates middleware that validates JWT access tokens and attaches the
// principal loaded from the user record.
// Checks Authorization header first, then falls back to cookie for web clients.
func Auth(tokens TokenValidator, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				tokenString, ok = httputil.GetAccessTokenFromCookie(r)
			}
			if !ok {
				unauthorized(w, "Authentication required")
				return
			}

			claims, err := tokens.ValidateAccessToken(tokenString)
			if err != nil {
				unauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				unauthorized(w, "Invalid token subject")
				return
			}

			// Account state is read from the user record on every request.
			user, err := users.GetByID(r.Context(), userID)
			if errors.Is(err, domain.ErrUserNotFound) {
				unauthorized(w, "Authentication required")
				return
			}
			if err != nil {
				httputil.WriteError(w, http.StatusInternalServerError, httputil.ErrorBody{
					Code:    "INTERNAL_ERROR",
					Message: "Internal server error",
				})
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			ctx = context.WithValue(ctx, ClaimsKey, claims)
			ctx = WithPrincipal(ctx, user.Principal())
			SetLogUserID(ctx, userID.String())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

func unauthorized(w http.ResponseWriter, message string) {
	httputil.WriteError(w, http.StatusUnauthorized, httputil.ErrorBody{
		Code:    "UNAUTHORIZED",
		Message: message,
	})
}

// WithPrincipal returns a copy of ctx carrying the principal.
func WithPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

// GetPrincipal extracts the principal from the request context.
// A nil principal is reported as absent.
func GetPrincipal(ctx context.Context) (*domain.Principal, bool) {
	p, ok := ctx.Value(PrincipalKey).(*domain.Principal)
	return p, ok && p != nil
}

// GetUserID extracts the user ID from the request context.
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetClaims extracts the token claims from the request context.
func GetClaims(ctx context.Context) (*auth.AccessTokenClaims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*auth.AccessTokenClaims)
	return claims, ok
}

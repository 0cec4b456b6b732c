package middleware

import (
	"errors"
	"net/http"

	"github.com/tendant/account-gate/internal/httputil"
	"github.com/tendant/account-gate/pkg/domain"
)

// RequireActiveAccount creates middleware that only lets through principals whose
// email is verified and whose account is ACTIVE. Must be used after Auth middleware.
//
// Checks run in order and the first failure writes the response:
//
//	no principal       -> 401 UNAUTHORIZED
//	email not verified -> 403 EMAIL_NOT_VERIFIED (requiresVerification: true)
//	status not ACTIVE  -> 403 ACCOUNT_<status>
//
// Example usage:
//
//	r.With(middleware.Auth(tokens, users)).
//	  With(middleware.RequireActiveAccount()).
//	  Get("/v1/me", meHandler.GetMe)
func RequireActiveAccount() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipal(r.Context())
			if !ok {
				httputil.WriteError(w, http.StatusUnauthorized, httputil.ErrorBody{
					Code:    "UNAUTHORIZED",
					Message: "Authentication required",
				})
				return
			}

			switch err := principal.CheckAccess(); {
			case errors.Is(err, domain.ErrEmailNotVerified):
				httputil.WriteError(w, http.StatusForbidden, httputil.ErrorBody{
					Code:                 "EMAIL_NOT_VERIFIED",
					Message:              "Email verification required to access this resource",
					RequiresVerification: true,
				})
				return
			case errors.Is(err, domain.ErrAccountInactive):
				httputil.WriteError(w, http.StatusForbidden, httputil.ErrorBody{
					Code:    principal.AccountStatus.DeniedCode(),
					Message: principal.AccountStatus.DeniedMessage(),
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tendant/account-gate/internal/config"
	"github.com/tendant/account-gate/internal/http/features/me"
	"github.com/tendant/account-gate/internal/http/middleware"
	"github.com/tendant/account-gate/internal/httputil"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Logger          *slog.Logger
	Tokens          middleware.TokenValidator
	Users           middleware.UserLookup
	RateLimitConfig config.RateLimitConfig
	SecurityHeaders config.SecurityHeadersConfig
	Validation      config.ValidationConfig
}

// NewRouter creates a new HTTP router with all routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Recover(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.SecurityHeaders(cfg.SecurityHeaders))
	r.Use(middleware.RequestSizeLimit(cfg.Validation.MaxRequestBodySize))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Protected routes: authenticated, email verified and ACTIVE.
	meHandler := me.NewHandler()
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewRateLimiter(cfg.RateLimitConfig, cfg.Logger))
		r.Use(middleware.Auth(cfg.Tokens, cfg.Users))
		r.Use(middleware.RequireActiveAccount())
		r.Get("/v1/me", meHandler.GetMe)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, http.StatusNotFound, httputil.ErrorBody{
			Code:    "NOT_FOUND",
			Message: "Resource not found",
		})
	})

	return r
}

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/tendant/account-gate/internal/httputil"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLog holds fields that handlers deeper in the chain add to the
// request log line written by Logging.
type requestLog struct {
	userID string
}

const requestLogKey contextKey = "request_log"

// SetLogUserID records the user ID on the request log line. It does nothing
// when the request did not pass through Logging.
func SetLogUserID(ctx context.Context, userID string) {
	if entry, ok := ctx.Value(requestLogKey).(*requestLog); ok {
		entry.userID = userID
	}
}

// Logging logs each request with structured fields.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			// Filled in by SetLogUserID, which Auth calls once the token checks out.
			entry := &requestLog{}
			next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestLogKey, entry)))

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", rec.bytes,
				"duration", time.Since(start),
			}
			if entry.userID != "" {
				attrs = append(attrs, "user_id", entry.userID)
			}
			logger.InfoContext(r.Context(), "request", attrs...)
		})
	}
}

// Recover converts panics into a 500 response. If the handler already started
// the response, the panic is only logged.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w}
			defer func() {
				if rv := recover(); rv != nil {
					if rv == http.ErrAbortHandler {
						panic(rv)
					}
					logger.Error("panic recovered",
						"panic", rv,
						"path", r.URL.Path,
						"method", r.Method,
						"stack", string(debug.Stack()),
					)
					if rec.status != 0 {
						return
					}
					httputil.WriteError(w, http.StatusInternalServerError, httputil.ErrorBody{
						Code:    "INTERNAL_ERROR",
						Message: "Internal server error",
					})
				}
			}()

			next.ServeHTTP(rec, r)
		})
	}
}

package middlewares

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// contextKey is unexported so keys from other packages cannot collide.
type contextKey string

const (
	HeaderXRequestID = "X-Request-Id"

	ContextKeyRequestID contextKey = "request_id"
)

// AttachRequestMetadata copies chi's request id into the context under our own
// key and echoes it back to the client. Must run after middleware.RequestID.
func AttachRequestMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := middleware.GetReqID(r.Context())
		if requestID != "" {
			w.Header().Set(HeaderXRequestID, requestID)
		}

		ctx := context.WithValue(r.Context(), ContextKeyRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext returns "" when no request id was attached.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(ContextKeyRequestID).(string)
	return id
}

package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/storefront-labs/storefront-backend/pkg/logger"
)

const requestIDHeader = "X-Request-ID"

// RequestID assigns a request identifier to every request and reflects it
// back in the response headers. Inbound identifiers are trusted as-is.
func RequestID(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			ctx := logg.WithRequestID(r.Context(), requestID)
			w.Header().Set(requestIDHeader, requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

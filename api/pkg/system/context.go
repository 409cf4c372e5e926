package system

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

// RequestIDHeader carries the request id from the frontend proxy and back to the caller
const RequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func GetRequestID(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	return requestID
}

// RequestIDMiddleware keeps the incoming request id or creates one, and attaches a
// logger carrying it to the request context
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = GenerateRequestID()
			r.Header.Set(RequestIDHeader, requestID)
		}
		w.Header().Set(RequestIDHeader, requestID)

		logger := log.With().Str("request_id", requestID).Logger()
		ctx := logger.WithContext(WithRequestID(r.Context(), requestID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

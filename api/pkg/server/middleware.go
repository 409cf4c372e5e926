package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func errorLoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := log.Ctx(r.Context())

		lrw := NewLoggingResponseWriter(w)
		next.ServeHTTP(lrw, r)

		if lrw.statusCode >= 400 {
			logger.Error().Msgf("Method: %s, Path: %s, Status: %d", r.Method, r.URL.Path, lrw.statusCode)
			return
		}
		logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", lrw.statusCode).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

package janitor

import (
	"fmt"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/gorilla/mux"

	"github.com/Artox/open-build-service/api/pkg/config"
	"github.com/Artox/open-build-service/api/pkg/system"
)

type Janitor struct {
	cfg config.Janitor
}

func NewJanitor(cfg config.Janitor) *Janitor {
	return &Janitor{
		cfg: cfg,
	}
}

func (j *Janitor) Enabled() bool {
	return j.cfg.SentryDsnAPI != ""
}

func (j *Janitor) Initialize() error {
	if !j.Enabled() {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              j.cfg.SentryDsnAPI,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	system.SetHTTPErrorHandler(func(err *system.HTTPError, req *http.Request) {
		hub := sentry.GetHubFromContext(req.Context())
		if hub == nil {
			hub = sentry.CurrentHub()
		}
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetRequest(req)
			scope.SetTag("status", fmt.Sprintf("%d", err.StatusCode))
			if requestID := req.Header.Get(system.RequestIDHeader); requestID != "" {
				scope.SetTag("request_id", requestID)
			}
			hub.CaptureException(err)
		})
	})
	return nil
}

// allows the janitor to attach middleware to the router
// before all the routes
func (j *Janitor) InjectMiddleware(router *mux.Router) {
	if j.Enabled() {
		router.Use(SentryMiddleware)
	}
}

func SentryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub := sentry.GetHubFromContext(r.Context())
		if hub == nil {
			hub = sentry.CurrentHub().Clone()
			r = r.WithContext(sentry.SetHubOnContext(r.Context(), hub))
		}

		defer func() {
			if err := recover(); err != nil {
				hub.Recover(err)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

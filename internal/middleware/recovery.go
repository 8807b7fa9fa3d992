package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/gyminsights/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a panicking handler into a 500 response and counts it.
// The stack is logged with the route, so the sentry hook picks it up.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				log.WithFields(log.Fields{
					"route":  routeName(req),
					"method": req.Method,
					"owner":  req.Header.Get("X-Owner-Id"),
				}).Errorf("panic serving %s: %v\n%s", req.URL.Path, recovered, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, req)
		})
	}
}

package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs every request once it is served. Requests slower than
// slowThreshold are logged as warnings, the rest at trace level.
func LogRequest(slowThreshold time.Duration) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			begin := time.Now()
			resp := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(resp, r)

			took := time.Since(begin)
			entry := log.WithFields(log.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"route":  routeName(r),
				"status": resp.statusCode,
				"took":   took.String(),
				"ua":     r.Header.Get("User-Agent"),
			})
			if slowThreshold > 0 && took > slowThreshold {
				entry.Warn("slow request")
				return
			}
			entry.Trace("request")
		})
	}
}

package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// maxDrainBytes caps how much of an unread body is discarded. Bodies larger than
// that are closed as is, and the connection is not reused.
const maxDrainBytes = 64 << 10

// DrainAndCloseRequest discards what the handler left unread of the request body
// (up to maxDrainBytes) and closes it.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}

			drained, err := io.CopyN(io.Discard, r.Body, maxDrainBytes)
			if err != nil && err != io.EOF {
				log.Tracef("drain request body %s: %s", r.URL.Path, err)
			} else if drained == maxDrainBytes {
				log.Tracef("request body of %s not fully drained", r.URL.Path)
			}
			_ = r.Body.Close()
		})
	}
}

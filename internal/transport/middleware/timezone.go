package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/cyclecare-backend/pkg/ctxutil"
)

// TimezoneHeader names the caller's IANA timezone, e.g. "Europe/Berlin".
const TimezoneHeader = "X-Timezone"

// Timezone stores the caller's timezone in the context so that "today" is
// the client's calendar day. Requests without the header use UTC; an
// unknown zone is rejected with 400.
func Timezone() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			name := r.Header.Get(TimezoneHeader)
			if name == "" {
				next.ServeHTTP(w, r)
				return
			}
			loc, err := time.LoadLocation(name)
			if err != nil || name == "Local" {
				writeError(w, http.StatusBadRequest, "validation", "invalid "+TimezoneHeader+" header")
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithLocation(r.Context(), loc)))
		})
	}
}

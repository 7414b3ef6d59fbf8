package middlewarex

import (
	"net/http"
	"regexp"

	"boatmatch/pkg/contextx"
)

const HeaderNameTraceID = "X-Trace-Id"

// Client supplied ids end up in logs and error bodies, anything else is
// replaced with a fresh one.
var validTraceIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`) //nolint:gochecknoglobals

func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := contextx.TraceID(r.Header.Get(HeaderNameTraceID))

		if !validTraceIDRe.MatchString(traceID.String()) {
			traceID = contextx.NewTraceID()
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(HeaderNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package middlewarex

import (
	"log/slog"
	"net/http"

	"boatmatch/pkg/contextx"
	"boatmatch/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Logger attaches a request-scoped logger carrying the trace id and request
// coordinates. It must run after TraceID.
func Logger(base *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			traceID, err := contextx.TraceIDFromContext(ctx)
			if err != nil {
				base.Error("contextx.TraceIDFromContext", logx.Error(err))
			}

			ctx = contextx.WithLogger(
				ctx,
				base.With(
					logx.Stringer(logx.FieldTraceID, traceID),
					logx.Stringer(logx.FieldURL, r.URL),
					slog.String(logx.FieldHTTPMethod, r.Method),
					slog.String(logx.FieldIP, r.RemoteAddr),
				),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

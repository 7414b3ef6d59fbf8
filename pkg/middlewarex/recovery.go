package middlewarex

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"boatmatch/pkg/httpx/reply"
	"boatmatch/pkg/logx"
)

var ErrPanic = errors.New("panic in handler")

// Recovery turns a handler panic into a 500 response. http.ErrAbortHandler is
// re-raised so that net/http can abort the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			logger(ctx).Error(
				ErrPanic.Error(),
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldHTTPMethod, r.Method),
				slog.String(logx.FieldURL, r.URL.Path),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			reply.Error(ctx, w, fmt.Errorf("%w: %v", ErrPanic, rec))
		}()

		next.ServeHTTP(w, r)
	})
}

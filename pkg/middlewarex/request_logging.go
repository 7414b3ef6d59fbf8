package middlewarex

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"

	"boatmatch/pkg/logx"
)

// RequestLogging dumps incoming requests at debug level. Multipart uploads are
// logged without the body, a logFieldMaxLen of 0 disables truncation.
func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			dumpBody := !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

			dump, err := httputil.DumpRequest(r, dumpBody)

			logger(ctx).Debug(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, string(sensitiveDataMasker.Mask(truncate(dump, logFieldMaxLen)))),
				logx.Error(err),
			)

			next.ServeHTTP(w, r)
		})
	}
}

func truncate(dump []byte, maxLen int) []byte {
	if maxLen > 0 && len(dump) > maxLen {
		return dump[:maxLen]
	}

	return dump
}

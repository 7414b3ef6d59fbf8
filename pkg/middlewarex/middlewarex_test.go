package middlewarex_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"boatmatch/pkg/contextx"
	"boatmatch/pkg/logx"
	"boatmatch/pkg/middlewarex"
)

func chain(base *slog.Logger, h http.Handler) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	h = middlewarex.ResponseLogging(masker, 64)(h)
	h = middlewarex.RequestLogging(masker, 64)(h)
	h = middlewarex.Recovery(h)
	h = middlewarex.Logger(base)(h)

	return middlewarex.TraceID(h)
}

func TestTraceIDPropagation(t *testing.T) {
	rq := require.New(t)

	var seen contextx.TraceID

	h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		traceID, err := contextx.TraceIDFromContext(r.Context())
		rq.NoError(err)

		seen = traceID
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/boats", http.NoBody)
	req.Header.Set(middlewarex.HeaderNameTraceID, "trace-from-client")

	h.ServeHTTP(rec, req)

	rq.Equal(contextx.TraceID("trace-from-client"), seen)
	rq.Equal("trace-from-client", rec.Header().Get(middlewarex.HeaderNameTraceID))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/boats", http.NoBody))

	rq.NotEmpty(rec.Header().Get(middlewarex.HeaderNameTraceID))
	rq.Equal(seen.String(), rec.Header().Get(middlewarex.HeaderNameTraceID))
}

func TestChainLogsAndRecovers(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h := chain(base, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("hull breach")
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/matches", strings.NewReader(`{"boat":{"type":"sailboat"}}`))

	h.ServeHTTP(rec, req)

	rq.Equal(http.StatusInternalServerError, rec.Code)
	rq.Contains(rec.Body.String(), `"code":"InternalServerError"`)
	rq.Contains(buf.String(), "panic in handler")
	rq.Contains(buf.String(), "hull breach")
	rq.Contains(buf.String(), logx.FieldTraceID)
}

func TestResponseLoggingDefaultsStatus(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	base := slog.New(slog.NewTextHandler(&buf, nil))

	h := chain(base, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/boats", http.NoBody))

	rq.Equal(http.StatusOK, rec.Code)
	rq.Contains(buf.String(), "response-status=200")
	rq.NotContains(buf.String(), logx.FieldHTTPRequest+" ")
}

func TestTraceIDRejectsUnsafeHeader(t *testing.T) {
	testCases := []struct {
		name   string
		header string
	}{
		{name: "Newline", header: "abc\ninjected=1"},
		{name: "Too long", header: strings.Repeat("a", 65)},
		{name: "Spaces", header: "trace id"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			h := middlewarex.TraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/boats", http.NoBody)
			req.Header[middlewarex.HeaderNameTraceID] = []string{tc.header}

			h.ServeHTTP(rec, req)

			got := rec.Header().Get(middlewarex.HeaderNameTraceID)
			rq.NotEmpty(got)
			rq.NotEqual(tc.header, got)
			rq.Len(got, 20)
		})
	}
}

func TestRecoveryReraisesAbort(t *testing.T) {
	rq := require.New(t)

	h := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	rq.PanicsWithError(http.ErrAbortHandler.Error(), func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", http.NoBody))
	})
}

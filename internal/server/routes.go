package server

import (
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"boatmatch/pkg/errcodes"
	"boatmatch/pkg/httpx/reply"
	"boatmatch/pkg/logx"
	"boatmatch/pkg/middlewarex"
)

// NewRouter mounts the API behind the standard middleware chain.
func NewRouter(base *slog.Logger, logFieldMaxLen int, s Server) http.Handler {
	masker := logx.NewSensitiveDataMasker()

	r := chi.NewRouter()
	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger(base),
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	r.NotFound(handler(notFound))

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Route("/boats", func(r chi.Router) {
			r.Get("/", handler(s.getV1Boats))
			r.Get("/{id}", handler(s.getV1Boat))
			r.Get("/{id}/similar", handler(s.getV1BoatSimilar))
		})
		r.Post("/comparisons", handler(s.postV1Comparisons))
		r.Post("/matches", handler(s.postV1Matches))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}

func notFound(_ http.ResponseWriter, r *http.Request) error {
	return failure.NewNotFoundError(
		"route not found: "+r.URL.Path,
		failure.WithCode(errcodes.NotFound),
		failure.WithDescription("route not found"),
	)
}

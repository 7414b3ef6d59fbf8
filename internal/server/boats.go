package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"boatmatch/internal/domain/entity"
	"boatmatch/internal/domain/service/comparison"
	"boatmatch/internal/domain/value"
	"boatmatch/pkg/errcodes"
	"boatmatch/pkg/httpx/reply"
	"boatmatch/pkg/httpx/req"
	"boatmatch/pkg/rest"
)

const maxLimit = 100

type boatCatalog interface {
	List(ctx context.Context) ([]entity.Boat, error)
	GetByID(ctx context.Context, id string) (entity.Boat, error)
}

type comparisonService interface {
	Compare(ctx context.Context, a, b entity.Boat, params comparison.Params) (value.ComparisonResult, error)
	Rank(ctx context.Context, boat entity.Boat, params comparison.RankParams) ([]comparison.Match, error)
	Similar(ctx context.Context, id string, params comparison.RankParams) ([]comparison.Match, error)
	DefaultPreset() string
}

type BoatServer struct {
	catalog     boatCatalog
	comparisons comparisonService
}

func NewBoatServer(catalog boatCatalog, comparisons comparisonService) BoatServer {
	return BoatServer{
		catalog:     catalog,
		comparisons: comparisons,
	}
}

func (s BoatServer) getV1Boats(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	boats, err := s.catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("catalog.List: %w", convertError(err))
	}

	reply.JSON(ctx, w, http.StatusOK, rest.BoatList{Boats: nonNil(boats)})

	return nil
}

func (s BoatServer) getV1Boat(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := boatID(r)
	if err != nil {
		return err
	}

	boat, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("catalog.GetByID: %w", convertError(err))
	}

	reply.JSON(ctx, w, http.StatusOK, boat)

	return nil
}

func (s BoatServer) getV1BoatSimilar(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := boatID(r)
	if err != nil {
		return err
	}

	limit, err := req.QueryInt(r, "limit", 0)
	if err != nil {
		return fmt.Errorf("req.QueryInt: %w", err)
	}

	params, err := newRankParams(r.URL.Query().Get("preset"), r.URL.Query().Get("matchPolicy"), nil, limit)
	if err != nil {
		return err
	}

	matches, err := s.comparisons.Similar(ctx, id, params)
	if err != nil {
		return fmt.Errorf("comparisons.Similar: %w", convertError(err))
	}

	reply.JSON(ctx, w, http.StatusOK, s.newRESTMatchList(params.Preset, matches))

	return nil
}

func (s BoatServer) postV1Comparisons(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ComparisonRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	params, err := newParams(request.Preset, request.MatchPolicy, request.Weights)
	if err != nil {
		return err
	}

	result, err := s.comparisons.Compare(ctx, request.First, request.Second, params)
	if err != nil {
		return fmt.Errorf("comparisons.Compare: %w", convertError(err))
	}

	reply.JSON(ctx, w, http.StatusOK, result)

	return nil
}

func (s BoatServer) postV1Matches(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.MatchRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	params, err := newRankParams(request.Preset, request.MatchPolicy, nil, request.Limit)
	if err != nil {
		return err
	}

	matches, err := s.comparisons.Rank(ctx, request.Boat, params)
	if err != nil {
		return fmt.Errorf("comparisons.Rank: %w", convertError(err))
	}

	reply.JSON(ctx, w, http.StatusOK, s.newRESTMatchList(params.Preset, matches))

	return nil
}

func boatID(r *http.Request) (string, error) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		return "", failure.NewInvalidArgumentError(
			"empty boat id",
			failure.WithCode(errcodes.InvalidBoatID),
			failure.WithDescription("boat id must not be empty"),
		)
	}

	return id, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}

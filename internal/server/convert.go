package server

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"
	"github.com/samber/lo"

	"boatmatch/internal/domain"
	"boatmatch/internal/domain/service/comparison"
	"boatmatch/internal/domain/service/similarity"
	"boatmatch/pkg/errcodes"
	"boatmatch/pkg/rest"
)

func newParams(preset, matchPolicy string, weights *rest.Weights) (comparison.Params, error) {
	params := comparison.Params{Preset: preset}

	if matchPolicy != "" {
		policy, err := similarity.ParseMatchPolicy(matchPolicy)
		if err != nil {
			return comparison.Params{}, convertError(err)
		}

		params.Policy = policy
	}

	if weights != nil {
		params.Weights = &similarity.Weights{
			Type:     weights.Type,
			Size:     weights.Size,
			Features: weights.Features,
		}
	}

	return params, nil
}

func newRankParams(preset, matchPolicy string, weights *rest.Weights, limit int) (comparison.RankParams, error) {
	if limit < 0 || limit > maxLimit {
		return comparison.RankParams{}, failure.NewInvalidArgumentError(
			fmt.Sprintf("limit %d out of range", limit),
			failure.WithCode(errcodes.InvalidLimit),
			failure.WithDescription(fmt.Sprintf("limit must be between 0 and %d", maxLimit)),
		)
	}

	params, err := newParams(preset, matchPolicy, weights)
	if err != nil {
		return comparison.RankParams{}, err
	}

	return comparison.RankParams{Params: params, Limit: limit}, nil
}

func (s BoatServer) newRESTMatchList(preset string, matches []comparison.Match) rest.MatchList {
	if preset == "" {
		preset = s.comparisons.DefaultPreset()
	}

	return rest.MatchList{
		Preset: preset,
		Matches: lo.Map(matches, func(m comparison.Match, _ int) rest.Match {
			return rest.Match{Boat: m.Boat, Comparison: m.Result}
		}),
	}
}

// convertError maps domain errors onto transport error kinds. Errors it does
// not recognize are returned unchanged and end up as 500.
func convertError(err error) error {
	switch {
	case errors.Is(err, similarity.ErrInvalidWeights):
		return failure.NewInvalidArgumentErrorFromError(
			err,
			failure.WithCode(errcodes.InvalidWeights),
			failure.WithDescription("weights must be non-negative and sum to 1"),
		)
	case errors.Is(err, similarity.ErrUnknownPreset):
		return failure.NewInvalidArgumentErrorFromError(
			err,
			failure.WithCode(errcodes.InvalidPreset),
			failure.WithDescription(presetsDescription()),
		)
	case errors.Is(err, similarity.ErrUnknownMatchPolicy):
		return failure.NewInvalidArgumentErrorFromError(
			err,
			failure.WithCode(errcodes.InvalidMatchPolicy),
			failure.WithDescription(fmt.Sprintf("match policy must be %q or %q",
				similarity.ContainmentOverlap, similarity.LevenshteinThreshold)),
		)
	case domain.HasCode(err, errcodes.BoatNotFound):
		return failure.NewNotFoundError(
			err.Error(),
			failure.WithCode(errcodes.BoatNotFound),
			failure.WithDescription("boat not found"),
		)
	default:
		return err
	}
}

func presetsDescription() string {
	names := lo.Map(similarity.Presets(), func(p similarity.Preset, _ int) string {
		return fmt.Sprintf("%q", p.Name)
	})

	return fmt.Sprintf("preset must be one of %v", names)
}

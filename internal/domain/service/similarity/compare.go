package similarity

import (
	"fmt"
	"math"

	"boatmatch/internal/domain/entity"
	"boatmatch/internal/domain/value"
)

// Options configure a comparison. A zero Types table means the default one.
type Options struct {
	Weights Weights
	Policy  MatchPolicy
	Types   TypeTable
}

func DefaultOptions() Options {
	return Options{
		Weights: DefaultWeights(),
		Policy:  ContainmentOverlap,
	}
}

func (o Options) Validate() error {
	if err := o.Weights.Validate(); err != nil {
		return err
	}

	return o.Policy.Validate()
}

func (o Options) types() TypeTable {
	if o.Types.IsZero() {
		return defaultTypeTable
	}

	return o.Types
}

// Compare normalizes both raw records and compares them.
func Compare(a, b entity.Boat, opts Options) (value.ComparisonResult, error) {
	return CompareAttributes(Normalize(a), Normalize(b), opts)
}

// CompareAttributes scores type, size and features, combines them with the
// configured weights and adds price/engine-hours deltas when both sides have
// them. It fails only on invalid options.
func CompareAttributes(a, b value.BoatAttributes, opts Options) (value.ComparisonResult, error) {
	if err := opts.Validate(); err != nil {
		return value.ComparisonResult{}, fmt.Errorf("opts.Validate: %w", err)
	}

	factors := value.Factors{
		Type:     opts.types().ScoreType(a, b),
		Size:     ScoreSize(a, b),
		Features: ScoreFeatures(a, b, opts.Policy),
	}

	return value.ComparisonResult{
		OverallScore:   overallScore(factors, opts.Weights),
		Factors:        factors,
		Specifications: compareSpecifications(a, b),
	}, nil
}

func overallScore(f value.Factors, w Weights) int {
	weighted := float64(f.Type.Score)*w.Type +
		float64(f.Size.Score)*w.Size +
		float64(f.Features.Score)*w.Features

	return min(100, max(0, int(math.Round(weighted))))
}

func compareSpecifications(a, b value.BoatAttributes) *value.Specifications {
	price := specDelta(a.Price, b.Price)
	hours := specDelta(a.EngineHours, b.EngineHours)

	if price == nil && hours == nil {
		return nil
	}

	return &value.Specifications{
		Price:       price,
		EngineHours: hours,
	}
}

// specDelta is nil unless both values are present and positive.
func specDelta(x, y *float64) *value.SpecDelta {
	if x == nil || y == nil {
		return nil
	}

	lowest := math.Min(*x, *y)
	if lowest <= 0 {
		return nil
	}

	difference := math.Abs(*x - *y)

	return &value.SpecDelta{
		Difference:        difference,
		PercentDifference: int(math.Round(100 * difference / lowest)),
	}
}

package similarity

import (
	"errors"
	"fmt"
	"math"
)

const weightsTolerance = 1e-6

var ErrInvalidWeights = errors.New("invalid weights")

// Weights are the factor coefficients of the overall score. They must be
// non-negative and sum to 1; they are never renormalized silently.
type Weights struct {
	Type     float64 `json:"type"`
	Size     float64 `json:"size"`
	Features float64 `json:"features"`
}

func DefaultWeights() Weights {
	return Weights{Type: 0.4, Size: 0.3, Features: 0.3}
}

func (w Weights) String() string {
	return fmt.Sprintf("type=%g size=%g features=%g", w.Type, w.Size, w.Features)
}

func (w Weights) Validate() error {
	for _, v := range []float64{w.Type, w.Size, w.Features} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite component (%s)", ErrInvalidWeights, w)
		}

		if v < 0 {
			return fmt.Errorf("%w: negative component (%s)", ErrInvalidWeights, w)
		}
	}

	if sum := w.Type + w.Size + w.Features; math.Abs(sum-1) > weightsTolerance {
		return fmt.Errorf("%w: components sum to %g, want 1 (%s)", ErrInvalidWeights, sum, w)
	}

	return nil
}

package similarity

import (
	"math"

	"boatmatch/internal/domain/value"
)

// Upper bounds are inclusive.
//
//nolint:gochecknoglobals
var sizeBands = []struct {
	maxDifference float64
	score         int
}{
	{0, 100},
	{2, 90},
	{5, 80},
	{8, 60},
	{10, 40},
}

const sizeScoreFloor = 20

// ScoreSize scores the absolute length difference in discrete bands.
func ScoreSize(a, b value.BoatAttributes) value.SizeFactor {
	// Rounded to micro-feet so 30.1-28.1 lands in the 2 ft band.
	difference := math.Round(math.Abs(a.Length-b.Length)*1e6) / 1e6

	return value.SizeFactor{
		Score:    sizeScore(difference),
		Evidence: value.SizeEvidence{Difference: difference, Unit: value.UnitFeet},
	}
}

func sizeScore(difference float64) int {
	for _, band := range sizeBands {
		if difference <= band.maxDifference {
			return band.score
		}
	}

	return sizeScoreFloor
}

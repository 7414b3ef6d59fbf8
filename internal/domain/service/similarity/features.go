package similarity

import (
	"math"

	"boatmatch/internal/domain/value"
)

// ScoreFeatures compares feature sets under policy. Common holds the features
// of a with a similar counterpart in b; the score is
// round(100 * common / (common + uniqueToFirst + uniqueToSecond)), or 0 when
// there is nothing to compare.
func ScoreFeatures(a, b value.BoatAttributes, policy MatchPolicy) value.FeatureFactor {
	common, uniqueToFirst := partitionFeatures(a.Features, b.Features, policy)
	_, uniqueToSecond := partitionFeatures(b.Features, a.Features, policy)

	score := 0
	if total := len(common) + len(uniqueToFirst) + len(uniqueToSecond); total > 0 {
		score = int(math.Round(100 * float64(len(common)) / float64(total)))
	}

	labels := make(map[string]string)

	addLabels(labels, a, common)
	addLabels(labels, a, uniqueToFirst)
	addLabels(labels, b, uniqueToSecond)

	if len(labels) == 0 {
		labels = nil
	}

	return value.FeatureFactor{
		Score: score,
		Evidence: value.FeatureEvidence{
			Common:         common,
			UniqueToFirst:  uniqueToFirst,
			UniqueToSecond: uniqueToSecond,
			Labels:         labels,
		},
	}
}

func partitionFeatures(features, others []string, policy MatchPolicy) (matched, unmatched []string) {
	matched = make([]string, 0, len(features))
	unmatched = make([]string, 0, len(features))

	for _, f := range features {
		if hasSimilar(f, others, policy) {
			matched = append(matched, f)
		} else {
			unmatched = append(unmatched, f)
		}
	}

	return matched, unmatched
}

func hasSimilar(feature string, others []string, policy MatchPolicy) bool {
	for _, o := range others {
		if policy.Similar(feature, o) {
			return true
		}
	}

	return false
}

// addLabels records display spellings that differ from the normalized form.
func addLabels(labels map[string]string, attrs value.BoatAttributes, features []string) {
	for _, f := range features {
		if label := attrs.Label(f); label != f {
			labels[f] = label
		}
	}
}

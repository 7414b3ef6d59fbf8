package similarity

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/agext/levenshtein"
)

// MatchPolicy selects how two feature strings are judged similar.
type MatchPolicy string

const (
	// ContainmentOverlap: equal, one contains the other, or at least half of
	// the words of the shorter feature have a containment match in the other.
	ContainmentOverlap MatchPolicy = "containment-overlap"
	// LevenshteinThreshold: equal, or edit distance within
	// min(3, floor(0.3 * longer length)).
	LevenshteinThreshold MatchPolicy = "levenshtein-threshold"
)

const (
	wordOverlapRatio     = 0.5
	maxEditDistance      = 3
	editDistanceFraction = 0.3
)

var ErrUnknownMatchPolicy = errors.New("unknown match policy")

func ParseMatchPolicy(s string) (MatchPolicy, error) {
	switch p := MatchPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case ContainmentOverlap, LevenshteinThreshold:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMatchPolicy, s)
	}
}

func (p MatchPolicy) String() string {
	return string(p)
}

func (p MatchPolicy) Validate() error {
	_, err := ParseMatchPolicy(string(p))

	return err
}

// Similar reports whether two normalized features match under the policy.
func (p MatchPolicy) Similar(x, y string) bool {
	if p == LevenshteinThreshold {
		return withinEditThreshold(x, y)
	}

	return containmentOverlap(x, y)
}

// FuzzyMatch applies the levenshtein-threshold rule to two raw strings.
func FuzzyMatch(x, y string) bool {
	return withinEditThreshold(normalizeText(x), normalizeText(y))
}

func withinEditThreshold(x, y string) bool {
	if x == y {
		return true
	}

	longest := max(utf8.RuneCountInString(x), utf8.RuneCountInString(y))
	threshold := min(maxEditDistance, int(math.Floor(editDistanceFraction*float64(longest))))

	return levenshtein.Distance(x, y, nil) <= threshold
}

func containmentOverlap(x, y string) bool {
	if x == y || strings.Contains(x, y) || strings.Contains(y, x) {
		return true
	}

	wordsX, wordsY := wordSet(x), wordSet(y)

	switch {
	case len(wordsX) < len(wordsY):
		return overlapRatio(wordsX, wordsY) >= wordOverlapRatio
	case len(wordsY) < len(wordsX):
		return overlapRatio(wordsY, wordsX) >= wordOverlapRatio
	default:
		// Equal sizes: either side counts as the shorter one.
		return max(overlapRatio(wordsX, wordsY), overlapRatio(wordsY, wordsX)) >= wordOverlapRatio
	}
}

// overlapRatio is the share of words in small having a containment match,
// in either direction, among the words of large.
func overlapRatio(small, large []string) float64 {
	if len(small) == 0 {
		return 0
	}

	matched := 0

	for _, w := range small {
		for _, o := range large {
			if strings.Contains(w, o) || strings.Contains(o, w) {
				matched++

				break
			}
		}
	}

	return float64(matched) / float64(len(small))
}

func wordSet(s string) []string {
	fields := strings.Fields(s)
	out := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))

	for _, f := range fields {
		if _, ok := seen[f]; ok {
			continue
		}

		seen[f] = struct{}{}
		out = append(out, f)
	}

	return out
}

package similarity

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"boatmatch/internal/domain/entity"
	"boatmatch/internal/domain/value"
)

var (
	leadingNumberRe  = regexp.MustCompile(`\d+(?:\.\d+)?`)              //nolint:gochecknoglobals
	amountSeparators = strings.NewReplacer(",", "", "_", "", " ", "") //nolint:gochecknoglobals
)

// Normalize maps a raw boat record onto its canonical comparable form. It
// never fails: unknown or unparseable values become "", 0 or an empty set.
func Normalize(b entity.Boat) value.BoatAttributes {
	features, labels := normalizeFeatures(b.Features, b.KeyFeatures, b.Style)

	return value.BoatAttributes{
		ID:           strings.TrimSpace(b.ID),
		Type:         normalizeText(b.Type),
		Length:       normalizeLength(b.Length),
		Features:     features,
		Labels:       labels,
		Name:         strings.TrimSpace(b.Name),
		Engine:       strings.TrimSpace(b.Engine),
		HullMaterial: strings.TrimSpace(b.HullMaterial),
		Location:     strings.TrimSpace(b.Location),
		ImageURL:     strings.TrimSpace(b.ImageURL),
		Price:        normalizeAmount(b.Price),
		EngineHours:  normalizeAmount(b.EngineHours),
	}
}

func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeLength takes numbers as-is and extracts the first decimal number
// from text ("28.5 ft" -> 28.5). Negative or non-finite values count as unknown.
func normalizeLength(n value.Number) float64 {
	if v, ok := n.Float(); ok {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return 0
		}

		return v
	}

	if s, ok := n.Text(); ok {
		v, _ := leadingNumber(s)

		return v
	}

	return 0
}

// normalizeAmount returns nil unless the value is a positive number, so that
// price and engine-hours deltas are never computed against zero or a missing value.
// Thousands separators are ignored in text ("$125,000" -> 125000).
func normalizeAmount(n value.Number) *float64 {
	var v float64

	if f, ok := n.Float(); ok {
		v = f
	} else if s, ok := n.Text(); ok {
		v, _ = leadingNumber(amountSeparators.Replace(s))
	}

	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return nil
	}

	return &v
}

func leadingNumber(s string) (float64, bool) {
	match := leadingNumberRe.FindString(s)
	if match == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}

// normalizeFeatures merges the feature lists in order, lower-cases and trims
// every entry, drops empty ones and keeps the first occurrence of each.
func normalizeFeatures(lists ...value.StringList) ([]string, map[string]string) {
	features := make([]string, 0)
	labels := make(map[string]string)

	for _, list := range lists {
		for _, raw := range list {
			label := strings.TrimSpace(raw)
			key := strings.ToLower(label)

			if key == "" {
				continue
			}

			if _, seen := labels[key]; seen {
				continue
			}

			labels[key] = label
			features = append(features, key)
		}
	}

	return features, labels
}

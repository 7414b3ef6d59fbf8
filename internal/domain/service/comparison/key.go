package comparison

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"boatmatch/internal/domain/value"
)

const (
	keySeparator      = "|"
	fingerprintLength = 16
)

// PairKey builds the cache key of a pair within a scoring scope (a preset name
// or a custom weights/policy combination). The key does not depend on the
// order of a and b; swapped reports whether b sorts before a, i.e. whether a
// result cached for the key must be mirrored for the caller.
func PairKey(a, b value.BoatAttributes, scope string) (key string, swapped bool) {
	first, second := BoatIdentity(a), BoatIdentity(b)
	if second < first {
		first, second = second, first
		swapped = true
	}

	return strings.Join([]string{scope, first, second}, keySeparator), swapped
}

// BoatIdentity is "id:<id>:<fingerprint>" for boats that carry an ID and
// "fp:<fingerprint>" for anonymous ones. An ID alone never identifies a boat:
// callers may send any ID with any attributes.
func BoatIdentity(a value.BoatAttributes) string {
	if a.ID != "" {
		return "id:" + a.ID + ":" + Fingerprint(a)
	}

	return "fp:" + Fingerprint(a)
}

// Fingerprint hashes every attribute that ends up in a comparison result,
// display labels included.
func Fingerprint(a value.BoatAttributes) string {
	h := sha256.New()

	labels := make([]string, 0, len(a.Features))
	for _, f := range a.Features {
		labels = append(labels, a.Label(f))
	}

	for _, part := range []string{
		a.Type,
		strconv.FormatFloat(a.Length, 'g', -1, 64),
		strings.Join(a.Features, "\x1f"),
		strings.Join(labels, "\x1f"),
		formatAmount(a.Price),
		formatAmount(a.EngineHours),
	} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))[:fingerprintLength*2]
}

func formatAmount(v *float64) string {
	if v == nil {
		return "-"
	}

	return strconv.FormatFloat(*v, 'g', -1, 64)
}

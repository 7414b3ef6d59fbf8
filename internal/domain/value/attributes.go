package value

// BoatAttributes is the canonical, comparable form of a boat record.
// Type and Features are lower-cased and trimmed, Length is in feet and never
// negative, Features holds no duplicates. Labels maps a normalized feature to
// the first original spelling seen, for display only.
type BoatAttributes struct {
	ID       string
	Type     string
	Length   float64
	Features []string
	Labels   map[string]string

	// Reporting passthrough, not used for scoring.
	Name         string
	Engine       string
	HullMaterial string
	Location     string
	ImageURL     string
	Price        *float64
	EngineHours  *float64
}

func (a BoatAttributes) HasFeature(feature string) bool {
	for _, f := range a.Features {
		if f == feature {
			return true
		}
	}

	return false
}

// Label returns the display spelling of a normalized feature.
func (a BoatAttributes) Label(feature string) string {
	if label, ok := a.Labels[feature]; ok {
		return label
	}

	return feature
}

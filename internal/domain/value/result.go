package value

const UnitFeet = "ft"

type TypeEvidence struct {
	Values [2]string `json:"values"`
}

type TypeFactor struct {
	Score    int          `json:"score"`
	Evidence TypeEvidence `json:"evidence"`
}

type SizeEvidence struct {
	Difference float64 `json:"difference"`
	Unit       string  `json:"unit"`
}

type SizeFactor struct {
	Score    int          `json:"score"`
	Evidence SizeEvidence `json:"evidence"`
}

type FeatureEvidence struct {
	Common         []string          `json:"common"`
	UniqueToFirst  []string          `json:"uniqueToFirst"`
	UniqueToSecond []string          `json:"uniqueToSecond"`
	Labels         map[string]string `json:"labels,omitempty"`
}

type FeatureFactor struct {
	Score    int             `json:"score"`
	Evidence FeatureEvidence `json:"evidence"`
}

type Factors struct {
	Type     TypeFactor    `json:"type"`
	Size     SizeFactor    `json:"size"`
	Features FeatureFactor `json:"features"`
}

type SpecDelta struct {
	Difference        float64 `json:"difference"`
	PercentDifference int     `json:"percentDifference"`
}

type Specifications struct {
	Price       *SpecDelta `json:"price,omitempty"`
	EngineHours *SpecDelta `json:"engineHours,omitempty"`
}

// ComparisonResult is the similarity report of one boat pair. OverallScore is
// an integer in [0, 100]; Specifications is nil when neither delta applies.
type ComparisonResult struct {
	OverallScore   int             `json:"overallScore"`
	Factors        Factors         `json:"factors"`
	Specifications *Specifications `json:"specifications,omitempty"`
}

// Mirror returns the result as seen from the second boat of the pair.
// Scores, deltas, the common features and labels are unchanged; they still
// use the spellings of the first boat.
func (r ComparisonResult) Mirror() ComparisonResult {
	mirrored := r
	mirrored.Factors.Type.Evidence.Values = [2]string{r.Factors.Type.Evidence.Values[1], r.Factors.Type.Evidence.Values[0]}
	mirrored.Factors.Features.Evidence.UniqueToFirst = r.Factors.Features.Evidence.UniqueToSecond
	mirrored.Factors.Features.Evidence.UniqueToSecond = r.Factors.Features.Evidence.UniqueToFirst

	return mirrored
}

package entity

import "boatmatch/internal/domain/value"

// Boat is a raw boat record as supplied by the catalog or by the image
// analysis collaborator. Any field may be missing or malformed.
type Boat struct {
	ID           string           `json:"id,omitempty"`
	Name         string           `json:"name,omitempty"`
	Type         string           `json:"type,omitempty"`
	Length       value.Number     `json:"length"`
	Price        value.Number     `json:"price"`
	EngineHours  value.Number     `json:"engineHours"`
	Engine       string           `json:"engine,omitempty"`
	HullMaterial string           `json:"hullMaterial,omitempty"`
	Location     string           `json:"location,omitempty"`
	ImageURL     string           `json:"imageUrl,omitempty"`
	Features     value.StringList `json:"features,omitempty"`
	KeyFeatures  value.StringList `json:"keyFeatures,omitempty"`
	Style        value.StringList `json:"style,omitempty"`
}

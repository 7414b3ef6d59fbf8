package persistence

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"

	"boatmatch/internal/domain/entity"
	"boatmatch/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// boatSchema maps a row of the boats table. Loosely typed values are kept as
// JSONB so that "28 ft" survives a round trip next to 28.
type boatSchema struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Type         string    `db:"type"`
	Length       []byte    `db:"length"`
	Price        []byte    `db:"price"`
	EngineHours  []byte    `db:"engine_hours"`
	Engine       string    `db:"engine"`
	HullMaterial string    `db:"hull_material"`
	Location     string    `db:"location"`
	ImageURL     string    `db:"image_url"`
	Features     []byte    `db:"features"`
	KeyFeatures  []byte    `db:"key_features"`
	Style        []byte    `db:"style"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func fromBoat(b entity.Boat) (boatSchema, error) {
	schema := boatSchema{
		ID:           b.ID,
		Name:         b.Name,
		Type:         b.Type,
		Engine:       b.Engine,
		HullMaterial: b.HullMaterial,
		Location:     b.Location,
		ImageURL:     b.ImageURL,
		UpdatedAt:    time.Now().UTC(),
	}

	for _, field := range []struct {
		dest *[]byte
		src  any
	}{
		{&schema.Length, b.Length},
		{&schema.Price, b.Price},
		{&schema.EngineHours, b.EngineHours},
		{&schema.Features, nonNilList(b.Features)},
		{&schema.KeyFeatures, nonNilList(b.KeyFeatures)},
		{&schema.Style, nonNilList(b.Style)},
	} {
		raw, err := json.Marshal(field.src)
		if err != nil {
			return boatSchema{}, fmt.Errorf("json.Marshal: %w", err)
		}

		*field.dest = raw
	}

	return schema, nil
}

func (s boatSchema) toDomain() entity.Boat {
	boat := entity.Boat{
		ID:           s.ID,
		Name:         s.Name,
		Type:         s.Type,
		Engine:       s.Engine,
		HullMaterial: s.HullMaterial,
		Location:     s.Location,
		ImageURL:     s.ImageURL,
	}

	// Both types decode fail-soft, errors are impossible.
	_ = boat.Length.UnmarshalJSON(orNull(s.Length))
	_ = boat.Price.UnmarshalJSON(orNull(s.Price))
	_ = boat.EngineHours.UnmarshalJSON(orNull(s.EngineHours))
	_ = boat.Features.UnmarshalJSON(orNull(s.Features))
	_ = boat.KeyFeatures.UnmarshalJSON(orNull(s.KeyFeatures))
	_ = boat.Style.UnmarshalJSON(orNull(s.Style))

	return boat
}

func nonNilList(list value.StringList) value.StringList {
	if list == nil {
		return value.StringList{}
	}

	return list
}

func orNull(raw []byte) []byte {
	if len(raw) == 0 {
		return []byte("null")
	}

	return raw
}

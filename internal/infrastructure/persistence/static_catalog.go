package persistence

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"slices"

	"boatmatch/internal/domain"
	"boatmatch/internal/domain/entity"
	"boatmatch/pkg/errcodes"
)

//go:embed catalog.json
var embeddedCatalog []byte

// StaticCatalog is an immutable in-memory catalog.
type StaticCatalog struct {
	boats []entity.Boat
	byID  map[string]int
}

// NewStaticCatalog loads the catalog shipped with the binary.
func NewStaticCatalog() (*StaticCatalog, error) {
	return NewStaticCatalogFromJSON(embeddedCatalog)
}

// NewStaticCatalogFromFile loads a JSON array of boats from path.
func NewStaticCatalogFromFile(path string) (*StaticCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	return NewStaticCatalogFromJSON(data)
}

// NewStaticCatalogFromJSON decodes a JSON array of boats. Every boat needs a
// unique, non-empty ID.
func NewStaticCatalogFromJSON(data []byte) (*StaticCatalog, error) {
	var boats []entity.Boat
	if err := json.Unmarshal(data, &boats); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	byID := make(map[string]int, len(boats))

	for i, b := range boats {
		if b.ID == "" {
			return nil, domain.NewError(errcodes.InvalidBoatID, fmt.Sprintf("boat at index %d has no id", i))
		}

		if _, ok := byID[b.ID]; ok {
			return nil, domain.NewError(errcodes.InvalidBoatID, fmt.Sprintf("duplicate boat id %q", b.ID))
		}

		byID[b.ID] = i
	}

	return &StaticCatalog{boats: boats, byID: byID}, nil
}

func (c *StaticCatalog) List(context.Context) ([]entity.Boat, error) {
	return slices.Clone(c.boats), nil
}

func (c *StaticCatalog) GetByID(_ context.Context, id string) (entity.Boat, error) {
	i, ok := c.byID[id]
	if !ok {
		return entity.Boat{}, domain.NewError(errcodes.BoatNotFound, "boat not found")
	}

	return c.boats[i], nil
}

func (c *StaticCatalog) Len() int {
	return len(c.boats)
}

package persistence_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"boatmatch/internal/domain"
	"boatmatch/internal/domain/service/similarity"
	"boatmatch/internal/infrastructure/persistence"
	"boatmatch/pkg/errcodes"
)

func TestStaticCatalogEmbedded(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	catalog, err := persistence.NewStaticCatalog()
	rq.NoError(err)
	rq.Positive(catalog.Len())

	boats, err := catalog.List(ctx)
	rq.NoError(err)
	rq.Len(boats, catalog.Len())

	grady, err := catalog.GetByID(ctx, "grady-white-canyon-306")
	rq.NoError(err)

	attrs := similarity.Normalize(grady)
	rq.Equal("center console", attrs.Type)
	rq.InDelta(30, attrs.Length, 1e-9)
	rq.NotNil(attrs.Price)
	rq.InDelta(319000, *attrs.Price, 1e-9)
	rq.Contains(attrs.Features, "twin engines")

	launch, err := catalog.GetByID(ctx, "chris-craft-launch-27")
	rq.NoError(err)
	rq.Equal([]string{"Twin engines"}, []string(launch.KeyFeatures))
	rq.True(launch.Price.IsAbsent())
	rq.Nil(similarity.Normalize(launch).EngineHours)
}

func TestStaticCatalogListIsACopy(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	catalog, err := persistence.NewStaticCatalog()
	rq.NoError(err)

	boats, err := catalog.List(ctx)
	rq.NoError(err)

	boats[0].Name = "changed"

	again, err := catalog.List(ctx)
	rq.NoError(err)
	rq.NotEqual("changed", again[0].Name)
}

func TestStaticCatalogNotFound(t *testing.T) {
	rq := require.New(t)

	catalog, err := persistence.NewStaticCatalog()
	rq.NoError(err)

	_, err = catalog.GetByID(context.Background(), "titanic")
	rq.True(domain.HasCode(err, errcodes.BoatNotFound))
}

func TestStaticCatalogFromJSON(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		code  string
		fails bool
	}{
		{name: "Valid", input: `[{"id":"a","length":"20 ft"},{"id":"b","features":[1,"gps"]}]`},
		{name: "Empty", input: `[]`},
		{name: "Malformed", input: `{`, fails: true},
		{name: "Missing id", input: `[{"name":"nameless"}]`, code: string(errcodes.InvalidBoatID), fails: true},
		{name: "Duplicate id", input: `[{"id":"a"},{"id":"a"}]`, code: string(errcodes.InvalidBoatID), fails: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := persistence.NewStaticCatalogFromJSON([]byte(tc.input))
			if !tc.fails {
				rq.NoError(err)

				return
			}

			rq.Error(err)

			if tc.code != "" {
				code, ok := domain.GetCode(err)
				rq.True(ok)
				rq.Equal(tc.code, string(code))
			}
		})
	}
}

func TestStaticCatalogFromFile(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "boats.json")
	rq.NoError(os.WriteFile(path, []byte(`[{"id":"solo","type":"Kayak"}]`), 0o600))

	catalog, err := persistence.NewStaticCatalogFromFile(path)
	rq.NoError(err)
	rq.Equal(1, catalog.Len())

	_, err = persistence.NewStaticCatalogFromFile(filepath.Join(t.TempDir(), "missing.json"))
	rq.ErrorIs(err, os.ErrNotExist)
}
